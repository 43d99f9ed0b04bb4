package triangle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	tests := []struct {
		name       string
		sideA      string
		sideB      string
		wantA      float64
		wantB      float64
		wantHyp    float64
		wantErrMsg string
	}{
		{name: "classic 3-4-5", sideA: "3", sideB: "4", wantA: 3, wantB: 4, wantHyp: 5},
		{name: "5-12-13", sideA: "5", sideB: "12", wantA: 5, wantB: 12, wantHyp: 13},
		{name: "unit legs", sideA: "1", sideB: "1", wantA: 1, wantB: 1, wantHyp: math.Sqrt2},
		{name: "decimals", sideA: "1.5", sideB: "2.0", wantA: 1.5, wantB: 2, wantHyp: 2.5},
		{name: "trailing junk tolerated", sideA: "3.5abc", sideB: "4", wantA: 3.5, wantB: 4, wantHyp: math.Hypot(3.5, 4)},
		{name: "surrounding whitespace", sideA: " 3 ", sideB: "4", wantA: 3, wantB: 4, wantHyp: 5},
		{name: "exponent form", sideA: "1e1", sideB: "1e1", wantA: 10, wantB: 10, wantHyp: math.Hypot(10, 10)},
		{name: "zero side", sideA: "0", sideB: "4", wantErrMsg: ErrMessage},
		{name: "negative side", sideA: "-2", sideB: "4", wantErrMsg: ErrMessage},
		{name: "non-numeric", sideA: "abc", sideB: "4", wantErrMsg: ErrMessage},
		{name: "empty input", sideA: "", sideB: "4", wantErrMsg: ErrMessage},
		{name: "both invalid", sideA: "x", sideB: "-1", wantErrMsg: ErrMessage},
		{name: "lone dot", sideA: ".", sideB: "4", wantErrMsg: ErrMessage},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Derive(tc.sideA, tc.sideB)
			if tc.wantErrMsg != "" {
				require.False(t, d.Valid())
				assert.Equal(t, tc.wantErrMsg, d.Err)
				assert.Zero(t, d.NumA)
				assert.Zero(t, d.NumB)
				assert.Zero(t, d.Hypotenuse)
				return
			}
			require.True(t, d.Valid())
			assert.Equal(t, tc.wantA, d.NumA)
			assert.Equal(t, tc.wantB, d.NumB)
			assert.InDelta(t, tc.wantHyp, d.Hypotenuse, 1e-12)
		})
	}
}

func TestDeriveMatchesPythagoras(t *testing.T) {
	pairs := [][2]string{
		{"3", "4"}, {"0.3", "0.4"}, {"7", "24"}, {"123.456", "654.321"}, {"0.001", "1000"},
	}
	for _, p := range pairs {
		d := Derive(p[0], p[1])
		require.True(t, d.Valid(), "legs %v", p)
		assert.InDelta(t, math.Sqrt(d.NumA*d.NumA+d.NumB*d.NumB), d.Hypotenuse, 1e-9)
	}
}

func TestDeriveIdempotent(t *testing.T) {
	first := Derive("3.7", "9.1")
	second := Derive("3.7", "9.1")
	assert.Equal(t, first, second)

	firstBad := Derive("nope", "9.1")
	secondBad := Derive("nope", "9.1")
	assert.Equal(t, firstBad, secondBad)
}

func TestMemo(t *testing.T) {
	var m Memo

	d1 := m.Derive("3", "4")
	d2 := m.Derive("3", "4")
	assert.Equal(t, d1, d2)
	assert.Equal(t, 5.0, d1.Hypotenuse)

	d3 := m.Derive("5", "12")
	assert.Equal(t, 13.0, d3.Hypotenuse)

	d4 := m.Derive("5", "bad")
	require.False(t, d4.Valid())

	// back to a previously seen pair recomputes correctly
	d5 := m.Derive("3", "4")
	assert.Equal(t, d1, d5)
}

func TestParseLeadingFloat(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"3", 3, true},
		{"3.5abc", 3.5, true},
		{"-2", -2, true},
		{"+4", 4, true},
		{"3.5e+2xyz", 350, true},
		{"  7.25  ", 7.25, true},
		{"abc", 0, false},
		{"", 0, false},
		{".", 0, false},
		{"e5", 0, false},
	}
	for _, tc := range tests {
		got, ok := parseLeadingFloat(tc.in)
		assert.Equal(t, tc.wantOK, ok, "input %q", tc.in)
		if tc.wantOK {
			assert.Equal(t, tc.want, got, "input %q", tc.in)
		}
	}
}
