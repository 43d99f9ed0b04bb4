package triangle

import (
	"math"
	"strconv"
	"strings"
)

// ErrMessage is shown whenever either side fails to parse or is not positive.
const ErrMessage = "Please enter positive numbers for both sides."

// Derived is the calculator output for a pair of raw side inputs.
// Err is non-empty exactly when no hypotenuse could be computed.
type Derived struct {
	NumA       float64
	NumB       float64
	Hypotenuse float64
	Err        string
}

func (d Derived) Valid() bool { return d.Err == "" }

// Derive parses both side inputs and computes the hypotenuse. Pure and
// deterministic: the same pair of strings always yields the same result.
func Derive(sideA, sideB string) Derived {
	a, okA := parseLeadingFloat(sideA)
	b, okB := parseLeadingFloat(sideB)
	if !okA || !okB || a <= 0 || b <= 0 {
		return Derived{Err: ErrMessage}
	}
	return Derived{NumA: a, NumB: b, Hypotenuse: math.Hypot(a, b)}
}

// parseLeadingFloat parses the longest numeric prefix of s, tolerating
// trailing junk the way parseFloat-style parsers do ("3.5abc" -> 3.5).
func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && isFloatChar(s[end]) {
		end++
	}
	for ; end > 0; end-- {
		if v, err := strconv.ParseFloat(s[:end], 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

func isFloatChar(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '+' || c == '-' || c == 'e' || c == 'E'
}

// Memo caches the last derivation so a frame where neither input changed
// skips the recomputation.
type Memo struct {
	sideA, sideB string
	cached       bool
	derived      Derived
}

func (m *Memo) Derive(sideA, sideB string) Derived {
	if m.cached && m.sideA == sideA && m.sideB == sideB {
		return m.derived
	}
	m.sideA, m.sideB = sideA, sideB
	m.derived = Derive(sideA, sideB)
	m.cached = true
	return m.derived
}
