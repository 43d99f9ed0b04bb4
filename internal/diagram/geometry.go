package diagram

import (
	"math"

	"github.com/iburimskiy/triangle-visualization/internal/config"
)

type Point struct {
	X, Y float64
}

// Geometry holds everything the renderer needs to draw one triangle, in
// diagram-canvas coordinates (origin top-left, y down). It is recomputed from
// scratch for every frame; nothing here is cached or mutated in place.
type Geometry struct {
	Valid   bool
	Scale   float64
	VisualA float64 // vertical leg length in pixels
	VisualB float64 // horizontal leg length in pixels

	P1 Point // right-angle vertex, fixed at (Padding, CanvasHeight-Padding)
	P2 Point // horizontal-leg end
	P3 Point // vertical-leg end

	HypMid      Point
	HypLabelAt  Point   // midpoint pushed off the hypotenuse, away from P1
	HypAngleDeg float64 // label rotation in degrees
}

// Layout maps leg lengths to canvas geometry. The longer leg always spans
// exactly MaxDim pixels, so the diagram is unitless.
func Layout(a, b float64) Geometry {
	if a <= 0 || b <= 0 {
		return Geometry{}
	}

	scale := float64(config.MaxDim) / math.Max(a, b)
	visualA := a * scale
	visualB := b * scale

	p1 := Point{X: config.Padding, Y: config.CanvasHeight - config.Padding}
	p2 := Point{X: p1.X + visualB, Y: p1.Y}
	p3 := Point{X: p1.X, Y: p1.Y - visualA}

	mid := Point{X: (p2.X + p3.X) / 2, Y: (p2.Y + p3.Y) / 2}
	angle := math.Atan2(p3.Y-p2.Y, p3.X-p2.X)*180/math.Pi + 180

	// Unit normal to the hypotenuse, flipped if needed so it points away
	// from the right-angle vertex.
	hyp := math.Hypot(p3.X-p2.X, p3.Y-p2.Y)
	nx := (p3.Y - p2.Y) / hyp
	ny := -(p3.X - p2.X) / hyp
	if nx*(mid.X-p1.X)+ny*(mid.Y-p1.Y) < 0 {
		nx, ny = -nx, -ny
	}
	labelAt := Point{
		X: mid.X + nx*config.HypLabelOffset,
		Y: mid.Y + ny*config.HypLabelOffset,
	}

	return Geometry{
		Valid:       true,
		Scale:       scale,
		VisualA:     visualA,
		VisualB:     visualB,
		P1:          p1,
		P2:          p2,
		P3:          p3,
		HypMid:      mid,
		HypLabelAt:  labelAt,
		HypAngleDeg: angle,
	}
}
