package diagram

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/triangle-visualization/internal/config"
)

const placeholderMessage = "Enter valid side lengths to see the triangle."

var (
	backgroundColor  = color.RGBA{R: 20, G: 25, B: 35, A: 255}
	triangleFill     = color.RGBA{R: 70, G: 130, B: 220, A: 90}
	edgeColor        = color.RGBA{R: 140, G: 180, B: 240, A: 255}
	labelColor       = color.RGBA{R: 220, G: 225, B: 235, A: 255}
	markColor        = color.RGBA{R: 210, G: 140, B: 120, A: 255}
	placeholderColor = color.RGBA{R: 130, G: 140, B: 160, A: 255}
)

// Renderer draws the triangle diagram onto its own offscreen canvas. The
// canvas is redrawn in full on every call; no vertex state survives a frame.
type Renderer struct {
	canvas *ebiten.Image
	face   text.Face
	white  *ebiten.Image
}

func NewRenderer() *Renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Renderer{
		canvas: ebiten.NewImage(config.CanvasWidth, config.CanvasHeight),
		face:   text.NewGoXFace(basicfont.Face7x13),
		white:  white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Render redraws the diagram for the given legs and returns the canvas.
// hypLabel is the preformatted hypotenuse label, empty when there is none.
func (r *Renderer) Render(a, b float64, hypLabel string) *ebiten.Image {
	r.canvas.Fill(backgroundColor)

	geo := Layout(a, b)
	if !geo.Valid {
		r.drawText(placeholderMessage, config.CanvasWidth/2, config.CanvasHeight/2, 0,
			placeholderColor, text.AlignCenter, text.AlignCenter)
		return r.canvas
	}

	r.fillTriangle(geo)
	r.strokeEdges(geo)
	r.drawRightAngleMark(geo)
	r.drawLabels(geo, a, b, hypLabel)

	return r.canvas
}

func (r *Renderer) fillTriangle(geo Geometry) {
	var p vector.Path
	p.MoveTo(float32(geo.P1.X), float32(geo.P1.Y))
	p.LineTo(float32(geo.P2.X), float32(geo.P2.Y))
	p.LineTo(float32(geo.P3.X), float32(geo.P3.Y))
	p.Close()

	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	cr := float32(triangleFill.R) / 255
	cg := float32(triangleFill.G) / 255
	cb := float32(triangleFill.B) / 255
	ca := float32(triangleFill.A) / 255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}
	r.canvas.DrawTriangles(vs, is, r.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *Renderer) strokeEdges(geo Geometry) {
	w := float32(config.StrokeWidth)
	vector.StrokeLine(r.canvas, float32(geo.P1.X), float32(geo.P1.Y), float32(geo.P2.X), float32(geo.P2.Y), w, edgeColor, true)
	vector.StrokeLine(r.canvas, float32(geo.P1.X), float32(geo.P1.Y), float32(geo.P3.X), float32(geo.P3.Y), w, edgeColor, true)
	vector.StrokeLine(r.canvas, float32(geo.P2.X), float32(geo.P2.Y), float32(geo.P3.X), float32(geo.P3.Y), w, edgeColor, true)
}

// drawRightAngleMark draws the fixed-size "L" inside the right angle at P1.
func (r *Renderer) drawRightAngleMark(geo Geometry) {
	s := float32(config.RightAngleSize)
	x := float32(geo.P1.X)
	y := float32(geo.P1.Y)
	vector.StrokeLine(r.canvas, x+s, y, x+s, y-s, 1, markColor, true)
	vector.StrokeLine(r.canvas, x+s, y-s, x, y-s, 1, markColor, true)
}

func (r *Renderer) drawLabels(geo Geometry, a, b float64, hypLabel string) {
	// leg a: left of the vertical leg's midpoint
	r.drawText(fmt.Sprintf("a = %g", a),
		geo.P1.X-config.SideLabelOffset/2, (geo.P1.Y+geo.P3.Y)/2, 0,
		labelColor, text.AlignEnd, text.AlignCenter)

	// leg b: below the horizontal leg's midpoint
	r.drawText(fmt.Sprintf("b = %g", b),
		(geo.P1.X+geo.P2.X)/2, geo.P1.Y+config.SideLabelOffset, 0,
		labelColor, text.AlignCenter, text.AlignCenter)

	if hypLabel != "" {
		r.drawText(hypLabel, geo.HypLabelAt.X, geo.HypLabelAt.Y, geo.HypAngleDeg,
			labelColor, text.AlignCenter, text.AlignCenter)
	}
}

func (r *Renderer) drawText(s string, x, y, angleDeg float64, clr color.Color, primary, secondary text.Align) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = primary
	op.SecondaryAlign = secondary
	op.GeoM.Rotate(angleDeg * math.Pi / 180)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(r.canvas, s, r.face, op)
}
