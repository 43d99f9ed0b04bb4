package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/triangle-visualization/internal/config"
	"github.com/iburimskiy/triangle-visualization/internal/diagram"
	"github.com/iburimskiy/triangle-visualization/internal/sound"
	"github.com/iburimskiy/triangle-visualization/internal/triangle"
)

var (
	windowBgColor    = color.RGBA{R: 14, G: 17, B: 24, A: 255}
	panelBgColor     = color.RGBA{R: 25, G: 30, B: 40, A: 200}
	panelBorderColor = color.RGBA{R: 70, G: 80, B: 100, A: 255}
	resultColor      = color.RGBA{R: 150, G: 220, B: 170, A: 255}
	errorColor       = color.RGBA{R: 235, G: 130, B: 130, A: 255}
	neutralColor     = color.RGBA{R: 130, G: 140, B: 160, A: 255}
)

// Game is the presentation shell: it owns the two raw input strings (via the
// text fields) and wires every keystroke through the calculator into the
// diagram renderer.
type Game struct {
	fieldA *TextField
	fieldB *TextField

	memo    triangle.Memo
	derived triangle.Derived

	renderer *diagram.Renderer
	beeper   *sound.Beeper
	face     text.Face

	// save button state
	saveHovered bool
	savePressed bool

	lastErr error
}

func NewGame() *Game {
	g := &Game{
		fieldA:   NewTextField(config.FieldAX, config.FieldY, config.FieldWidth, config.FieldHeight, "3"),
		fieldB:   NewTextField(config.FieldBX, config.FieldY, config.FieldWidth, config.FieldHeight, "4"),
		renderer: diagram.NewRenderer(),
		beeper:   &sound.Beeper{},
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
	g.fieldA.SetFocused(true)
	g.derived = g.memo.Derive(g.fieldA.Text(), g.fieldB.Text())
	return g
}

func (g *Game) Update() error {
	g.updateFocus()
	g.fieldA.Update()
	g.fieldB.Update()

	d := g.memo.Derive(g.fieldA.Text(), g.fieldB.Text())
	if !d.Valid() && g.derived.Valid() {
		g.beeper.ErrorTone()
	}
	g.derived = d

	g.updateSaveButton()

	if inpututil.IsKeyJustPressed(ebiten.KeyS) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		if err := g.saveDiagramDialog(); err != nil {
			g.lastErr = err
		}
	}

	return nil
}

func (g *Game) updateFocus() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.fieldA.SetFocused(g.fieldA.Contains(mx, my))
		g.fieldB.SetFocused(g.fieldB.Contains(mx, my))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		aWas := g.fieldA.Focused()
		bWas := g.fieldB.Focused()
		g.fieldA.SetFocused(bWas || (!aWas && !bWas))
		g.fieldB.SetFocused(aWas)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.fieldA.SetFocused(false)
		g.fieldB.SetFocused(false)
	}
}

func (g *Game) updateSaveButton() {
	mx, my := ebiten.CursorPosition()
	g.saveHovered = mx >= config.ButtonX && mx <= config.ButtonX+config.ButtonWidth &&
		my >= config.ButtonY && my <= config.ButtonY+config.ButtonHeight

	if g.saveHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.savePressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.savePressed && g.saveHovered {
			if err := g.saveDiagramDialog(); err != nil {
				g.lastErr = err
			}
		}
		g.savePressed = false
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(windowBgColor)

	status := "Tab: switch fields | Ctrl+S: save diagram"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 8)

	ebitenutil.DebugPrintAt(screen, "Length of Side a", config.FieldAX, config.FieldY-20)
	ebitenutil.DebugPrintAt(screen, "Length of Side b", config.FieldBX, config.FieldY-20)
	g.fieldA.Draw(screen, g.face)
	g.fieldB.Draw(screen, g.face)

	g.drawResultPanel(screen)
	g.drawSaveButton(screen)

	img := g.renderer.Render(g.derived.NumA, g.derived.NumB, g.hypLabel())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(config.DiagramX, config.DiagramY)
	screen.DrawImage(img, op)
}

func (g *Game) drawResultPanel(screen *ebiten.Image) {
	x := float32(config.ResultX)
	y := float32(config.ResultY)
	w := float32(config.ResultWidth)
	h := float32(config.ResultHeight)
	vector.DrawFilledRect(screen, x, y, w, h, panelBgColor, false)
	vector.StrokeRect(screen, x, y, w, h, 1, panelBorderColor, false)

	msg, clr := g.resultText()
	op := &text.DrawOptions{}
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(float64(config.ResultX)+8, float64(config.ResultY)+float64(config.ResultHeight)/2)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, msg, g.face, op)
}

func (g *Game) resultText() (string, color.Color) {
	if strings.TrimSpace(g.fieldA.Text()) == "" && strings.TrimSpace(g.fieldB.Text()) == "" {
		return "Enter side lengths to compute the hypotenuse.", neutralColor
	}
	if !g.derived.Valid() {
		return g.derived.Err, errorColor
	}
	return fmt.Sprintf("c = %.4f", g.derived.Hypotenuse), resultColor
}

func (g *Game) hypLabel() string {
	if !g.derived.Valid() {
		return ""
	}
	return fmt.Sprintf("c = %.2f", g.derived.Hypotenuse)
}

func (g *Game) drawSaveButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.savePressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	} else if g.saveHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	} else {
		bgColor = color.RGBA{R: 50, G: 62, B: 88, A: 255}
	}

	x := float32(config.ButtonX)
	y := float32(config.ButtonY)
	w := float32(config.ButtonWidth)
	h := float32(config.ButtonHeight)
	vector.DrawFilledRect(screen, x, y, w, h, bgColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(float64(config.ButtonX)+float64(config.ButtonWidth)/2, float64(config.ButtonY)+float64(config.ButtonHeight)/2)
	op.ColorScale.ScaleWithColor(fieldTextColor)
	text.Draw(screen, "Save PNG", g.face, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
