package ui

import (
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const fieldTextPadding = 8

var (
	fieldBgColor     = color.RGBA{R: 30, G: 36, B: 50, A: 255}
	fieldBorderColor = color.RGBA{R: 70, G: 80, B: 100, A: 255}
	fieldHoverBorder = color.RGBA{R: 100, G: 115, B: 145, A: 255}
	fieldFocusBorder = color.RGBA{R: 140, G: 180, B: 240, A: 255}
	fieldTextColor   = color.RGBA{R: 225, G: 230, B: 240, A: 255}
	fieldCaretColor  = color.RGBA{R: 225, G: 230, B: 240, A: 255}
)

// TextField is a minimal single-line input box. Any printable text is
// accepted; validation happens downstream in the calculator.
type TextField struct {
	rect    image.Rectangle
	text    string
	focused bool
	hovered bool
	counter int
}

func NewTextField(x, y, w, h int, initial string) *TextField {
	return &TextField{
		rect: image.Rect(x, y, x+w, y+h),
		text: initial,
	}
}

func (f *TextField) Text() string { return f.text }

func (f *TextField) Focused() bool { return f.focused }

func (f *TextField) SetFocused(v bool) {
	f.focused = v
	f.counter = 0
}

func (f *TextField) Contains(x, y int) bool {
	return image.Pt(x, y).In(f.rect)
}

func (f *TextField) Update() {
	mx, my := ebiten.CursorPosition()
	f.hovered = f.Contains(mx, my)

	if !f.focused {
		return
	}
	f.counter++

	f.text = appendInputRunes(f.text, ebiten.AppendInputChars(nil))
	if repeatingKeyPressed(ebiten.KeyBackspace) {
		f.text = trimLastRune(f.text)
	}
}

func (f *TextField) Draw(screen *ebiten.Image, face text.Face) {
	x := float32(f.rect.Min.X)
	y := float32(f.rect.Min.Y)
	w := float32(f.rect.Dx())
	h := float32(f.rect.Dy())

	vector.DrawFilledRect(screen, x, y, w, h, fieldBgColor, false)

	border := fieldBorderColor
	if f.focused {
		border = fieldFocusBorder
	} else if f.hovered {
		border = fieldHoverBorder
	}
	vector.StrokeRect(screen, x, y, w, h, 2, border, false)

	textX := float64(f.rect.Min.X + fieldTextPadding)
	textY := float64(f.rect.Min.Y) + float64(f.rect.Dy())/2
	op := &text.DrawOptions{}
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(textX, textY)
	op.ColorScale.ScaleWithColor(fieldTextColor)
	text.Draw(screen, f.text, face, op)

	// blinking caret
	if f.focused && (f.counter/30)%2 == 0 {
		caretX := float32(textX + text.Advance(f.text, face))
		vector.StrokeLine(screen, caretX, y+6, caretX, y+h-6, 1, fieldCaretColor, false)
	}
}

// appendInputRunes appends printable runes to s, dropping control characters.
func appendInputRunes(s string, runes []rune) string {
	for _, r := range runes {
		if r >= ' ' {
			s += string(r)
		}
	}
	return s
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

// repeatingKeyPressed fires on the initial press and then repeats while held.
func repeatingKeyPressed(key ebiten.Key) bool {
	const (
		delay    = 30
		interval = 3
	)
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}
