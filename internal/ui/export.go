package ui

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/triangle-visualization/internal/config"
)

// saveDiagramDialog asks for a destination and writes the current diagram as
// a PNG. A cancelled dialog is not an error.
func (g *Game) saveDiagramDialog() error {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Diagram"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if filepath.Ext(path) == "" {
		path += ".png"
	}
	return g.writeDiagramPNG(path)
}

func (g *Game) writeDiagramPNG(path string) error {
	img := g.renderer.Render(g.derived.NumA, g.derived.NumB, g.hypLabel())

	rgba := image.NewRGBA(image.Rect(0, 0, config.CanvasWidth, config.CanvasHeight))
	img.ReadPixels(rgba.Pix)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, rgba)
}
