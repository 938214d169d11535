// Package render produces square icon rasters, either by drawing one of the
// app's icon themes or by resampling a source image.
package render

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/juan-oclock/kansyl-assets/internal/fonts"
)

// Producer returns a pixelSize × pixelSize raster.
type Producer interface {
	Produce(pixelSize int) (image.Image, error)
}

// ProducerFunc adapts a function to Producer.
type ProducerFunc func(pixelSize int) (image.Image, error)

func (f ProducerFunc) Produce(pixelSize int) (image.Image, error) { return f(pixelSize) }

// ErrInvalidSize is returned for a non-positive pixel size.
var ErrInvalidSize = errors.New("render: pixel size must be positive")

const (
	// roundedMinSize is the smallest icon that gets rounded corners; below
	// it the rounding is lost to antialiasing.
	roundedMinSize = 40
	// badgeMinSize is the smallest icon that carries a corner badge.
	badgeMinSize = 60
	// MarketingPixelSize is the App Store artwork edge length.
	MarketingPixelSize = 1024
)

var (
	white       = color.NRGBA{255, 255, 255, 255}
	alertRed    = color.NRGBA{255, 59, 48, 255}
	shadowLight = color.NRGBA{0, 0, 0, 100}
	shadowDark  = color.NRGBA{0, 0, 0, 128}
)

// drawText draws s anchored at (x, y). ax and ay follow gg's
// DrawStringAnchored: (0.5, 0.5) centres the text, ay = 1 puts its top at y.
func drawText(dc *gg.Context, face fonts.Face, s string, x, y, ax, ay float64, c color.Color) {
	if face.Bitmap() {
		// DrawImageAnchored measures ay from the top edge.
		img := face.Rasterize(s, c)
		dc.DrawImageAnchored(img, int(math.Round(x)), int(math.Round(y)), ax, 1-ay)
		return
	}
	dc.SetFontFace(face.Face)
	dc.SetColor(c)
	dc.DrawStringAnchored(s, x, y, ax, ay)
}

// verticalGradient fills the current path top to bottom from top to bottom colour.
func verticalGradient(dc *gg.Context, size float64, top, bottom color.Color) {
	g := gg.NewLinearGradient(0, 0, 0, size)
	g.AddColorStop(0, top)
	g.AddColorStop(1, bottom)
	dc.SetFillStyle(g)
	dc.Fill()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
