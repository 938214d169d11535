package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/juan-oclock/kansyl-assets/internal/fonts"
)

// Glyph draws a single letter on a two-tone background with an optional
// corner badge.
type Glyph struct {
	Letter string
	Top    color.Color // upper half
	Bottom color.Color // lower half
	// Badge fills the corner disc; nil disables it.
	Badge      color.Color
	BadgeGlyph string
	Fonts      *fonts.Resolver
}

// NewGlyph returns the "simple" theme: a white K on blue with a green
// check disc.
func NewGlyph(r *fonts.Resolver) *Glyph {
	return &Glyph{
		Letter: "K",
		Top:    color.NRGBA{31, 71, 204, 255},
		Bottom: color.NRGBA{38, 89, 242, 255},
		Badge:  color.NRGBA{76, 217, 100, 255},
		Fonts:  r,
	}
}

func (g *Glyph) Produce(pixelSize int) (image.Image, error) {
	if pixelSize <= 0 {
		return nil, ErrInvalidSize
	}
	s := float64(pixelSize)
	dc := gg.NewContext(pixelSize, pixelSize)

	if pixelSize >= roundedMinSize {
		dc.DrawRoundedRectangle(0, 0, s, s, s/8)
		dc.Clip()
	}
	dc.SetColor(g.Bottom)
	dc.DrawRectangle(0, 0, s, s)
	dc.Fill()
	dc.SetColor(g.Top)
	dc.DrawRectangle(0, 0, s, s/2)
	dc.Fill()

	face := g.Fonts.Face(s * 0.5)
	shadow := 1.0
	if pixelSize >= badgeMinSize {
		shadow = 2
	}
	cx, cy := s/2, s/2-s*0.05
	drawText(dc, face, g.Letter, cx+shadow, cy+shadow, 0.5, 0.5, shadowDark)
	drawText(dc, face, g.Letter, cx, cy, 0.5, 0.5, white)

	if g.Badge != nil && pixelSize >= badgeMinSize {
		d := math.Floor(s / 5)
		x := s - d - math.Floor(s/10)
		y := math.Floor(s / 10)
		dc.SetColor(g.Badge)
		dc.DrawCircle(x+d/2, y+d/2, d/2)
		dc.Fill()
		if g.BadgeGlyph != "" {
			bf := g.Fonts.Face(math.Max(8, d/2))
			drawText(dc, bf, g.BadgeGlyph, x+d/2, y+d/2, 0.5, 0.5, white)
		}
	}
	dc.ResetClip()
	return dc.Image(), nil
}
