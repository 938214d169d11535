package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/juan-oclock/kansyl-assets/internal/fonts"
)

// HourAngle returns the screen-space angle in degrees of an hour hand.
// 0° points right and angles grow clockwise, so 12 o'clock is −90°.
func HourAngle(hour int) float64 {
	return -90 + float64(hour)*30
}

// MinuteAngle returns the screen-space angle in degrees of a minute hand.
func MinuteAngle(minute int) float64 {
	return -90 + float64(minute)*6
}

// HandEnd returns the tip of a hand of the given length from (cx, cy).
func HandEnd(cx, cy, length, degrees float64) (x, y float64) {
	rad := degrees * math.Pi / 180
	return cx + length*math.Cos(rad), cy + length*math.Sin(rad)
}

// Clock draws a clock face whose hands sit just before the hour, the
// "trial about to expire" motif, with a letter under the dial and a
// notification badge.
type Clock struct {
	Hour, Minute   int
	GradientTop    color.Color
	GradientBottom color.Color
	Flat           color.Color // background below roundedMinSize
	Hands          color.Color
	Letter         string
	BadgeGlyph     string
	Fonts          *fonts.Resolver
}

// NewClock returns the "professional" theme, a clock at 11:59.
func NewClock(r *fonts.Resolver) *Clock {
	return &Clock{
		Hour:           11,
		Minute:         59,
		GradientTop:    color.NRGBA{64, 134, 255, 255},
		GradientBottom: color.NRGBA{108, 99, 255, 255},
		Flat:           color.NRGBA{74, 144, 226, 255},
		Hands:          alertRed,
		Letter:         "K",
		BadgeGlyph:     "!",
		Fonts:          r,
	}
}

func (c *Clock) Produce(pixelSize int) (image.Image, error) {
	if pixelSize <= 0 {
		return nil, ErrInvalidSize
	}
	s := float64(pixelSize)
	dc := gg.NewContext(pixelSize, pixelSize)

	dc.DrawRoundedRectangle(0, 0, s, s, math.Floor(s/8))
	if pixelSize >= roundedMinSize {
		verticalGradient(dc, s, c.GradientTop, c.GradientBottom)
	} else {
		dc.SetColor(c.Flat)
		dc.Fill()
	}

	cx, cy := math.Floor(s/2), math.Floor(s/2)
	r := math.Floor(s * 0.6 * 0.4)

	dc.DrawCircle(cx, cy, r)
	dc.SetColor(color.NRGBA{255, 255, 255, 220})
	dc.FillPreserve()
	dc.SetColor(white)
	dc.SetLineWidth(1)
	dc.Stroke()

	dc.SetColor(c.Hands)
	dc.SetLineCap(gg.LineCapRound)
	hx, hy := HandEnd(cx, cy, r*0.5, HourAngle(c.Hour))
	dc.SetLineWidth(float64(maxInt(2, pixelSize/150)))
	dc.DrawLine(cx, cy, hx, hy)
	dc.Stroke()
	mx, my := HandEnd(cx, cy, r*0.7, MinuteAngle(c.Minute))
	dc.SetLineWidth(float64(maxInt(1, pixelSize/200)))
	dc.DrawLine(cx, cy, mx, my)
	dc.Stroke()

	dc.DrawCircle(cx, cy, float64(maxInt(2, pixelSize/100)))
	dc.Fill()

	face := c.Fonts.Face(math.Max(10, math.Floor(s*0.25)))
	shadow := float64(maxInt(1, pixelSize/200))
	ty := cy + math.Floor(r/2)
	drawText(dc, face, c.Letter, cx+shadow, ty+shadow, 0.5, 1, shadowLight)
	drawText(dc, face, c.Letter, cx, ty, 0.5, 1, white)

	if pixelSize >= badgeMinSize {
		d := float64(pixelSize / 6)
		bx := s - d - float64(pixelSize/20)
		by := float64(pixelSize / 20)
		dc.SetColor(alertRed)
		dc.DrawCircle(bx+d/2, by+d/2, d/2)
		dc.Fill()
		if c.BadgeGlyph != "" {
			bf := c.Fonts.Face(math.Max(8, math.Floor(d/2)))
			drawText(dc, bf, c.BadgeGlyph, bx+d/2, by+d/2, 0.5, 0.5, white)
		}
	}
	return dc.Image(), nil
}
