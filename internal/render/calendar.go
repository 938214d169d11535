package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/juan-oclock/kansyl-assets/internal/fonts"
)

// Calendar draws a calendar card with a crossed-out date over a vertical
// gradient, with a word mark under the card.
type Calendar struct {
	GradientTop    color.Color
	GradientBottom color.Color
	Header         color.Color
	Grid           color.Color
	Marker         color.Color
	Label          string
	Fonts          *fonts.Resolver
}

// NewCalendar returns the "calendar" theme.
func NewCalendar(r *fonts.Resolver) *Calendar {
	return &Calendar{
		GradientTop:    color.NRGBA{107, 198, 114, 255},
		GradientBottom: color.NRGBA{142, 211, 157, 255},
		Header:         alertRed,
		Grid:           color.NRGBA{200, 200, 200, 255},
		Marker:         alertRed,
		Label:          "KANSYL",
		Fonts:          r,
	}
}

const (
	calendarColumns = 7
	calendarRows    = 5
)

func (c *Calendar) Produce(pixelSize int) (image.Image, error) {
	if pixelSize <= 0 {
		return nil, ErrInvalidSize
	}
	s := float64(pixelSize)
	dc := gg.NewContext(pixelSize, pixelSize)

	dc.DrawRectangle(0, 0, s, s)
	verticalGradient(dc, s, c.GradientTop, c.GradientBottom)

	margin := s * 0.15
	cardW := s - margin*2
	cardH := cardW * 0.9
	cardX := margin
	cardY := (s - cardH) / 2
	radius := math.Floor(s / 20)

	dc.SetColor(color.NRGBA{255, 255, 255, 240})
	dc.DrawRoundedRectangle(cardX, cardY, cardW, cardH, radius)
	dc.Fill()

	headerH := cardH * 0.2
	dc.SetColor(c.Header)
	dc.DrawRoundedRectangle(cardX, cardY, cardW, headerH, radius)
	dc.Fill()

	gridY := cardY + headerH + cardH*0.1
	gridH := cardH * 0.6
	dc.SetColor(c.Grid)
	dc.SetLineWidth(float64(maxInt(1, pixelSize/300)))
	for i := 1; i < calendarColumns; i++ {
		x := cardX + cardW*float64(i)/calendarColumns
		dc.DrawLine(x, gridY, x, gridY+gridH)
		dc.Stroke()
	}
	for i := 1; i < calendarRows; i++ {
		y := gridY + gridH*float64(i)/calendarRows
		dc.DrawLine(cardX+cardW*0.05, y, cardX+cardW*0.95, y)
		dc.Stroke()
	}

	// The circled, crossed-out trial end date.
	mx := cardX + cardW*0.72
	my := gridY + gridH*0.3
	mr := cardW * 0.08
	dc.SetColor(c.Marker)
	dc.SetLineWidth(float64(maxInt(2, pixelSize/100)))
	dc.SetLineCap(gg.LineCapRound)
	dc.DrawCircle(mx, my, mr)
	dc.Stroke()
	xs := mr * 0.6
	dc.DrawLine(mx-xs, my-xs, mx+xs, my+xs)
	dc.Stroke()
	dc.DrawLine(mx-xs, my+xs, mx+xs, my-xs)
	dc.Stroke()

	face := c.Fonts.Face(math.Max(12, math.Floor(cardH*0.15)))
	ty := cardY + cardH + margin*0.3
	drawText(dc, face, c.Label, s/2+1, ty+1, 0.5, 1, shadowLight)
	drawText(dc, face, c.Label, s/2, ty, 0.5, 1, white)

	return dc.Image(), nil
}
