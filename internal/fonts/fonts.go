// Package fonts resolves a font face for icon lettering from a ranked list
// of sources. Resolution never fails: when no source is usable the built-in
// bitmap face is returned.
package fonts

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ErrUnavailable is matched by every *UnavailableError.
var ErrUnavailable = errors.New("fonts: unavailable")

// UnavailableError reports that a strategy could not produce a face.
type UnavailableError struct {
	Strategy string
	Err      error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("fonts: %s unavailable: %v", e.Strategy, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }

// Strategy is one way of obtaining a face.
type Strategy interface {
	Name() string
	// Face returns a face at the given size in points (1pt = 1px at 72 DPI)
	// or an *UnavailableError.
	Face(points float64) (font.Face, error)
}

// BuiltinName is the Source of faces produced by the bitmap fallback.
const BuiltinName = "builtin"

// Face is a resolved face plus where it came from. Bitmap faces are drawn
// at their native size and upscaled; see Rasterize.
type Face struct {
	font.Face
	Source string
	scale  float64
}

// Bitmap reports whether the face is the built-in fixed-size face.
func (f Face) Bitmap() bool { return f.scale > 0 }

// Builtin returns the basicfont 7x13 face scaled to approximate points.
func Builtin(points float64) Face {
	face := basicfont.Face7x13
	scale := points / float64(face.Height)
	if scale < 1 {
		scale = 1
	}
	return Face{Face: face, Source: BuiltinName, scale: scale}
}

// Rasterize renders s in colour c and returns it as an image. Vector faces
// render at native size; bitmap faces are upscaled by their scale factor.
func (f Face) Rasterize(s string, c color.Color) *image.NRGBA {
	d := &font.Drawer{Face: f.Face}
	m := f.Face.Metrics()
	w := d.MeasureString(s).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	if w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}

	small := image.NewNRGBA(image.Rect(0, 0, w, h))
	d.Dst = small
	d.Src = image.NewUniform(c)
	d.Dot = fixed.Point26_6{X: 0, Y: m.Ascent}
	d.DrawString(s)
	if !f.Bitmap() || f.scale == 1 {
		return small
	}

	sw := int(math.Round(float64(w) * f.scale))
	sh := int(math.Round(float64(h) * f.scale))
	big := image.NewNRGBA(image.Rect(0, 0, sw, sh))
	xdraw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), xdraw.Over, nil)
	return big
}

// Resolver tries strategies in rank order.
type Resolver struct {
	strategies []Strategy
	// Misses records why each skipped strategy was unavailable, most recent
	// resolution only.
	Misses []error
}

// NewResolver returns a resolver over the given strategies, highest rank
// first.
func NewResolver(strategies ...Strategy) *Resolver {
	return &Resolver{strategies: strategies}
}

// Strategies returns the names of the configured strategies in rank order.
func (r *Resolver) Strategies() []string {
	names := make([]string, len(r.strategies))
	for i, s := range r.strategies {
		names[i] = s.Name()
	}
	return names
}

// Face returns the first face any strategy can provide at points, or the
// built-in face when none can.
func (r *Resolver) Face(points float64) Face {
	if r == nil {
		return Builtin(points)
	}
	r.Misses = r.Misses[:0]
	for _, s := range r.strategies {
		face, err := s.Face(points)
		if err == nil {
			return Face{Face: face, Source: s.Name()}
		}
		r.Misses = append(r.Misses, err)
	}
	return Builtin(points)
}
