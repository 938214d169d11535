package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	// Decoders for source formats beyond imaging's defaults.
	_ "golang.org/x/image/webp"
)

// ErrDecodeSource reports a source image that could not be opened or decoded.
var ErrDecodeSource = errors.New("render: cannot load source image")

// Resampler scales one source image to each requested size.
type Resampler struct {
	src *image.NRGBA
}

// LoadSource opens and decodes the image at path (PNG, JPEG, GIF, BMP, TIFF
// or WebP), honouring EXIF orientation.
func LoadSource(path string) (*Resampler, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeSource, path, err)
	}
	return NewResampler(img), nil
}

// NewResampler converts img to NRGBA and returns a Resampler over it.
func NewResampler(img image.Image) *Resampler {
	return &Resampler{src: imaging.Clone(img)}
}

// Bounds returns the source image bounds.
func (r *Resampler) Bounds() image.Rectangle {
	return r.src.Bounds()
}

// Produce resamples the source with a Lanczos filter. The App Store size
// is flattened onto white with no alpha.
func (r *Resampler) Produce(pixelSize int) (image.Image, error) {
	if pixelSize <= 0 {
		return nil, ErrInvalidSize
	}
	out := imaging.Resize(r.src, pixelSize, pixelSize, imaging.Lanczos)
	if pixelSize == MarketingPixelSize {
		return Flatten(out, color.White), nil
	}
	return out, nil
}
