// Package catalog holds the fixed table of app icon variants required by the
// iOS asset catalog and the naming rules derived from it.
package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Idiom is the device family an icon variant targets.
type Idiom string

const (
	IdiomPhone     Idiom = "iphone"
	IdiomPad       Idiom = "ipad"
	IdiomMarketing Idiom = "ios-marketing"
)

// IconSpec describes one image variant: a nominal point size, a scale
// factor and the idiom it is listed under.
type IconSpec struct {
	Size  float64
	Scale int
	Idiom Idiom
}

// ios is the AppIcon.appiconset table. Order matters: entries are produced
// and listed in Contents.json in this order.
var ios = [...]IconSpec{
	// iPhone
	{20, 2, IdiomPhone},
	{20, 3, IdiomPhone},
	{29, 2, IdiomPhone},
	{29, 3, IdiomPhone},
	{40, 2, IdiomPhone},
	{40, 3, IdiomPhone},
	{60, 2, IdiomPhone},
	{60, 3, IdiomPhone},
	// iPad
	{20, 1, IdiomPad},
	{20, 2, IdiomPad},
	{29, 1, IdiomPad},
	{29, 2, IdiomPad},
	{40, 1, IdiomPad},
	{40, 2, IdiomPad},
	{76, 1, IdiomPad},
	{76, 2, IdiomPad},
	{83.5, 2, IdiomPad},
	// App Store
	{1024, 1, IdiomMarketing},
}

// IOS returns a copy of the iOS app icon catalog.
func IOS() []IconSpec {
	out := make([]IconSpec, len(ios))
	copy(out, ios[:])
	return out
}

// PixelSize is the edge length in pixels: Size × Scale, rounded.
func (s IconSpec) PixelSize() int {
	return int(math.Round(s.Size * float64(s.Scale)))
}

// Filename returns the PNG file name for the variant, e.g.
// "icon-60x60@2x.png" or "icon-83.5x83.5@2x.png". iPad variants whose size
// and scale also appear in the iPhone family carry the "~ipad" device
// modifier ("icon-40x40@2x~ipad.png") so every catalog entry owns one file.
func (s IconSpec) Filename() string {
	modifier := ""
	if s.Idiom == IdiomPad && sharesPhoneVariant(s) {
		modifier = "~ipad"
	}
	return fmt.Sprintf("icon-%s@%dx%s.png", s.SizeString(), s.Scale, modifier)
}

func sharesPhoneVariant(s IconSpec) bool {
	for _, p := range ios {
		if p.Idiom == IdiomPhone && p.Size == s.Size && p.Scale == s.Scale {
			return true
		}
	}
	return false
}

// SizeString returns the nominal size as "WxH" without a trailing ".0".
func (s IconSpec) SizeString() string {
	n := FormatSize(s.Size)
	return n + "x" + n
}

// ScaleString returns the scale as "Nx".
func (s IconSpec) ScaleString() string {
	return strconv.Itoa(s.Scale) + "x"
}

// IsMarketing reports whether the variant is the App Store artwork, which
// must be saved without an alpha channel.
func (s IconSpec) IsMarketing() bool {
	return s.Idiom == IdiomMarketing
}

func (s IconSpec) String() string {
	return fmt.Sprintf("%s %s@%s", s.Idiom, FormatSize(s.Size), s.ScaleString())
}

// FormatSize renders a nominal size with the shortest exact decimal form:
// 40 → "40", 83.5 → "83.5".
func FormatSize(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var (
	ErrEmpty         = errors.New("catalog: no entries")
	ErrDuplicateName = errors.New("catalog: duplicate filename")
	ErrInvalidEntry  = errors.New("catalog: invalid entry")
)

// Validate checks that every entry is well formed and that no two entries
// map to the same file.
func Validate(specs []IconSpec) error {
	if len(specs) == 0 {
		return ErrEmpty
	}
	seen := make(map[string]int, len(specs))
	for i, s := range specs {
		if s.Size <= 0 || math.IsNaN(s.Size) || math.IsInf(s.Size, 0) {
			return fmt.Errorf("%w: entry %d has size %v", ErrInvalidEntry, i, s.Size)
		}
		if s.Scale < 1 || s.Scale > 3 {
			return fmt.Errorf("%w: entry %d has scale %d", ErrInvalidEntry, i, s.Scale)
		}
		switch s.Idiom {
		case IdiomPhone, IdiomPad, IdiomMarketing:
		default:
			return fmt.Errorf("%w: entry %d has idiom %q", ErrInvalidEntry, i, s.Idiom)
		}
		name := s.Filename()
		if j, ok := seen[name]; ok {
			return fmt.Errorf("%w: %s (entries %d and %d)", ErrDuplicateName, name, j, i)
		}
		seen[name] = i
	}
	return nil
}
