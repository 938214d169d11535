package fonts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// SystemPaths are tried, in order, after any configured font files.
var SystemPaths = []string{
	"/System/Library/Fonts/SFNS.ttc",
	"/System/Library/Fonts/SF-Pro.ttc",
	"/System/Library/Fonts/Helvetica.ttc",
	"/System/Library/Fonts/Arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
}

// Default returns the standard chain: extra paths, SystemPaths, then the
// embedded Go Bold face.
func Default(extra ...string) *Resolver {
	var strategies []Strategy
	for _, p := range extra {
		strategies = append(strategies, &File{Path: p})
	}
	for _, p := range SystemPaths {
		strategies = append(strategies, &File{Path: p})
	}
	strategies = append(strategies, &Embedded{Label: "go-bold", Data: gobold.TTF})
	return NewResolver(strategies...)
}

// File loads a font file from disk. TrueType files (.ttf) are parsed with
// freetype; OpenType files and collections (.otf, .ttc, .otc) with
// x/image/font/opentype, using the first font of a collection.
// The file is read and parsed once.
type File struct {
	Path string

	loaded bool
	tt     *truetype.Font
	ot     *opentype.Font
	err    error
}

func (f *File) Name() string { return "file:" + f.Path }

func (f *File) Face(points float64) (font.Face, error) {
	if !f.loaded {
		f.load()
	}
	if f.err != nil {
		return nil, &UnavailableError{Strategy: f.Name(), Err: f.err}
	}
	if f.tt != nil {
		return truetype.NewFace(f.tt, &truetype.Options{
			Size:    points,
			DPI:     72,
			Hinting: font.HintingFull,
		}), nil
	}
	face, err := opentype.NewFace(f.ot, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, &UnavailableError{Strategy: f.Name(), Err: err}
	}
	return face, nil
}

func (f *File) load() {
	f.loaded = true
	data, err := os.ReadFile(f.Path)
	if err != nil {
		f.err = err
		return
	}
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".ttf":
		f.tt, f.err = truetype.Parse(data)
	case ".otf":
		f.ot, f.err = opentype.Parse(data)
	case ".ttc", ".otc":
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			f.err = err
			return
		}
		if coll.NumFonts() == 0 {
			f.err = errors.New("empty collection")
			return
		}
		f.ot, f.err = coll.Font(0)
	default:
		f.err = fmt.Errorf("unsupported font format %q", filepath.Ext(f.Path))
	}
}

// Embedded parses an in-memory TrueType/OpenType font.
type Embedded struct {
	Label string
	Data  []byte

	parsed *opentype.Font
	err    error
}

func (e *Embedded) Name() string { return "embedded:" + e.Label }

func (e *Embedded) Face(points float64) (font.Face, error) {
	if e.parsed == nil && e.err == nil {
		e.parsed, e.err = opentype.Parse(e.Data)
	}
	if e.err != nil {
		return nil, &UnavailableError{Strategy: e.Name(), Err: e.err}
	}
	face, err := opentype.NewFace(e.parsed, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, &UnavailableError{Strategy: e.Name(), Err: err}
	}
	return face, nil
}
