// Package manifest writes the Contents.json file that describes an Xcode
// app icon set.
package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/juan-oclock/kansyl-assets/internal/catalog"
	"github.com/juan-oclock/kansyl-assets/internal/paths"
)

// FileName is the manifest file Xcode expects inside an .appiconset.
const FileName = "Contents.json"

// Image is one entry of the "images" array.
type Image struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
	Size     string `json:"size"`
}

// Info is the fixed "info" block Xcode writes.
type Info struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// Contents is the whole manifest document.
type Contents struct {
	Images []Image `json:"images"`
	Info   Info    `json:"info"`
}

// New returns an empty manifest with Xcode's info block.
func New() *Contents {
	return &Contents{
		Images: []Image{},
		Info:   Info{Author: "xcode", Version: 1},
	}
}

// EntryFor builds the manifest entry for a catalog variant.
func EntryFor(spec catalog.IconSpec) Image {
	return Image{
		Filename: spec.Filename(),
		Idiom:    string(spec.Idiom),
		Scale:    spec.ScaleString(),
		Size:     spec.SizeString(),
	}
}

// Add appends the entry for spec.
func (c *Contents) Add(spec catalog.IconSpec) {
	c.Images = append(c.Images, EntryFor(spec))
}

// Marshal encodes the manifest the way Xcode does: two-space indent and a
// trailing newline.
func (c *Contents) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("manifest: marshal: %w", err)
	}
	return append(data, '\n'), nil
}

// Write replaces the manifest at path with one listing images. Any
// existing file is overwritten, never merged.
func Write(path string, images []Image) error {
	c := New()
	c.Images = append(c.Images, images...)
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := paths.AtomicWrite(path, data); err != nil {
		return fmt.Errorf("manifest: write %s: %w", path, err)
	}
	return nil
}
