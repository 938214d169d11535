package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/juan-oclock/kansyl-assets/internal/catalog"
)

func TestEntryFor(t *testing.T) {
	tests := []struct {
		spec catalog.IconSpec
		want Image
	}{
		{
			catalog.IconSpec{Size: 60, Scale: 2, Idiom: catalog.IdiomPhone},
			Image{Filename: "icon-60x60@2x.png", Idiom: "iphone", Scale: "2x", Size: "60x60"},
		},
		{
			catalog.IconSpec{Size: 83.5, Scale: 2, Idiom: catalog.IdiomPad},
			Image{Filename: "icon-83.5x83.5@2x.png", Idiom: "ipad", Scale: "2x", Size: "83.5x83.5"},
		},
		{
			catalog.IconSpec{Size: 1024, Scale: 1, Idiom: catalog.IdiomMarketing},
			Image{Filename: "icon-1024x1024@1x.png", Idiom: "ios-marketing", Scale: "1x", Size: "1024x1024"},
		},
	}
	for _, tt := range tests {
		if got := EntryFor(tt.spec); got != tt.want {
			t.Errorf("EntryFor(%v) = %+v, want %+v", tt.spec, got, tt.want)
		}
	}
}

func TestMarshalShape(t *testing.T) {
	c := New()
	c.Add(catalog.IconSpec{Size: 40, Scale: 3, Idiom: catalog.IdiomPhone})

	data, err := c.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(data), "}\n") {
		t.Error("manifest should end with a newline")
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	info, ok := doc["info"].(map[string]any)
	if !ok {
		t.Fatalf("info = %T, want object", doc["info"])
	}
	if info["author"] != "xcode" || info["version"] != float64(1) {
		t.Errorf("info = %v", info)
	}
	images, ok := doc["images"].([]any)
	if !ok || len(images) != 1 {
		t.Fatalf("images = %v", doc["images"])
	}
	img := images[0].(map[string]any)
	if img["size"] != "40x40" || img["scale"] != "3x" || img["idiom"] != "iphone" {
		t.Errorf("image = %v", img)
	}
}

func TestMarshalEmptyImagesIsArray(t *testing.T) {
	data, err := New().Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"images": []`) {
		t.Errorf("empty manifest should contain an empty images array:\n%s", data)
	}
}

func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	old := `{"images":[{"filename":"stale.png"}],"info":{"author":"someone","version":7}}`
	if err := os.WriteFile(path, []byte(old), 0644); err != nil {
		t.Fatal(err)
	}

	images := []Image{EntryFor(catalog.IconSpec{Size: 20, Scale: 2, Idiom: catalog.IdiomPhone})}
	if err := Write(path, images); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got Contents
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Images) != 1 || got.Images[0].Filename != "icon-20x20@2x.png" {
		t.Errorf("images = %+v, want only the new entry", got.Images)
	}
	if got.Info != (Info{Author: "xcode", Version: 1}) {
		t.Errorf("info = %+v", got.Info)
	}
}

func TestWriteFullCatalog(t *testing.T) {
	c := New()
	for _, s := range catalog.IOS() {
		c.Add(s)
	}
	path := filepath.Join(t.TempDir(), "AppIcon.appiconset", FileName)
	if err := Write(path, c.Images); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	var got Contents
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if len(got.Images) != 18 {
		t.Errorf("len(images) = %d, want 18", len(got.Images))
	}
}
