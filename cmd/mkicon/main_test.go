package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunWritesPreview(t *testing.T) {
	out := filepath.Join(t.TempDir(), "preview.png")
	var stdout strings.Builder
	if err := run([]string{"calendar", "180", out}, &stdout); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 180 || cfg.Height != 180 {
		t.Errorf("preview is %dx%d, want 180x180", cfg.Width, cfg.Height)
	}
	if !strings.Contains(stdout.String(), "✓ Created:") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no args", nil, "usage: mkicon <calendar|professional|simple>"},
		{"bad size", []string{"simple", "big", filepath.Join(dir, "a.png")}, "size must be"},
		{"zero size", []string{"simple", "0", filepath.Join(dir, "a.png")}, "size must be"},
		{"bad theme", []string{"neon", "64", filepath.Join(dir, "a.png")}, `unknown theme "neon"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, &strings.Builder{})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
}
