// mkicon renders one preview image of a drawing theme.
// Usage: go run ./cmd/mkicon <theme> <size> <output.png>
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/juan-oclock/kansyl-assets/internal/fonts"
	"github.com/juan-oclock/kansyl-assets/internal/paths"
	"github.com/juan-oclock/kansyl-assets/internal/pipeline"
	"github.com/juan-oclock/kansyl-assets/internal/render"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: mkicon <%s> <size> <output.png>", strings.Join(render.ThemeNames(), "|"))
	}
	size, err := strconv.Atoi(args[1])
	if err != nil || size < 1 {
		return fmt.Errorf("size must be a positive number of pixels, got %q", args[1])
	}
	p, err := render.Theme(args[0], fonts.Default())
	if err != nil {
		return err
	}
	img, err := p.Produce(size)
	if err != nil {
		return err
	}
	data, err := pipeline.EncodePNG(img)
	if err != nil {
		return err
	}
	if err := paths.AtomicWrite(args[2], data); err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ Created: %s (%dx%d)\n", args[2], size, size)
	return nil
}
