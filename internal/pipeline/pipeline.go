// Package pipeline drives one icon-set run: it walks the catalog, asks a
// Producer for each raster, writes the PNGs and finally the manifest.
package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/juan-oclock/kansyl-assets/internal/catalog"
	"github.com/juan-oclock/kansyl-assets/internal/manifest"
	"github.com/juan-oclock/kansyl-assets/internal/paths"
	"github.com/juan-oclock/kansyl-assets/internal/render"
)

var (
	ErrNoOutputDir  = errors.New("pipeline: no output directory")
	ErrNoProducer   = errors.New("pipeline: no producer")
	ErrSizeMismatch = errors.New("pipeline: raster size mismatch")
)

// OutputTarget is where a run writes. BackupDir, when set, receives a copy
// of an existing Dir before anything in it is overwritten.
type OutputTarget struct {
	Dir       string
	BackupDir string
}

// NewTarget returns the target for the icon set named setName inside an
// asset catalog directory, e.g. ("kansyl/Assets.xcassets", "AppIcon").
func NewTarget(assetsDir, setName string, backup bool) OutputTarget {
	dir := filepath.Join(assetsDir, setName+".appiconset")
	t := OutputTarget{Dir: dir}
	if backup {
		t.BackupDir = dir + paths.BackupSuffix
	}
	return t
}

// EntryResult is the outcome for one catalog entry.
type EntryResult struct {
	Spec      catalog.IconSpec
	Filename  string
	PixelSize int
	Err       error
}

// OK reports whether the file was written.
func (e EntryResult) OK() bool { return e.Err == nil }

// Result summarises a run.
type Result struct {
	Theme        string
	Target       OutputTarget
	Entries      []EntryResult
	Written      int
	Failed       int
	ManifestPath string
	Backup       *Backup
	Started      time.Time
	Finished     time.Time
}

// Driver runs the catalog through a Producer. A Driver is used for one run
// at a time.
type Driver struct {
	Catalog  []catalog.IconSpec
	Producer render.Producer
	Theme    string
	// Out receives human-readable progress; nil discards it.
	Out io.Writer
	// OnTransition, if set, is called after every state change.
	OnTransition func(from, to State)

	state State
}

// State returns the current state.
func (d *Driver) State() State { return d.state }

func (d *Driver) transition(to State) {
	from := d.state
	if !allowedTransition(from, to) {
		panic(fmt.Sprintf("pipeline: invalid transition %s -> %s", from, to))
	}
	d.state = to
	if d.OnTransition != nil {
		d.OnTransition(from, to)
	}
}

func (d *Driver) out() io.Writer {
	if d.Out == nil {
		return io.Discard
	}
	return d.Out
}

// Run executes Init, Generating and Finalizing. Failures producing or
// writing a single entry are recorded in the result and do not stop the
// run; the returned error is non-nil only if preparing the target or
// writing the manifest failed.
func (d *Driver) Run(target OutputTarget) (*Result, error) {
	d.state = StateInit
	res := &Result{Theme: d.Theme, Target: target, Started: time.Now()}

	if err := d.prepare(target, res); err != nil {
		d.transition(StateFailed)
		res.Finished = time.Now()
		return res, err
	}

	d.transition(StateGenerating)
	w := d.out()
	images := make([]manifest.Image, 0, len(d.Catalog))
	for _, spec := range d.Catalog {
		er := d.generate(target.Dir, spec)
		res.Entries = append(res.Entries, er)
		if er.Err != nil {
			res.Failed++
			fmt.Fprintf(w, "✗ Error creating %s: %v\n", er.Filename, er.Err)
			continue
		}
		res.Written++
		images = append(images, manifest.EntryFor(spec))
		fmt.Fprintf(w, "✓ Created: %s (%dx%d)\n", er.Filename, er.PixelSize, er.PixelSize)
	}

	d.transition(StateFinalizing)
	res.ManifestPath = filepath.Join(target.Dir, manifest.FileName)
	err := manifest.Write(res.ManifestPath, images)
	res.Finished = time.Now()
	if err != nil {
		d.transition(StateFailed)
		return res, err
	}
	printSummary(w, res)
	d.transition(StateDone)
	return res, nil
}

func (d *Driver) prepare(target OutputTarget, res *Result) error {
	if target.Dir == "" {
		return ErrNoOutputDir
	}
	if d.Producer == nil {
		return ErrNoProducer
	}
	if err := catalog.Validate(d.Catalog); err != nil {
		return err
	}
	if target.BackupDir != "" {
		b, err := TakeBackup(target.Dir, target.BackupDir)
		if err != nil {
			return err
		}
		if b != nil {
			res.Backup = b
			fmt.Fprintf(d.out(), "Backup of existing icons saved to: %s\n", b.Path())
		}
	}
	if err := os.MkdirAll(target.Dir, paths.DirPerm); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	return paths.Writable(target.Dir)
}

func (d *Driver) generate(dir string, spec catalog.IconSpec) EntryResult {
	er := EntryResult{Spec: spec, Filename: spec.Filename(), PixelSize: spec.PixelSize()}

	img, err := d.Producer.Produce(er.PixelSize)
	if err != nil {
		er.Err = err
		return er
	}
	if b := img.Bounds(); b.Dx() != er.PixelSize || b.Dy() != er.PixelSize {
		er.Err = fmt.Errorf("%w: got %dx%d, want %dx%d",
			ErrSizeMismatch, b.Dx(), b.Dy(), er.PixelSize, er.PixelSize)
		return er
	}
	if spec.IsMarketing() {
		img = render.Flatten(img, color.White)
	}

	data, err := EncodePNG(img)
	if err != nil {
		er.Err = err
		return er
	}
	if err := paths.AtomicWrite(filepath.Join(dir, er.Filename), data); err != nil {
		er.Err = err
	}
	return er
}

// EncodePNG encodes img with maximum compression.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func printSummary(w io.Writer, res *Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Results:")
	fmt.Fprintf(w, "   Successfully generated: %d icons\n", res.Written)
	if res.Failed > 0 {
		fmt.Fprintf(w, "   Failed: %d icons\n", res.Failed)
	}
	fmt.Fprintf(w, "   Icons saved to: %s\n", res.Target.Dir)
	fmt.Fprintf(w, "   %s updated\n", manifest.FileName)
}
