package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/juan-oclock/kansyl-assets/internal/catalog"
	"github.com/juan-oclock/kansyl-assets/internal/config"
	"github.com/juan-oclock/kansyl-assets/internal/download"
	"github.com/juan-oclock/kansyl-assets/internal/fonts"
	"github.com/juan-oclock/kansyl-assets/internal/history"
	"github.com/juan-oclock/kansyl-assets/internal/paths"
	"github.com/juan-oclock/kansyl-assets/internal/pipeline"
	"github.com/juan-oclock/kansyl-assets/internal/render"
	"github.com/juan-oclock/kansyl-assets/internal/report"
)

const (
	setDefault  = "AppIcon"
	setCalendar = "AppIcon-Calendar"

	// minSourceSize is the App Store icon edge; smaller sources are
	// upscaled for the marketing entry.
	minSourceSize = render.MarketingPixelSize

	defaultHistoryRuns = 10
)

// themeDescriptions is shown by the themes command.
var themeDescriptions = map[string]string{
	"simple":       `bold "K" on a blue gradient with a green badge`,
	"professional": "clock at 11:59 with an alert badge",
	"calendar":     "monthly calendar page with a crossed-out day",
}

// setFor returns the icon set a theme writes to.
func setFor(theme string) string {
	if theme == "calendar" {
		return setCalendar
	}
	return setDefault
}

func (a *app) drawTheme(name string) int {
	cfg, ok := a.loadConfig()
	if !ok {
		return 1
	}
	resolver := fonts.Default(cfg.Fonts...)
	producer, err := render.Theme(name, resolver)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(a.stdout, "Generating %s icon set...\n\n", name)
	code := a.generate(cfg, name, name, producer)
	if face := resolver.Face(12); face.Bitmap() {
		fmt.Fprintf(a.stderr, "Warning: no font could be loaded, used the built-in bitmap face\n")
	}
	return code
}

func (a *app) resize(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(a.stderr, "Usage: kansyl-assets resize <source-image>\n")
		fmt.Fprintf(a.stderr, "Example: kansyl-assets resize Resources/new_app_icon.png\n")
		return 1
	}
	src := args[0]
	if !paths.Exists(src) {
		fmt.Fprintf(a.stderr, "Error: source image not found: %s\n", src)
		return 1
	}

	cfg, ok := a.loadConfig()
	if !ok {
		return 1
	}

	producer, err := render.LoadSource(src)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}

	b := producer.Bounds()
	w, h := b.Dx(), b.Dy()
	fmt.Fprintf(a.stdout, "Source image: %s (%dx%d)\n", src, w, h)
	if w != h {
		fmt.Fprintf(a.stdout, "Warning: source image is not square, icons will be stretched\n")
	}
	if w < minSourceSize || h < minSourceSize {
		fmt.Fprintf(a.stdout, "Warning: source image is smaller than %dx%d, large icons will be upscaled\n",
			minSourceSize, minSourceSize)
		if !a.prompt.YN("Continue anyway?") {
			fmt.Fprintln(a.stdout, "Exiting...")
			return 0
		}
	}
	fmt.Fprintln(a.stdout)

	return a.generate(cfg, "resize", "resize", producer)
}

// generate runs the catalog through producer into the theme's icon set,
// then records and reports the run.
func (a *app) generate(cfg config.Config, command, theme string, producer render.Producer) int {
	target := pipeline.NewTarget(cfg.IconSet.AssetsDir, setFor(theme), cfg.IconSet.Backup)
	d := &pipeline.Driver{
		Catalog:  catalog.IOS(),
		Producer: producer,
		Theme:    theme,
		Out:      a.stdout,
	}
	res, err := d.Run(target)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}

	a.afterRun(cfg, command, res)

	if res.Backup != nil {
		fmt.Fprintf(a.stdout, "\nTo restore the previous icons:\n   %s\n", res.Backup.RestoreHint())
	}
	if res.Written == 0 {
		return 1
	}
	return 0
}

// afterRun stores the run in the history database and publishes the
// summary. Failures are warnings only.
func (a *app) afterRun(cfg config.Config, command string, res *pipeline.Result) {
	sum := report.FromResult(command, res)
	if cfg.History {
		if err := recordRun(sum); err != nil {
			fmt.Fprintf(a.stderr, "Warning: history: %v\n", err)
		}
	}
	report.NewNotifier(cfg, a.stderr).Notify(sum)
}

func recordRun(sum report.Summary) error {
	s, err := history.Open(history.DefaultPath())
	if err != nil {
		return err
	}
	defer s.Close()
	_, err = s.Record(sum)
	return err
}

func (a *app) restore(args []string) int {
	set := setDefault
	if len(args) > 0 {
		set = strings.TrimSuffix(args[0], ".appiconset")
	}
	cfg, ok := a.loadConfig()
	if !ok {
		return 1
	}
	target := pipeline.NewTarget(cfg.IconSet.AssetsDir, set, true)
	b, err := pipeline.OpenBackup(target.Dir, target.BackupDir)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(a.stderr, "Error: no backup found at %s\n", target.BackupDir)
		return 1
	}
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}
	if err := b.Restore(); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(a.stdout, "✓ Restored %s from %s\n", target.Dir, b.Path())
	return 0
}

func (a *app) download() int {
	cfg, ok := a.loadConfig()
	if !ok {
		return 1
	}
	path := download.Fetch(cfg.Download.URL, cfg.Download.Dest, a.stdout)
	if path == "" {
		return 1
	}
	fmt.Fprintf(a.stdout, "\nNext step:\n   %s\n", download.NextStep(path))
	return 0
}

func (a *app) history(args []string) int {
	limit := defaultHistoryRuns
	var action string
	if len(args) > 0 {
		switch args[0] {
		case "clear", "clean":
			action = args[0]
		default:
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				fmt.Fprintf(a.stderr, "Error: history count must be a positive number\n")
				return 1
			}
			limit = n
		}
	}

	s, err := history.Open(history.DefaultPath())
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}
	defer s.Close()

	switch action {
	case "clear":
		if err := s.Clear(); err != nil {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintln(a.stdout, "History cleared.")
		return 0
	case "clean":
		if len(args) < 2 {
			fmt.Fprintf(a.stderr, "Usage: kansyl-assets history clean <days>\n")
			return 1
		}
		days, err := strconv.Atoi(args[1])
		if err != nil || days < 0 {
			fmt.Fprintf(a.stderr, "Error: days must be a non-negative number\n")
			return 1
		}
		n, err := s.Clean(days)
		if err != nil {
			fmt.Fprintf(a.stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(a.stdout, "Removed %d run(s) older than %d day(s).\n", n, days)
		return 0
	}

	runs, err := s.Runs(limit)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return 1
	}
	history.Print(a.stdout, runs, a.now())
	return 0
}

func (a *app) themes() int {
	cfg, ok := a.loadConfig()
	if !ok {
		return 1
	}
	fmt.Fprintln(a.stdout, "Themes:")
	for _, name := range render.ThemeNames() {
		fmt.Fprintf(a.stdout, "  %-14s %-18s %s\n", name, setFor(name), themeDescriptions[name])
	}
	fmt.Fprintf(a.stdout, "  %-14s %-18s %s\n", "resize", setDefault, "scale a source image (kansyl-assets resize <path>)")

	fmt.Fprintln(a.stdout)
	fmt.Fprintln(a.stdout, "Font sources, in order:")
	for _, name := range fonts.Default(cfg.Fonts...).Strategies() {
		status := "missing"
		if p, ok := strings.CutPrefix(name, "file:"); !ok || paths.Exists(p) {
			status = "ok"
		}
		fmt.Fprintf(a.stdout, "  %-7s %s\n", status, name)
	}
	fmt.Fprintf(a.stdout, "  %-7s %s\n", "ok", fonts.BuiltinName)

	if cfg.Path != "" {
		fmt.Fprintf(a.stdout, "\nConfig: %s\n", cfg.Path)
	}
	fmt.Fprintf(a.stdout, "Assets: %s\n", filepath.Clean(cfg.IconSet.AssetsDir))
	return 0
}
