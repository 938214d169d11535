package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/juan-oclock/kansyl-assets/internal/config"
	"github.com/juan-oclock/kansyl-assets/internal/prompt"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// app carries the process streams so commands can be driven from tests.
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	prompt     *prompt.Prompter
	configPath string
	now        func() time.Time
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		prompt: prompt.New(stdin, stdout),
		now:    time.Now,
	}
}

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	os.Exit(a.run(os.Args[1:]))
}

// run parses flags, dispatches the command and returns the exit code.
func (a *app) run(args []string) int {
	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config", "-c":
			if i+1 < len(args) {
				a.configPath = args[i+1]
				i++
			} else {
				fmt.Fprintf(a.stderr, "Error: --config requires a file path\n")
				return 1
			}
		default:
			filtered = append(filtered, args[i])
		}
	}

	if len(filtered) < 1 {
		a.printUsage(a.stderr)
		return 1
	}

	switch filtered[0] {
	case "help", "-h", "--help":
		a.printUsage(a.stdout)
		return 0
	case "version", "-V", "--version":
		a.printVersion()
		return 0
	case "simple", "professional", "calendar":
		return a.drawTheme(filtered[0])
	case "resize":
		return a.resize(filtered[1:])
	case "restore":
		return a.restore(filtered[1:])
	case "download":
		return a.download()
	case "apple-secret":
		return a.appleSecret()
	case "history":
		return a.history(filtered[1:])
	case "themes":
		return a.themes()
	default:
		fmt.Fprintf(a.stderr, "Error: unknown command %q\n", filtered[0])
		fmt.Fprintf(a.stderr, "Run 'kansyl-assets help' for usage.\n")
		return 1
	}
}

func (a *app) loadConfig() (config.Config, bool) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		return config.Config{}, false
	}
	return cfg, true
}

func (a *app) printVersion() {
	fmt.Fprintf(a.stdout, "kansyl-assets %s (built %s, %s/%s)\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func (a *app) printUsage(w io.Writer) {
	fmt.Fprint(w, `kansyl-assets - build the Kansyl iOS app icon sets

Usage:
  kansyl-assets [--config <path>] <command> [args]

Icon sets:
  simple                     Draw the "K" glyph icon set (AppIcon)
  professional               Draw the clock icon set (AppIcon)
  calendar                   Draw the calendar icon set (AppIcon-Calendar)
  resize <source-image>      Resize a source image into AppIcon
  restore [set]              Copy the last backup of a set back (default AppIcon)

Other commands:
  download                   Fetch the remote app icon artwork
  apple-secret               Generate the Sign in with Apple client secret
  history [n]                Show the last n runs (default 10)
  history clean <days>       Remove runs older than <days>
  history clear              Remove all recorded runs
  themes                     List drawing themes and font sources
  version                    Show version information
  help                       Show this help

Options:
  -c, --config <path>        Config file (default: kansyl-assets.json next to
                             the binary, then in the user config directory)

Icon sets are written to <assets_dir>/<set>.appiconset. An existing set is
copied to <set>.appiconset.backup first. Settings can be overridden with
KANSYL_* environment variables, e.g. KANSYL_ASSETS_DIR.
`)
}
