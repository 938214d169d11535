// Package download fetches the remote source artwork for the icon set.
package download

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/juan-oclock/kansyl-assets/internal/httputil"
	"github.com/juan-oclock/kansyl-assets/internal/paths"
	"github.com/juan-oclock/kansyl-assets/internal/shell"
)

// Fetch downloads url to dest, printing progress to out. It returns the
// saved path, or "" on any failure after printing the error.
func Fetch(url, dest string, out io.Writer) string {
	fmt.Fprintln(out, "Downloading app icon...")
	fmt.Fprintf(out, "   From: %s\n", url)
	fmt.Fprintf(out, "   To: %s\n", dest)

	n, err := save(context.Background(), url, dest)
	if err != nil {
		fmt.Fprintf(out, "✗ Error downloading icon: %v\n", err)
		return ""
	}

	fmt.Fprintln(out, "✓ Icon successfully downloaded!")
	fmt.Fprintf(out, "   Saved to: %s\n", dest)
	fmt.Fprintf(out, "   File size: %s bytes (%s)\n", humanize.Comma(n), humanize.Bytes(uint64(n)))
	return dest
}

func save(ctx context.Context, url, dest string) (int64, error) {
	resp, err := httputil.Get(ctx, url)
	if err != nil {
		return 0, fmt.Errorf("download: get: %w", err)
	}
	defer resp.Body.Close()

	if err := httputil.CheckStatus(resp, "download"); err != nil {
		return 0, err
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("download: read body: %w", err)
	}
	if err := paths.AtomicWrite(filepath.Clean(dest), data); err != nil {
		return 0, fmt.Errorf("download: write: %w", err)
	}
	return int64(len(data)), nil
}

// NextStep is the command that turns the downloaded file into an icon set.
func NextStep(path string) string {
	return "kansyl-assets resize " + shell.Quote(path)
}
