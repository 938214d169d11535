package history

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
)

// Print writes a table of runs, newest first, with times relative to now.
func Print(w io.Writer, runs []Run, now time.Time) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}
	for _, r := range runs {
		status := "✓"
		if r.Failed > 0 {
			status = "✗"
		}
		fmt.Fprintf(w, "%s #%-4d %-16s %-12s %2d written, %d failed  %s\n",
			status, r.ID, humanize.RelTime(r.Time, now, "ago", "from now"),
			r.Command, r.Written, r.Failed, r.Dir)
	}
}
