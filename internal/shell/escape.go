package shell

import "strings"

// Quote wraps s in single quotes for POSIX shells. Embedded single
// quotes are closed, escaped and reopened.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
