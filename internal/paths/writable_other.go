//go:build !unix

package paths

import (
	"fmt"
	"os"
)

// Writable returns an error if the current user cannot create files in dir.
// Without access(2) the only reliable check is to create a file.
func Writable(dir string) error {
	f, err := os.CreateTemp(dir, ".writable-*")
	if err != nil {
		return fmt.Errorf("%s is not writable: %w", dir, err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
