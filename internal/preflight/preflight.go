// Package preflight validates launch prerequisites before any window is
// created.
package preflight

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// CheckDocument verifies that path names a readable regular file. A failure
// here is fatal when a launch was requested: there is nothing to present.
func CheckDocument(path string) error {
	if path == "" {
		return fmt.Errorf("no document given")
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("document %q does not exist", path)
		}
		return fmt.Errorf("stat document %q: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("document %q is a directory", path)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("document %q is not a regular file", path)
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return fmt.Errorf("document %q is not readable: %w", path, err)
	}
	return nil
}
