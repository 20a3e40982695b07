// Package tempdir provides scoped temporary directories for transformers
// that must stage files on disk. The directory is created per call and
// removed on every exit path, including panics inside the callback.
package tempdir

import (
	"fmt"
	"os"

	"codeberg.org/savant/server/internal/logger"
)

// creates a temporary directory, runs fn with its path, and removes the
// directory recursively afterwards regardless of outcome
func With(pattern string, fn func(dir string) error) error {
	dir, err := os.MkdirTemp("", pattern)
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}

	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			logger.ErrorErr(err, "failed to remove temp directory", "dir", dir)
		}
	}()

	return fn(dir)
}
