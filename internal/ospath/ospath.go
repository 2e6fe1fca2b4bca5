// Package ospath provides discovery of OS-dependent paths.
package ospath

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ResolveAbsolute returns the given path resolved against the current
// working directory when it is relative, or unchanged when it is already
// absolute. The working directory is read once, at call time.
func ResolveAbsolute(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "unable to determine current directory")
	}

	return filepath.Join(wd, path), nil
}

// SystemTempDir returns the platform's default directory for temporary files.
func SystemTempDir() string {
	return os.TempDir()
}
