package tempdir

import (
	"context"

	"github.com/kopia/tempdir/internal/ospath"
)

// UsingDirectoryIn creates a temporary directory inside parentDir,
// invokes fn with its path and removes the directory with everything
// under it when fn returns, on every exit path including panics.
//
// Removal failures are discarded, as with Cleanup; callers who must
// observe them should manage a Directory handle explicitly and use Close.
func UsingDirectoryIn(ctx context.Context, parentDir, prefix string, fn func(path string) error) error {
	d, err := NewIn(ctx, parentDir, prefix)
	if err != nil {
		return err
	}

	defer d.Cleanup(ctx)

	return fn(d.Path())
}

// UsingDirectory is UsingDirectoryIn rooted at the platform's default
// temporary location.
func UsingDirectory(ctx context.Context, prefix string, fn func(path string) error) error {
	return UsingDirectoryIn(ctx, ospath.SystemTempDir(), prefix, fn)
}
