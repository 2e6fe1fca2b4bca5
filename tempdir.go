// Package tempdir creates uniquely-named temporary directories that are
// automatically removed when the owning handle is closed or cleaned up.
//
// A Directory is the sole owner of the filesystem directory it names:
// deletion happens at most once, triggered either by Close (which reports
// failures) or by Cleanup (best-effort, intended for defer). Release
// transfers ownership of the path to the caller and disarms deletion.
//
// Creation is collision-hardened against concurrent legitimate creators:
// candidate names carry a random alphanumeric suffix and creation relies
// on the atomicity of "make directory, fail if the path is occupied",
// retrying with a fresh name on collision.
package tempdir

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/kopia/tempdir/internal/ospath"
	"github.com/kopia/tempdir/internal/randname"
	"github.com/kopia/tempdir/logging"
)

var log = logging.Module("tempdir")

// How many times to retry finding an unused random name. It should be
// enough that an attacker pre-creating colliding names runs out of luck
// before we run out of patience; legitimate concurrency never gets close.
var maxAttempts = 1<<31 - 1 //nolint:gochecknoglobals

// suffixLength is the number of random characters in a directory name.
// It needs to be enough to dissuade an attacker from trying to
// preemptively create names of that length, but not so huge that we
// unnecessarily drain the random number generator of entropy.
const suffixLength = 12

const dirMode os.FileMode = 0o700

// randomSuffix is swapped out in tests to force name collisions.
var randomSuffix = randname.Suffix //nolint:gochecknoglobals

// Directory is a handle owning a uniquely-named temporary directory.
//
// The zero value is not usable; handles are obtained from New or NewIn.
// A handle is single-owner and must not be shared across goroutines.
type Directory struct {
	path string
}

// NewIn creates a directory inside parentDir whose name starts with the
// given prefix. A relative parentDir is resolved against the current
// working directory once, at call time.
//
// On a name collision with another creator, a fresh random name is tried;
// any other creation error (missing parent, permission denied, disk full)
// is returned immediately and unchanged.
func NewIn(ctx context.Context, parentDir, prefix string) (*Directory, error) {
	parent, err := ospath.ResolveAbsolute(parentDir)
	if err != nil {
		return nil, err
	}

	for i := 0; i < maxAttempts; i++ {
		// an empty prefix yields the bare suffix: a leaf starting with
		// "." would be treated as hidden by some file browsers.
		leaf := randomSuffix(suffixLength)
		if prefix != "" {
			leaf = prefix + "." + leaf
		}

		path := filepath.Join(parent, leaf)

		err := os.Mkdir(path, dirMode)
		if err == nil {
			return &Directory{path: path}, nil
		}

		if os.IsExist(err) {
			// somebody else grabbed this name, try another one.
			log(ctx).Debugf("temporary directory %v already exists, retrying (#%v)", path, i)
			continue
		}

		return nil, err //nolint:wrapcheck
	}

	return nil, errors.Wrap(os.ErrExist, "too many temporary directories already exist")
}

// New creates a directory inside the platform's default temporary
// location, otherwise identically to NewIn.
func New(ctx context.Context, prefix string) (*Directory, error) {
	return NewIn(ctx, ospath.SystemTempDir(), prefix)
}

// Path returns the path of the directory.
//
// Calling Path after Release or Close is a programming error and panics.
func (d *Directory) Path() string {
	if d.path == "" {
		panic("tempdir: Path called after Release or Close")
	}

	return d.path
}

// Release returns the path of the directory and disarms deletion: neither
// Close nor Cleanup will remove it afterwards and the caller becomes
// responsible for its lifetime. No filesystem operation is performed.
//
// Calling Release on an already-consumed handle is a programming error
// and panics.
func (d *Directory) Release() string {
	if d.path == "" {
		panic("tempdir: Release called after Release or Close")
	}

	p := d.path
	d.path = ""

	return p
}

// Close removes the directory and everything under it, reporting the
// underlying filesystem error on failure. It is the only way to observe
// a cleanup failure; Cleanup discards them.
func (d *Directory) Close() error {
	if d.path == "" {
		return errors.New("temporary directory already released or closed")
	}

	p := d.path
	d.path = ""

	// RemoveAll succeeds on a missing path, but a directory removed
	// out-of-band is a failure callers of Close want to hear about.
	if _, err := os.Lstat(p); err != nil {
		return err //nolint:wrapcheck
	}

	return os.RemoveAll(p) //nolint:wrapcheck
}

// Cleanup removes the directory and everything under it, discarding any
// error. It is intended to be deferred right after a successful New or
// NewIn, so the directory cannot outlive the scope that created it:
//
//	d, err := tempdir.NewIn(ctx, parent, "build")
//	if err != nil { ... }
//	defer d.Cleanup(ctx)
//
// Failures are logged at debug level and never propagated. Cleanup after
// Release or Close does nothing, so the deferred call stays safe when
// ownership was handed off earlier.
func (d *Directory) Cleanup(ctx context.Context) {
	if d.path == "" {
		return
	}

	p := d.path
	d.path = ""

	if err := os.RemoveAll(p); err != nil {
		log(ctx).Debugf("unable to remove temporary directory %v: %v", p, err)
	}
}

// String returns a diagnostic description of the handle. It does not
// touch the filesystem.
func (d *Directory) String() string {
	if d.path == "" {
		return "tempdir.Directory(released)"
	}

	return "tempdir.Directory(" + d.path + ")"
}
