// Package testutil contains helpers shared by tests.
package testutil

import (
	"os"
	"testing"
)

// TempDirectory returns a temporary directory that is removed when the
// test completes. When the test fails, the directory is kept so its
// contents can be inspected.
func TempDirectory(t *testing.T) string {
	t.Helper()

	d, err := os.MkdirTemp("", "tempdir-test")
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		if !t.Failed() {
			os.RemoveAll(d) //nolint:errcheck
		} else {
			t.Logf("temporary files left in %v", d)
		}
	})

	return d
}
