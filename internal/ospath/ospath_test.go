package ospath_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kopia/tempdir/internal/ospath"
)

func TestResolveAbsolute_AlreadyAbsolute(t *testing.T) {
	abs, err := filepath.Abs("some-dir")
	require.NoError(t, err)

	got, err := ospath.ResolveAbsolute(abs)
	require.NoError(t, err)
	require.Equal(t, abs, got)
}

func TestResolveAbsolute_Relative(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	for _, rel := range []string{
		".",
		"foo",
		filepath.Join("foo", "bar"),
		filepath.Join("..", "foo"),
	} {
		got, err := ospath.ResolveAbsolute(rel)
		require.NoError(t, err)
		require.Equal(t, filepath.Join(wd, rel), got)
		require.True(t, filepath.IsAbs(got))
	}
}

func TestSystemTempDir(t *testing.T) {
	td := ospath.SystemTempDir()
	require.NotEmpty(t, td)

	st, err := os.Stat(td)
	require.NoError(t, err)
	require.True(t, st.IsDir())
}
