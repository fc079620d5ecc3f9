package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("205/55R16"), 0o644))
}

func TestDiscoverDirectory(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.txt"))
	touch(t, filepath.Join(root, "b.csv"))
	touch(t, filepath.Join(root, "sub", "c.md"))
	touch(t, filepath.Join(root, "ignored.xlsx"))
	touch(t, filepath.Join(root, ".hidden", "d.txt"))

	res, err := Discover([]string{root})
	require.NoError(t, err)
	require.Len(t, res.Files, 3)
	assert.Contains(t, res.Files, filepath.Join(root, "a.txt"))
	assert.Contains(t, res.Files, filepath.Join(root, "b.csv"))
	assert.Contains(t, res.Files, filepath.Join(root, "sub", "c.md"))
}

func TestDiscoverDirectFileAnyExtension(t *testing.T) {
	root := t.TempDir()
	p := filepath.Join(root, "sizes.dat")
	touch(t, p)

	res, err := Discover([]string{p})
	require.NoError(t, err)
	assert.Equal(t, []string{p}, res.Files)
}

func TestDiscoverDeduplicatesAndSorts(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a.txt")
	b := filepath.Join(root, "b.txt")
	touch(t, a)
	touch(t, b)

	res, err := Discover([]string{b, a, root})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, res.Files)
}

func TestDiscoverErrors(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		_, err := Discover([]string{"/definitely/not/here"})
		require.Error(t, err)
	})

	t.Run("no inputs", func(t *testing.T) {
		_, err := Discover(nil)
		require.Error(t, err)
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := Discover([]string{t.TempDir()})
		require.Error(t, err)
	})
}
