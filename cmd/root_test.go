package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeArgs(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", nil, nil},
		{"bare size", []string{"225/45R19"}, []string{"gen", "225/45R19"}},
		{"bare file", []string{"sizes.csv"}, []string{"gen", "sizes.csv"}},
		{"already gen", []string{"gen", "225/45R19"}, []string{"gen", "225/45R19"}},
		{"version word", []string{"version"}, []string{"version"}},
		{"version flag", []string{"--version"}, []string{"--version"}},
		{"help flag", []string{"-h"}, []string{"-h"}},
		{"flags only", []string{"--zip"}, []string{"--zip"}},
		{"flag then positional", []string{"--zip", "225/45R19"}, []string{"gen", "--zip", "225/45R19"}},
		{"value flag consumes next", []string{"--out", "pages"}, []string{"--out", "pages"}},
		{"value flag then positional", []string{"--out", "pages", "225/45R19"}, []string{"gen", "--out", "pages", "225/45R19"}},
		{"double dash", []string{"--", "225/45R19"}, []string{"gen", "--", "225/45R19"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, normalizeArgs(c.in))
		})
	}
}

func tempStdout(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "stdout"))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func readBack(t *testing.T, f *os.File) string {
	t.Helper()
	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	return string(data)
}

func TestVersionCommand(t *testing.T) {
	stdout := tempStdout(t)
	root := NewRootCmd(stdout, stdout)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.Contains(t, readBack(t, stdout), "tyrepage")
}

func TestVersionFlag(t *testing.T) {
	stdout := tempStdout(t)
	root := NewRootCmd(stdout, stdout)
	root.SetArgs([]string{"--version"})
	require.NoError(t, root.Execute())
	assert.Contains(t, readBack(t, stdout), Version)
}

func TestNoArgsShowsHelp(t *testing.T) {
	stdout := tempStdout(t)
	root := NewRootCmd(stdout, stdout)
	root.SetArgs(nil)
	require.NoError(t, root.Execute())
	assert.Contains(t, readBack(t, stdout), "tyrepage [size_or_file ...]")
}

func TestGenEndToEnd(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	outDir := t.TempDir()

	stdout := tempStdout(t)
	root := NewRootCmd(stdout, stdout)
	root.SetArgs([]string{"gen", "--out", outDir, "--no-jsonld", "225/45R19"})
	require.NoError(t, root.Execute())

	assert.FileExists(t, filepath.Join(outDir, "225-45-19.md"))
	assert.Contains(t, readBack(t, stdout), "done: 1 generated, 0 failed, 0 skipped")
}

func TestGenFailureSurfacesError(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	stdout := tempStdout(t)
	root := NewRootCmd(stdout, stdout)
	root.SetArgs([]string{"gen", "definitely-not-a-size"})
	err := root.Execute()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no valid tyre sizes"), err.Error())
}
