package testutil

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/shinydir/pkg/filesystem"
	"github.com/arthur-debert/shinydir/pkg/rules"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewMemoryFS returns an in-memory FS together with the afero backend for setup and assertions
func NewMemoryFS() (filesystem.FS, afero.Fs) {
	mem := afero.NewMemMapFs()
	return filesystem.NewAferoFS(mem), mem
}

// WriteTree creates files below root. Keys are slash-separated relative paths;
// parent directories are created as needed. A key ending in / creates an empty directory.
func WriteTree(t *testing.T, fs afero.Fs, root string, files map[string]string) {
	t.Helper()

	require.NoError(t, fs.MkdirAll(root, 0755))
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, fs.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	}
}

// Exists reports whether path exists in fs
func Exists(t *testing.T, fs afero.Fs, path string) bool {
	t.Helper()

	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	return exists
}

// ReadFile returns the content of path in fs
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

// EntryNames extracts base names in order
func EntryNames(entries []rules.Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}
