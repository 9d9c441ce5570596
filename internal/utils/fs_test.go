package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinURL(t *testing.T) {
	tests := []struct {
		name       string
		publicPath string
		rel        string
		want       string
	}{
		{"empty prefix", "", "app.js", "app.js"},
		{"root prefix", "/", "app.js", "/app.js"},
		{"path prefix", "/static/", "app.js", "/static/app.js"},
		{"path prefix no trailing slash", "/static", "app.js", "/static/app.js"},
		{"full origin", "https://cdn.example.com", "app.js", "https://cdn.example.com/app.js"},
		{"leading slash stripped", "/static/", "/app.js", "/static/app.js"},
		{"nested asset", "/", "js/app.js", "/js/app.js"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinURL(tt.publicPath, tt.rel))
		})
	}
}

func TestToURLPath(t *testing.T) {
	assert.Equal(t, "a/b/c.js", ToURLPath(filepath.Join("a", "b", "c.js")))
}

func TestEnsureDir(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "a", "b", "c.txt")

	err := EnsureDir(target)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(tmpDir, "a", "b"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureDir_ExistingDir(t *testing.T) {
	tmpDir := t.TempDir()

	assert.NoError(t, EnsureDir(filepath.Join(tmpDir, "file.txt")))
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "config"), ExpandPath("~/config"))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, "/absolute/path", ExpandPath("/absolute/path"))
	assert.Equal(t, "relative/path", ExpandPath("relative/path"))
}
