package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// JoinURL joins a public-path prefix with a relative asset path, always
// using forward slashes and without doubling separators. The prefix may be
// empty, a path ("/static/"), or a full origin ("https://cdn.example.com").
func JoinURL(publicPath, rel string) string {
	rel = strings.TrimPrefix(filepath.ToSlash(rel), "/")
	if publicPath == "" {
		return rel
	}
	return strings.TrimSuffix(publicPath, "/") + "/" + rel
}

// ToURLPath renders a filesystem path with forward-slash separators
// regardless of host convention.
func ToURLPath(p string) string {
	return filepath.ToSlash(p)
}

// EnsureDir ensures the parent directory of path exists, creating it if
// necessary
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	return path
}
