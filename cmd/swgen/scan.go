package main

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/quantmind-br/swgen-go/internal/build"
	"github.com/quantmind-br/swgen-go/internal/config"
	"github.com/quantmind-br/swgen-go/internal/utils"
)

// scanBuildDir synthesizes a compilation from a finished build directory.
// In CLI mode the directory scan plays the role of the host build tool:
// every selected file becomes a build-supplied asset, named by its
// forward-slash path relative to the directory.
func scanBuildDir(ctx context.Context, dir, publicPath string, cfg *config.Config, logger *utils.Logger) (*build.Compilation, error) {
	patterns := []string(cfg.GlobPatterns)
	if len(patterns) == 0 {
		patterns = config.DefaultGlobPatterns
	}
	ignores := append([]string(nil), config.DefaultGlobIgnores...)
	ignores = append(ignores, cfg.GlobIgnores...)

	var selected []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if !matchesAny(patterns, rel) || matchesAny(ignores, rel) {
			return nil
		}

		selected = append(selected, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("files", len(selected)).Str("dir", dir).Msg("Selected build files")

	comp := build.NewCompilation(publicPath, dir)

	bar := utils.NewProgressBar(len(selected), utils.DescScanning)
	defer bar.Finish()

	for _, rel := range selected {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		content, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			// Unreadable files become nil-source assets; the builder turns
			// them into manifest warnings instead of failing the run.
			logger.Warn().Err(err).Str("asset", rel).Msg("Failed to read build file")
			comp.AddAsset(rel, nil)
			bar.Add(1)
			continue
		}

		comp.AddAsset(rel, content)
		bar.Add(1)
	}

	return comp, nil
}

// matchesAny reports whether the path matches at least one pattern.
func matchesAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, path); err == nil && matched {
			return true
		}
	}
	return false
}
