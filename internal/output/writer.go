// Package output flushes pipeline-emitted assets to the filesystem. Only
// the CLI uses it; hosts embedding the pipeline own their output writing.
package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/quantmind-br/swgen-go/internal/build"
	"github.com/quantmind-br/swgen-go/internal/utils"
)

// Writer handles writing emitted assets to the build output directory
type Writer struct {
	baseDir string
	dryRun  bool
	logger  *utils.Logger
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	BaseDir string
	DryRun  bool
	Logger  *utils.Logger
}

// NewWriter creates a new output writer
func NewWriter(opts WriterOptions) *Writer {
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}
	return &Writer{
		baseDir: opts.BaseDir,
		dryRun:  opts.DryRun,
		logger:  logger.WithComponent("output"),
	}
}

// Flush writes every asset the pipeline emitted into the base directory,
// overwriting existing files. Emitted paths are relative to the build
// output root.
func (w *Writer) Flush(ctx context.Context, comp *build.Compilation) error {
	for _, name := range comp.EmittedAssets() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		asset, ok := comp.Asset(name)
		if !ok {
			return fmt.Errorf("emitted asset %q is missing from the compilation", name)
		}

		path := filepath.Join(w.baseDir, filepath.FromSlash(name))

		if w.dryRun {
			w.logger.Info().Str("path", path).Int("bytes", asset.Size).Msg("Would write asset (dry run)")
			continue
		}

		if err := utils.EnsureDir(path); err != nil {
			return fmt.Errorf("failed to create output directory for %q: %w", name, err)
		}
		if err := os.WriteFile(path, asset.Source, 0644); err != nil {
			return fmt.Errorf("failed to write %q: %w", name, err)
		}

		w.logger.Debug().Str("path", path).Int("bytes", asset.Size).Msg("Wrote asset")
	}

	return nil
}
