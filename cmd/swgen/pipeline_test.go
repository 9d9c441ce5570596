package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/swgen-go/internal/app"
	"github.com/quantmind-br/swgen-go/internal/config"
	"github.com/quantmind-br/swgen-go/internal/imports"
	"github.com/quantmind-br/swgen-go/internal/output"
	"github.com/quantmind-br/swgen-go/internal/utils"
)

// End-to-end: scan a build directory, run the pipeline, flush to disk.
func TestPipeline_ScanGenerateFlush(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"index.html": "<html></html>",
		"js/app.js":  "console.log('app')",
	})

	logger := utils.NewLogger(utils.LoggerOptions{Level: "error", Format: "json"})
	cfg := config.Default()

	comp, err := scanBuildDir(context.Background(), tmpDir, "/", cfg, logger)
	require.NoError(t, err)

	orch, err := app.NewOrchestrator(app.OrchestratorOptions{Config: cfg, Logger: logger})
	require.NoError(t, err)
	require.NoError(t, orch.Emit(context.Background(), comp))

	w := output.NewWriter(output.WriterOptions{BaseDir: tmpDir, Logger: logger})
	require.NoError(t, w.Flush(context.Background(), comp))

	// Worker script lands at sw_dest and imports the manifest.
	swBytes, err := os.ReadFile(filepath.Join(tmpDir, cfg.SWDest))
	require.NoError(t, err)
	sw := string(swBytes)
	assert.Contains(t, sw, "precache-manifest.")
	assert.Contains(t, sw, imports.CDNURL)

	// The manifest file exists and lists both scanned assets.
	var manifestName string
	for _, name := range comp.EmittedAssets() {
		if strings.HasPrefix(name, "precache-manifest.") {
			manifestName = name
		}
	}
	require.NotEmpty(t, manifestName)

	manifestBytes, err := os.ReadFile(filepath.Join(tmpDir, manifestName))
	require.NoError(t, err)
	manifest := string(manifestBytes)
	assert.Contains(t, manifest, "self.__precacheManifest")
	assert.Contains(t, manifest, `"/index.html"`)
	assert.Contains(t, manifest, `"/js/app.js"`)
}

func TestPipeline_LocalRuntimeCopiedToDisk(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{"app.js": "code"})

	logger := utils.NewLogger(utils.LoggerOptions{Level: "error", Format: "json"})
	cfg := config.Default()
	cfg.ImportWorkboxFrom = imports.ModeLocal
	cfg.ImportsDirectory = "wb-assets"

	comp, err := scanBuildDir(context.Background(), tmpDir, "/", cfg, logger)
	require.NoError(t, err)

	orch, err := app.NewOrchestrator(app.OrchestratorOptions{Config: cfg, Logger: logger})
	require.NoError(t, err)
	require.NoError(t, orch.Emit(context.Background(), comp))

	w := output.NewWriter(output.WriterOptions{BaseDir: tmpDir, Logger: logger})
	require.NoError(t, w.Flush(context.Background(), comp))

	runtime, err := os.ReadFile(filepath.Join(tmpDir, "wb-assets", "workbox-sw.js"))
	require.NoError(t, err)
	assert.NotEmpty(t, runtime)

	sw, err := os.ReadFile(filepath.Join(tmpDir, cfg.SWDest))
	require.NoError(t, err)
	assert.Contains(t, string(sw), "/wb-assets/workbox-sw.js")
}

// Re-running against the same inputs reproduces the same files.
func TestPipeline_Reproducible(t *testing.T) {
	run := func() (string, string) {
		tmpDir := t.TempDir()
		writeFiles(t, tmpDir, map[string]string{"app.js": "stable contents"})

		logger := utils.NewLogger(utils.LoggerOptions{Level: "error", Format: "json"})
		cfg := config.Default()

		comp, err := scanBuildDir(context.Background(), tmpDir, "/", cfg, logger)
		require.NoError(t, err)

		orch, err := app.NewOrchestrator(app.OrchestratorOptions{Config: cfg, Logger: logger})
		require.NoError(t, err)
		require.NoError(t, orch.Emit(context.Background(), comp))

		manifestName := comp.EmittedAssets()[0]
		asset, ok := comp.Asset(manifestName)
		require.True(t, ok)
		return manifestName, string(asset.Source)
	}

	name1, text1 := run()
	name2, text2 := run()

	assert.Equal(t, name1, name2)
	assert.Equal(t, text1, text2)
}
