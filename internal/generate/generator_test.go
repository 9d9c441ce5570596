package generate

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/swgen-go/internal/domain"
)

func TestTemplateGenerator_Name(t *testing.T) {
	g := NewTemplateGenerator(nil)
	assert.Equal(t, "template", g.Name())
}

func TestTemplateGenerator_Generate_Basic(t *testing.T) {
	g := NewTemplateGenerator(nil)

	result, err := g.Generate(context.Background(), &domain.GeneratorInput{
		GlobPatterns:    []string{},
		ImportScripts:   []string{"extra.js", "/wb/precache-manifest.abc.js"},
		WorkboxSWImport: "https://cdn.example.com/workbox-sw.js",
	})

	require.NoError(t, err)
	assert.Empty(t, result.Warnings)

	script := result.Script
	assert.Contains(t, script, `importScripts("https://cdn.example.com/workbox-sw.js");`)
	assert.Contains(t, script, `"extra.js"`)
	assert.Contains(t, script, `"/wb/precache-manifest.abc.js"`)
	assert.Contains(t, script, "workbox.precaching.precacheAndRoute(self.__precacheManifest, {});")

	// The runtime import comes before every other import.
	runtimeIdx := strings.Index(script, "workbox-sw.js")
	extraIdx := strings.Index(script, "extra.js")
	assert.Less(t, runtimeIdx, extraIdx)
}

func TestTemplateGenerator_Generate_ImportOrder(t *testing.T) {
	g := NewTemplateGenerator(nil)

	result, err := g.Generate(context.Background(), &domain.GeneratorInput{
		GlobPatterns:  []string{},
		ImportScripts: []string{"a.js", "b.js", "manifest.js"},
	})

	require.NoError(t, err)
	script := result.Script
	assert.Less(t, strings.Index(script, `"a.js"`), strings.Index(script, `"b.js"`))
	assert.Less(t, strings.Index(script, `"b.js"`), strings.Index(script, `"manifest.js"`))
}

func TestTemplateGenerator_Generate_OptionalBlocks(t *testing.T) {
	g := NewTemplateGenerator(nil)

	result, err := g.Generate(context.Background(), &domain.GeneratorInput{
		GlobPatterns:          []string{},
		ImportScripts:         []string{"m.js"},
		WorkboxSWImport:       "wb.js",
		CacheID:               "my-app",
		SkipWaiting:           true,
		ClientsClaim:          true,
		CleanupOutdatedCaches: true,
		NavigateFallback:      "/index.html",
		OfflineAnalytics:      true,
	})

	require.NoError(t, err)
	script := result.Script
	assert.Contains(t, script, `workbox.core.setCacheNameDetails({prefix: "my-app"});`)
	assert.Contains(t, script, "workbox.core.skipWaiting();")
	assert.Contains(t, script, "workbox.core.clientsClaim();")
	assert.Contains(t, script, "workbox.precaching.cleanupOutdatedCaches();")
	assert.Contains(t, script, `workbox.routing.registerNavigationRoute("/index.html");`)
	assert.Contains(t, script, "workbox.googleAnalytics.initialize();")
}

func TestTemplateGenerator_Generate_BlocksAbsentByDefault(t *testing.T) {
	g := NewTemplateGenerator(nil)

	result, err := g.Generate(context.Background(), &domain.GeneratorInput{
		GlobPatterns:  []string{},
		ImportScripts: []string{"m.js"},
	})

	require.NoError(t, err)
	script := result.Script
	assert.NotContains(t, script, "skipWaiting")
	assert.NotContains(t, script, "clientsClaim")
	assert.NotContains(t, script, "setCacheNameDetails")
	assert.NotContains(t, script, "registerNavigationRoute")
	assert.NotContains(t, script, "googleAnalytics")
}

func TestTemplateGenerator_Generate_WarnsWithoutRuntime(t *testing.T) {
	g := NewTemplateGenerator(nil)

	result, err := g.Generate(context.Background(), &domain.GeneratorInput{
		GlobPatterns: []string{},
	})

	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "runtime")
}

func TestTemplateGenerator_Generate_WarnsOnGlobPatterns(t *testing.T) {
	g := NewTemplateGenerator(nil)

	result, err := g.Generate(context.Background(), &domain.GeneratorInput{
		GlobPatterns:    []string{"**/*.js"},
		ImportScripts:   []string{"m.js"},
		WorkboxSWImport: "wb.js",
	})

	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "glob_patterns")
}

func TestTemplateGenerator_Generate_NilInput(t *testing.T) {
	g := NewTemplateGenerator(nil)

	result, err := g.Generate(context.Background(), nil)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestTemplateGenerator_Generate_CancelledContext(t *testing.T) {
	g := NewTemplateGenerator(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := g.Generate(ctx, &domain.GeneratorInput{})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTemplateGenerator_Generate_Deterministic(t *testing.T) {
	g := NewTemplateGenerator(nil)
	input := &domain.GeneratorInput{
		GlobPatterns:    []string{},
		ImportScripts:   []string{"m.js"},
		WorkboxSWImport: "wb.js",
	}

	first, err := g.Generate(context.Background(), input)
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first.Script, second.Script)
}
