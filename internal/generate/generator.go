// Package generate holds the built-in implementation of the worker
// generation service. Hosts with their own generator satisfy
// domain.Generator instead.
package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aymerick/raymond"

	"github.com/quantmind-br/swgen-go/internal/domain"
	"github.com/quantmind-br/swgen-go/internal/utils"
)

// TemplateGenerator renders the worker script from a handlebars template.
type TemplateGenerator struct {
	logger *utils.Logger
}

// NewTemplateGenerator creates the built-in template generator.
func NewTemplateGenerator(logger *utils.Logger) *TemplateGenerator {
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}
	return &TemplateGenerator{logger: logger.WithComponent("generate")}
}

// Name returns the generator name
func (g *TemplateGenerator) Name() string {
	return "template"
}

// Generate produces the worker script for the given input.
func (g *TemplateGenerator) Generate(ctx context.Context, input *domain.GeneratorInput) (*domain.GeneratorResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, fmt.Errorf("%w: input is required", domain.ErrGenerationFailed)
	}

	var warnings []string
	if input.WorkboxSWImport == "" && len(input.ImportScripts) == 0 {
		warnings = append(warnings, "no runtime import and no import scripts configured; the generated worker assumes runtime support is provided elsewhere")
	}
	if len(input.GlobPatterns) > 0 {
		warnings = append(warnings, "glob_patterns are ignored by the template generator; precache entries are supplied explicitly by the pipeline")
	}

	data := map[string]interface{}{
		"swImport":              jsString(input.WorkboxSWImport),
		"importScripts":         jsStringList(input.ImportScripts),
		"cacheID":               jsString(input.CacheID),
		"skipWaiting":           input.SkipWaiting,
		"clientsClaim":          input.ClientsClaim,
		"cleanupOutdatedCaches": input.CleanupOutdatedCaches,
		"navigateFallback":      jsString(input.NavigateFallback),
		"offlineAnalytics":      input.OfflineAnalytics,
	}

	script, err := raymond.Render(swTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	g.logger.Debug().
		Int("entries", len(input.PrecacheEntries)).
		Int("imports", len(input.ImportScripts)).
		Msg("Rendered worker script")

	return &domain.GeneratorResult{Script: script, Warnings: warnings}, nil
}

// jsString renders a Go string as a quoted JS literal, or "" when empty so
// the template block is skipped.
func jsString(s string) string {
	if s == "" {
		return ""
	}
	quoted, _ := json.Marshal(s)
	return string(quoted)
}

// jsStringList renders a list as comma-separated quoted JS literals.
func jsStringList(list []string) string {
	if len(list) == 0 {
		return ""
	}
	quoted := make([]string, len(list))
	for i, s := range list {
		q, _ := json.Marshal(s)
		quoted[i] = string(q)
	}
	return strings.Join(quoted, ",\n  ")
}
