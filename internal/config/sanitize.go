package config

import "github.com/quantmind-br/swgen-go/internal/domain"

// Sanitize projects the full configuration, plus the computed import state,
// onto exactly the field set the generation service accepts for standalone
// generation. Pipeline-only options (sw_dest, imports_directory,
// precache_manifest_filename) are dropped here by construction.
//
// GlobPatterns defaults to an empty list when the user never set it,
// overriding whatever default the generation service would apply: the
// pipeline supplies precache entries explicitly and must not let the
// generator glob the filesystem on its own.
func Sanitize(cfg *Config, entries []domain.ManifestEntry, importScripts []string, swImport string) *domain.GeneratorInput {
	globPatterns := []string(cfg.GlobPatterns)
	if globPatterns == nil {
		globPatterns = []string{}
	}

	if entries == nil {
		entries = []domain.ManifestEntry{}
	}
	if importScripts == nil {
		importScripts = []string{}
	}

	return &domain.GeneratorInput{
		PrecacheEntries:       entries,
		GlobPatterns:          globPatterns,
		ImportScripts:         importScripts,
		WorkboxSWImport:       swImport,
		CacheID:               cfg.CacheID,
		SkipWaiting:           cfg.SkipWaiting,
		ClientsClaim:          cfg.ClientsClaim,
		CleanupOutdatedCaches: cfg.CleanupOutdatedCaches,
		NavigateFallback:      cfg.NavigateFallback,
		OfflineAnalytics:      cfg.OfflineAnalytics,
	}
}
