package config

import (
	"fmt"
	"regexp"
)

// Config represents the pipeline configuration: the built-in defaults
// merged with user overrides. One immutable value per emission pass.
type Config struct {
	// SWDest is the output path of the generated worker script, relative
	// to the build output root.
	SWDest string `mapstructure:"sw_dest" yaml:"sw_dest" json:"sw_dest"`

	// ImportsDirectory is the subpath under the build output root that
	// receives manifest artifacts and the local runtime copy.
	ImportsDirectory string `mapstructure:"imports_directory" yaml:"imports_directory" json:"imports_directory"`

	// PrecacheManifestFilename is the manifest filename template. It must
	// contain the [manifestHash] placeholder.
	PrecacheManifestFilename string `mapstructure:"precache_manifest_filename" yaml:"precache_manifest_filename" json:"precache_manifest_filename"`

	// ImportWorkboxFrom selects the runtime support source: "disabled",
	// "cdn", "local", or the name of a build bundle.
	ImportWorkboxFrom string `mapstructure:"import_workbox_from" yaml:"import_workbox_from" json:"import_workbox_from"`

	// ImportScripts lists extra script URLs the worker imports, in order.
	// A single URL in a config file is normalized to a one-element list.
	ImportScripts StringList `mapstructure:"import_scripts" yaml:"import_scripts" json:"import_scripts"`

	// GlobPatterns and GlobIgnores select files when the pipeline itself
	// scans a build directory (CLI mode). GlobPatterns is also forwarded
	// to the generation service when set explicitly; when nil the
	// sanitizer sends an empty list so the generator never globs on its
	// own.
	GlobPatterns StringList `mapstructure:"glob_patterns" yaml:"glob_patterns" json:"glob_patterns"`
	GlobIgnores  StringList `mapstructure:"glob_ignores" yaml:"glob_ignores" json:"glob_ignores"`

	// Exclude lists glob patterns for assets to leave out of the manifest.
	Exclude StringList `mapstructure:"exclude" yaml:"exclude" json:"exclude"`

	// Chunks restricts the manifest to files belonging to the named
	// bundles; ExcludeChunks drops files belonging to the named bundles.
	Chunks        StringList `mapstructure:"chunks" yaml:"chunks" json:"chunks"`
	ExcludeChunks StringList `mapstructure:"exclude_chunks" yaml:"exclude_chunks" json:"exclude_chunks"`

	// DontCacheBustURLsMatching marks URLs that already carry a content
	// hash; matching entries are emitted without a revision.
	DontCacheBustURLsMatching string `mapstructure:"dont_cache_bust_urls_matching" yaml:"dont_cache_bust_urls_matching" json:"dont_cache_bust_urls_matching"`

	// Generation passthrough options, forwarded to the generation service.
	CacheID               string `mapstructure:"cache_id" yaml:"cache_id" json:"cache_id"`
	SkipWaiting           bool   `mapstructure:"skip_waiting" yaml:"skip_waiting" json:"skip_waiting"`
	ClientsClaim          bool   `mapstructure:"clients_claim" yaml:"clients_claim" json:"clients_claim"`
	CleanupOutdatedCaches bool   `mapstructure:"cleanup_outdated_caches" yaml:"cleanup_outdated_caches" json:"cleanup_outdated_caches"`
	NavigateFallback      string `mapstructure:"navigate_fallback" yaml:"navigate_fallback" json:"navigate_fallback"`
	OfflineAnalytics      bool   `mapstructure:"offline_analytics" yaml:"offline_analytics" json:"offline_analytics"`

	// Deprecated: SWSrc belongs to inject-manifest generation and is
	// ignored here. Setting it triggers a build warning.
	SWSrc string `mapstructure:"sw_src" yaml:"sw_src" json:"sw_src"`

	// Deprecated: GlobDirectory is ignored; the pipeline always derives
	// the manifest from the build output set. Setting it triggers a build
	// warning.
	GlobDirectory string `mapstructure:"glob_directory" yaml:"glob_directory" json:"glob_directory"`
}

// Validate reports non-fatal configuration findings: deprecated or
// unsupported options that would otherwise silently change the output.
// Fatal configuration errors (missing hash placeholder, unknown bundle
// names) surface later from the components that own them, before any
// output is registered.
func (c *Config) Validate() []string {
	var warnings []string

	if c.SWSrc != "" {
		warnings = append(warnings, "sw_src is ignored in standalone generation; the worker script is generated, not copied")
	}
	if c.GlobDirectory != "" {
		warnings = append(warnings, "glob_directory is ignored; precache entries are derived from the build output set")
	}
	if c.DontCacheBustURLsMatching != "" {
		if _, err := regexp.Compile(c.DontCacheBustURLsMatching); err != nil {
			warnings = append(warnings, fmt.Sprintf("dont_cache_bust_urls_matching is not a valid pattern and will be ignored: %v", err))
		}
	}

	return warnings
}
