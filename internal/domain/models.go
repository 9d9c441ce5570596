package domain

// ManifestEntry is one precache record: the URL a service worker should
// fetch ahead of time plus the content revision it uses to decide when the
// cached copy is stale. Revision is omitted when the URL itself already
// carries a content hash.
type ManifestEntry struct {
	URL      string `json:"url" yaml:"url"`
	Revision string `json:"revision,omitempty" yaml:"revision,omitempty"`
}

// ManifestTransform rewrites the entry list before it is serialized.
// Transforms run in order; each receives the output of the previous one.
type ManifestTransform func(entries []ManifestEntry) []ManifestEntry

// GeneratorInput is the sanitized option set handed to the generation
// service. It carries exactly the fields standalone generation accepts;
// pipeline-only options (destination paths, filename templates) never
// appear here.
type GeneratorInput struct {
	// PrecacheEntries is the full manifest, supplied out-of-band. The
	// generator is never asked to derive entries on its own.
	PrecacheEntries []ManifestEntry

	// GlobPatterns is always non-nil. The pipeline sends an empty list
	// unless the user explicitly configured patterns, so the generator
	// never globs the filesystem by default.
	GlobPatterns []string

	// ImportScripts lists the URLs the worker imports after the runtime
	// support import, in load order. The manifest URL is always last.
	ImportScripts []string

	// WorkboxSWImport is the runtime support URL emitted before any other
	// import. Empty when runtime import is disabled or folded into
	// ImportScripts.
	WorkboxSWImport string

	CacheID               string
	SkipWaiting           bool
	ClientsClaim          bool
	CleanupOutdatedCaches bool
	NavigateFallback      string
	OfflineAnalytics      bool
}

// GeneratorResult is what the generation service returns.
type GeneratorResult struct {
	// Script is the complete generated worker text.
	Script string

	// Warnings are passed through verbatim into the build's warning list.
	Warnings []string
}
