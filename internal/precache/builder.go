// Package precache derives precache manifest entries from a finished build
// output set.
package precache

import (
	"fmt"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/quantmind-br/swgen-go/internal/build"
	"github.com/quantmind-br/swgen-go/internal/domain"
	"github.com/quantmind-br/swgen-go/internal/manifest"
	"github.com/quantmind-br/swgen-go/internal/utils"
)

// Builder turns a compilation's assets into manifest entries, applying the
// configured inclusion and exclusion rules and any entry transforms.
type Builder struct {
	exclude       []string
	chunks        []string
	excludeChunks []string
	dontCacheBust *regexp.Regexp
	transforms    []domain.ManifestTransform
	logger        *utils.Logger
}

// BuilderOptions contains options for creating a builder.
type BuilderOptions struct {
	// Exclude lists doublestar glob patterns; matching assets are left out
	// of the manifest.
	Exclude []string

	// Chunks restricts eligible assets to files belonging to the named
	// bundles. Assets outside every bundle stay eligible.
	Chunks []string

	// ExcludeChunks drops assets belonging to the named bundles.
	ExcludeChunks []string

	// DontCacheBustURLsMatching marks assets whose names already carry a
	// content hash; their entries are emitted without a revision. An
	// invalid pattern is ignored (the orchestrator warns about it during
	// validation).
	DontCacheBustURLsMatching string

	// Transforms rewrite the entry list after derivation, in order.
	Transforms []domain.ManifestTransform

	Logger *utils.Logger
}

// NewBuilder creates a new manifest builder.
func NewBuilder(opts BuilderOptions) *Builder {
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}

	var dontCacheBust *regexp.Regexp
	if opts.DontCacheBustURLsMatching != "" {
		if re, err := regexp.Compile(opts.DontCacheBustURLsMatching); err == nil {
			dontCacheBust = re
		}
	}

	return &Builder{
		exclude:       opts.Exclude,
		chunks:        opts.Chunks,
		excludeChunks: opts.ExcludeChunks,
		dontCacheBust: dontCacheBust,
		transforms:    opts.Transforms,
		logger:        logger.WithComponent("precache"),
	}
}

// Build produces the ordered-by-discovery entry list for every asset that
// should be available offline, plus any degraded-input warnings. An asset
// the build could not supply is excluded with a warning rather than
// aborting the pass.
func (b *Builder) Build(comp *build.Compilation) ([]domain.ManifestEntry, []string, error) {
	if comp == nil {
		return nil, nil, domain.ErrNilCompilation
	}

	var entries []domain.ManifestEntry
	var warnings []string

	for _, name := range comp.AssetNames() {
		if b.excluded(name, comp) {
			b.logger.Debug().Str("asset", name).Msg("Asset excluded from precache manifest")
			continue
		}

		asset, ok := comp.Asset(name)
		if !ok || asset.Source == nil {
			warnings = append(warnings, fmt.Sprintf("asset %q could not be read and was excluded from the precache manifest", name))
			continue
		}

		entry := domain.ManifestEntry{
			URL: utils.JoinURL(comp.PublicPath, name),
		}
		if b.dontCacheBust == nil || !b.dontCacheBust.MatchString(name) {
			entry.Revision = manifest.HashBytes(asset.Source)
		}
		entries = append(entries, entry)
	}

	for _, transform := range b.transforms {
		entries = transform(entries)
	}

	entries, dupes := dedupe(entries)
	for _, url := range dupes {
		warnings = append(warnings, fmt.Sprintf("duplicate precache entry for %q was dropped; the first occurrence wins", url))
	}

	b.logger.Debug().
		Int("entries", len(entries)).
		Int("warnings", len(warnings)).
		Msg("Built precache manifest entries")

	return entries, warnings, nil
}

// excluded reports whether an asset is filtered out by the exclude globs or
// the chunk include/exclude rules.
func (b *Builder) excluded(name string, comp *build.Compilation) bool {
	path := utils.ToURLPath(name)

	for _, pattern := range b.exclude {
		if matched, err := doublestar.Match(pattern, path); err == nil && matched {
			return true
		}
	}

	owners := comp.ChunkFor(name)

	for _, chunk := range b.excludeChunks {
		for _, owner := range owners {
			if owner == chunk {
				return true
			}
		}
	}

	// An include list only constrains assets that belong to some bundle;
	// loose assets stay eligible.
	if len(b.chunks) > 0 && len(owners) > 0 {
		for _, chunk := range b.chunks {
			for _, owner := range owners {
				if owner == chunk {
					return false
				}
			}
		}
		return true
	}

	return false
}

// dedupe enforces URL uniqueness, keeping the first occurrence.
func dedupe(entries []domain.ManifestEntry) ([]domain.ManifestEntry, []string) {
	seen := make(map[string]bool, len(entries))
	out := entries[:0]
	var dupes []string
	for _, e := range entries {
		if seen[e.URL] {
			dupes = append(dupes, e.URL)
			continue
		}
		seen[e.URL] = true
		out = append(out, e)
	}
	return out, dupes
}
