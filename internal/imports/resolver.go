// Package imports resolves the runtime-support import for the generated
// worker script.
package imports

import (
	_ "embed"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/swgen-go/internal/build"
	"github.com/quantmind-br/swgen-go/internal/config"
	"github.com/quantmind-br/swgen-go/internal/domain"
	"github.com/quantmind-br/swgen-go/internal/utils"
)

// Runtime import modes. Any other value names a build bundle.
const (
	ModeDisabled = "disabled"
	ModeCDN      = "cdn"
	ModeLocal    = "local"
)

// CDNURL is the pinned runtime-support release served from the CDN.
const CDNURL = "https://storage.googleapis.com/workbox-cdn/releases/4.3.1/workbox-sw.js"

// localRuntimeName is the filename the bundled runtime copy is emitted as.
const localRuntimeName = "workbox-sw.js"

//go:embed runtime/workbox-sw.js
var localRuntime []byte

// BundleKind tags the outcome of a named-bundle lookup.
type BundleKind int

const (
	// BundleNotFound means no bundle with the configured name exists, or
	// it produced no script files.
	BundleNotFound BundleKind = iota
	// BundleSingle means the bundle produced exactly one script file,
	// which becomes the runtime import directly.
	BundleSingle
	// BundleMultiple means the bundle produced several script files; with
	// no signal for which one holds the runtime, all of them are
	// prepended to the import list instead.
	BundleMultiple
)

// BundleResult is the tagged outcome of inspecting a named bundle.
type BundleResult struct {
	Kind BundleKind
	URLs []string
}

// Resolution is the resolver's output. Exactly one of SWImport and Prepend
// is populated for any mode other than disabled.
type Resolution struct {
	// SWImport is the single runtime-support URL, passed to the generator
	// in its own slot so it is emitted before every other import.
	SWImport string

	// Prepend lists bundle URLs that must load before the user-declared
	// imports, used when a named bundle is ambiguous.
	Prepend []string
}

// Resolver determines where the generated worker gets its runtime support.
type Resolver struct {
	logger *utils.Logger
}

// NewResolver creates a new runtime-import resolver.
func NewResolver(logger *utils.Logger) *Resolver {
	if logger == nil {
		logger = utils.NewDefaultLogger()
	}
	return &Resolver{logger: logger.WithComponent("imports")}
}

// Resolve picks the runtime import for the configured mode. In local mode
// it also registers the bundled runtime copy as a build output. Unknown
// bundle names and bundles without script files are fatal configuration
// errors.
func (r *Resolver) Resolve(cfg *config.Config, comp *build.Compilation) (*Resolution, error) {
	if comp == nil {
		return nil, domain.ErrNilCompilation
	}

	mode := cfg.ImportWorkboxFrom
	switch mode {
	case ModeDisabled:
		r.logger.Debug().Msg("Runtime import disabled")
		return &Resolution{}, nil

	case ModeCDN:
		r.logger.Debug().Str("url", CDNURL).Msg("Using CDN runtime import")
		return &Resolution{SWImport: CDNURL}, nil

	case ModeLocal:
		rel := path.Join(filepath.ToSlash(cfg.ImportsDirectory), localRuntimeName)
		comp.EmitAsset(rel, localRuntime)
		url := utils.JoinURL(comp.PublicPath, rel)
		r.logger.Debug().Str("url", url).Msg("Emitted local runtime copy")
		return &Resolution{SWImport: url}, nil

	case "":
		return nil, fmt.Errorf("%w: empty", domain.ErrInvalidImportMode)

	default:
		return r.resolveBundle(mode, comp)
	}
}

// resolveBundle inspects the named bundle's script files and folds a lone
// file into the runtime import slot. With several files there is no way to
// tell which holds the runtime, so all of them are prepended instead.
func (r *Resolver) resolveBundle(name string, comp *build.Compilation) (*Resolution, error) {
	result := LookupBundle(name, comp)

	switch result.Kind {
	case BundleSingle:
		r.logger.Debug().
			Str("bundle", name).
			Str("url", result.URLs[0]).
			Msg("Bundle resolved to a single runtime import")
		return &Resolution{SWImport: result.URLs[0]}, nil

	case BundleMultiple:
		r.logger.Debug().
			Str("bundle", name).
			Int("scripts", len(result.URLs)).
			Msg("Bundle is ambiguous; prepending all of its scripts")
		return &Resolution{Prepend: result.URLs}, nil

	default:
		if _, ok := comp.Chunk(name); !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrBundleNotFound, name)
		}
		return nil, fmt.Errorf("%w: %q", domain.ErrBundleEmpty, name)
	}
}

// LookupBundle returns the tagged tri-state outcome of inspecting a named
// bundle: its script-file URLs, or BundleNotFound when the bundle is
// missing or has none.
func LookupBundle(name string, comp *build.Compilation) BundleResult {
	chunk, ok := comp.Chunk(name)
	if !ok {
		return BundleResult{Kind: BundleNotFound}
	}

	var urls []string
	for _, file := range chunk.Files {
		if isScript(file) {
			urls = append(urls, utils.JoinURL(comp.PublicPath, file))
		}
	}

	switch len(urls) {
	case 0:
		return BundleResult{Kind: BundleNotFound}
	case 1:
		return BundleResult{Kind: BundleSingle, URLs: urls}
	default:
		return BundleResult{Kind: BundleMultiple, URLs: urls}
	}
}

// isScript reports whether a bundle file is a script, not a source map or
// other auxiliary output.
func isScript(file string) bool {
	return strings.HasSuffix(file, ".js") && !strings.HasSuffix(file, ".map.js")
}
