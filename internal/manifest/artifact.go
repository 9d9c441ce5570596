package manifest

import (
	"path"
	"path/filepath"

	"github.com/quantmind-br/swgen-go/internal/domain"
	"github.com/quantmind-br/swgen-go/internal/utils"
)

// Artifact is the computed manifest artifact. Exactly one is produced per
// emission pass; it is immutable once built.
type Artifact struct {
	// Entries is the entry list the text was serialized from.
	Entries []domain.ManifestEntry

	// Text is the canonical serialized manifest script.
	Text string

	// Hash is the hex digest of Text.
	Hash string

	// Filename is the template with the hash substituted.
	Filename string

	// Path is the artifact's location relative to the build output root,
	// rendered with forward slashes on every platform.
	Path string

	// URL is Path prefixed with the build's public path; this is what the
	// generated worker imports.
	URL string
}

// Options configures artifact construction.
type Options struct {
	FilenameTemplate string
	ImportsDirectory string
	PublicPath       string
	OutputPath       string
}

// New serializes the entries, hashes the text, substitutes the hash into
// the filename template, and resolves the artifact's output path and URL.
func New(entries []domain.ManifestEntry, opts Options) (*Artifact, error) {
	text, err := Serialize(entries)
	if err != nil {
		return nil, err
	}

	hash := Hash(text)

	filename, err := Name(opts.FilenameTemplate, hash)
	if err != nil {
		return nil, err
	}

	dir := opts.ImportsDirectory
	if filepath.IsAbs(dir) {
		// An absolute imports directory is taken relative to the build's
		// output root when it lies inside it.
		if rel, relErr := filepath.Rel(opts.OutputPath, dir); relErr == nil {
			dir = rel
		}
	}

	relPath := path.Join(filepath.ToSlash(dir), filename)

	return &Artifact{
		Entries:  entries,
		Text:     text,
		Hash:     hash,
		Filename: filename,
		Path:     relPath,
		URL:      utils.JoinURL(opts.PublicPath, relPath),
	}, nil
}
