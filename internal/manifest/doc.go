// Package manifest turns a precache entry list into its versioned build
// artifact: the canonical serialized text, a content hash of that text, and
// a cache-busting filename derived from a user-configurable template.
//
// # Determinism
//
// Serialization is deterministic: the same entry list (same URLs, same
// revisions, same order) always yields byte-identical text and therefore an
// identical hash. This is the basis for correct cache-busting and for any
// downstream build caching.
//
// # Usage
//
// Build the artifact in one step:
//
//	artifact, err := manifest.New(entries, manifest.Options{
//	    FilenameTemplate: "precache-manifest.[manifestHash].js",
//	    ImportsDirectory: "wb-assets",
//	    PublicPath:       "/static/",
//	    OutputPath:       "/build/dist",
//	})
//
// The resulting Artifact carries the serialized text, its hash, the final
// filename, the path relative to the build output root (forward slashes on
// every platform), and the public URL the generated worker imports.
package manifest
