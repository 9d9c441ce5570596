package manifest

import (
	"crypto/md5" //nolint:gosec // content addressing, not security
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/quantmind-br/swgen-go/internal/domain"
)

// Serialize renders the entry list as the manifest script text. The worker
// concatenates onto any manifest loaded before it, so repeated imports
// compose instead of clobbering each other.
//
// Encoding is canonical: fixed field order, two-space indentation, trailing
// newline. Identical entry lists serialize to identical bytes.
func Serialize(entries []domain.ManifestEntry) (string, error) {
	if entries == nil {
		entries = []domain.ManifestEntry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize manifest entries: %w", err)
	}

	return fmt.Sprintf("self.__precacheManifest = (self.__precacheManifest || []).concat(%s);\n", data), nil
}

// Hash computes the hex digest of the serialized manifest text. MD5 is used
// for content addressing only; determinism and collision resistance across
// build outputs are what matters here, not cryptographic strength.
func Hash(text string) string {
	sum := md5.Sum([]byte(text)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

// HashBytes computes the hex digest of raw asset content. Used for
// per-entry revisions.
func HashBytes(data []byte) string {
	sum := md5.Sum(data) //nolint:gosec
	return hex.EncodeToString(sum[:])
}
