package manifest

import (
	"fmt"
	"strings"

	"github.com/quantmind-br/swgen-go/internal/domain"
)

// HashPlaceholder is the token in the filename template that the computed
// manifest hash replaces.
const HashPlaceholder = "[manifestHash]"

// CheckTemplate verifies the filename template carries a hash placeholder.
// A template without one would emit the same filename for every build and
// defeat cache busting, so this is a fatal configuration error.
func CheckTemplate(template string) error {
	if !strings.Contains(template, HashPlaceholder) {
		return fmt.Errorf("%w: got %q", domain.ErrNoHashPlaceholder, template)
	}
	return nil
}

// Name substitutes the computed hash into the filename template.
func Name(template, hash string) (string, error) {
	if err := CheckTemplate(template); err != nil {
		return "", err
	}
	return strings.ReplaceAll(template, HashPlaceholder, hash), nil
}
