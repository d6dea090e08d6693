package assets

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Names are single path elements: no separators, no dots (which could
// change the extension), no whitespace or control characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	if strings.IndexFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) >= 0 {
		return fmt.Errorf("%w: %q contains whitespace or control characters", ErrInvalidAssetName, name)
	}
	return nil
}
