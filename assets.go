package md2slides

import (
	"fmt"

	"github.com/alnah/go-md2slides/internal/assets"
)

// Theme is a color scheme HTML decks can open with or cycle to.
type Theme struct {
	Name       string
	Background string
	Text       string
	Accent     string
	Secondary  string
}

// Themes returns the themes available to HTML decks in cycling order.
// With a non-empty assetPath, a themes/default.yaml catalog there replaces
// the embedded one.
func Themes(assetPath string) ([]Theme, error) {
	resolver, err := assets.NewAssetResolver(assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}

	catalog, err := resolver.LoadThemes(assets.DefaultThemeCatalog)
	if err != nil {
		return nil, err
	}
	out := make([]Theme, len(catalog.Themes))
	for i, t := range catalog.Themes {
		out[i] = Theme(t)
	}
	return out, nil
}
