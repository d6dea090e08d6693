package assets

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2slides/internal/yamlutil"
)

// DefaultStyleName is the name of the built-in deck stylesheet.
const DefaultStyleName = "deck"

// DefaultTemplateName is the name of the built-in deck page template.
const DefaultTemplateName = "deck"

// DefaultThemeCatalog is the name of the built-in theme catalog.
const DefaultThemeCatalog = "default"

// DefaultThemeName is the theme used when none is requested.
const DefaultThemeName = "default"

// unsafeCSSValue lists what may not appear in a theme color. Values are
// written unquoted into a style sheet, so anything that could close the
// declaration or the element is refused.
const unsafeCSSValue = ";{}<>\"'\\\n\r"

// Theme is a named color scheme. Fields are CSS values assigned to the
// deck's custom properties.
type Theme struct {
	Name       string `yaml:"name" json:"name"`
	Background string `yaml:"background" json:"background"`
	Text       string `yaml:"text" json:"text"`
	Accent     string `yaml:"accent" json:"accent"`
	Secondary  string `yaml:"secondary" json:"secondary"`
}

// Validate checks that the theme has a usable name and only safe CSS values.
func (t Theme) Validate() error {
	if err := ValidateAssetName(t.Name); err != nil {
		return fmt.Errorf("%w: name: %v", ErrInvalidTheme, err)
	}
	fields := []struct{ key, value string }{
		{"background", t.Background},
		{"text", t.Text},
		{"accent", t.Accent},
		{"secondary", t.Secondary},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %q: %s is empty", ErrInvalidTheme, t.Name, f.key)
		}
		if strings.ContainsAny(f.value, unsafeCSSValue) || strings.Contains(f.value, "/*") {
			return fmt.Errorf("%w: %q: %s contains forbidden characters", ErrInvalidTheme, t.Name, f.key)
		}
	}
	return nil
}

// ThemeCatalog is an ordered list of themes. Order is significant: the
// first theme is the catalog default and viewers cycle in this order.
type ThemeCatalog struct {
	Name   string  `yaml:"-"`
	Themes []Theme `yaml:"themes"`
}

// ParseThemeCatalog decodes and validates a YAML theme catalog.
// Unknown keys, empty catalogs and duplicate names are rejected.
func ParseThemeCatalog(name string, data []byte) (*ThemeCatalog, error) {
	var catalog ThemeCatalog
	if err := yamlutil.UnmarshalStrict(data, &catalog); err != nil {
		return nil, fmt.Errorf("%w: catalog %q: %v", ErrInvalidTheme, name, err)
	}
	catalog.Name = name

	if len(catalog.Themes) == 0 {
		return nil, fmt.Errorf("%w: catalog %q has no themes", ErrInvalidTheme, name)
	}

	seen := make(map[string]bool, len(catalog.Themes))
	for _, theme := range catalog.Themes {
		if err := theme.Validate(); err != nil {
			return nil, err
		}
		key := strings.ToLower(theme.Name)
		if seen[key] {
			return nil, fmt.Errorf("%w: catalog %q: duplicate theme %q", ErrInvalidTheme, name, theme.Name)
		}
		seen[key] = true
	}

	return &catalog, nil
}

// Index returns the position of the named theme (case-insensitive).
// An empty name selects the first theme.
func (c *ThemeCatalog) Index(name string) (int, error) {
	if name == "" {
		return 0, nil
	}
	for i, theme := range c.Themes {
		if strings.EqualFold(theme.Name, name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q (available: %s)", ErrThemeNotFound, name, strings.Join(c.Names(), ", "))
}

// Lookup returns the named theme (case-insensitive).
func (c *ThemeCatalog) Lookup(name string) (Theme, error) {
	i, err := c.Index(name)
	if err != nil {
		return Theme{}, err
	}
	return c.Themes[i], nil
}

// Names returns theme names in catalog order.
func (c *ThemeCatalog) Names() []string {
	names := make([]string, len(c.Themes))
	for i, theme := range c.Themes {
		names[i] = theme.Name
	}
	return names
}
