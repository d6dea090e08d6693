package assets

import (
	"embed"
	"fmt"
)

//go:embed styles templates themes
var embedded embed.FS

// EmbeddedLoader loads assets compiled into the binary.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle returns the embedded styles/{name}.css.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	content, err := e.read(styleKind, name)
	return string(content), err
}

// LoadTemplate returns the embedded templates/{name}.html.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	content, err := e.read(templateKind, name)
	return string(content), err
}

// LoadThemes parses the embedded themes/{name}.yaml.
func (e *EmbeddedLoader) LoadThemes(name string) (*ThemeCatalog, error) {
	content, err := e.read(themesKind, name)
	if err != nil {
		return nil, err
	}
	return ParseThemeCatalog(name, content)
}

func (e *EmbeddedLoader) read(k kind, name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}
	content, err := embedded.ReadFile(k.path(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", k.notFound, name)
	}
	return content, nil
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
