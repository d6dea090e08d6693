package assets

// AssetLoader defines the contract for loading the pieces of a rendered deck:
// stylesheets, page templates and theme catalogs.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)

	// LoadThemes loads and validates a theme catalog by name (without .yaml extension).
	// Returns ErrThemesNotFound if the catalog doesn't exist.
	LoadThemes(name string) (*ThemeCatalog, error)
}
