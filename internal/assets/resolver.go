package assets

import "errors"

// AssetResolver combines custom and embedded loaders. When a custom loader
// is configured it is tried first, and the embedded loader serves any asset
// the custom directory does not provide.
type AssetResolver struct {
	custom   AssetLoader // nil if no custom path configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver.
// An empty customBasePath means embedded assets only.
// Returns an error if customBasePath is set but invalid.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadStyle loads a CSS style, trying the custom loader first if available.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return loadWithFallback(r, func(loader AssetLoader) (string, error) {
		return loader.LoadStyle(name)
	})
}

// LoadTemplate loads an HTML template, trying the custom loader first if available.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return loadWithFallback(r, func(loader AssetLoader) (string, error) {
		return loader.LoadTemplate(name)
	})
}

// LoadThemes loads a theme catalog, trying the custom loader first if available.
// A custom catalog replaces the embedded one entirely; themes are not merged.
func (r *AssetResolver) LoadThemes(name string) (*ThemeCatalog, error) {
	return loadWithFallback(r, func(loader AssetLoader) (*ThemeCatalog, error) {
		return loader.LoadThemes(name)
	})
}

// loadWithFallback implements the custom-first, fallback-to-embedded logic.
// Only "not found" errors fall back; validation and I/O errors surface.
func loadWithFallback[T any](r *AssetResolver, loadFn func(AssetLoader) (T, error)) (T, error) {
	if r.custom == nil {
		return loadFn(r.embedded)
	}

	result, err := loadFn(r.custom)
	if err == nil {
		return result, nil
	}

	if !isNotFoundError(err) {
		var zero T
		return zero, err
	}

	return loadFn(r.embedded)
}

// isNotFoundError checks if the error indicates the asset was not found.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrStyleNotFound) ||
		errors.Is(err, ErrTemplateNotFound) ||
		errors.Is(err, ErrThemesNotFound)
}

// HasCustomLoader returns true if a custom asset loader is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
