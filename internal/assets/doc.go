// Package assets provides the stylesheet, page template and theme catalog
// used to assemble HTML slide decks.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in deck)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used by the converter. A custom directory may
// override any single asset; whatever it lacks comes from the embedded set.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css      # deck stylesheet (built-in: deck)
//	├── templates/
//	│   └── {name}.html     # html/template page (built-in: deck)
//	└── themes/
//	    └── {name}.yaml     # theme catalog (built-in: default)
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
// Theme colors are checked so they cannot break out of a CSS declaration.
package assets
