// Package hints provides actionable hints for common failure scenarios.
// Each helper returns a short sentence, or "" when there is nothing useful
// to suggest.
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2slides/internal/fileutil"
)

// UserConfigDir returns the per-user config directory. Tests replace it.
var UserConfigDir = os.UserConfigDir

// ForConfigNotFound suggests --config and the per-user location for a
// named config file.
func ForConfigNotFound(name string) string {
	hint := "use --config /path/to/file.yaml"
	if name == "" || strings.ContainsAny(name, `/\`) {
		return hint
	}
	if dir, err := UserConfigDir(); err == nil {
		hint += " or create " + filepath.Join(dir, "go-md2slides", name+".yaml")
	}
	return hint
}

// ForThemeNotFound lists the themes that can be selected.
func ForThemeNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return "available themes: " + strings.Join(available, ", ")
}

// ForUnknownStyle points at well-known chroma styles.
func ForUnknownStyle() string {
	return "try --highlight monokai, github or dracula"
}

// ForUnsupportedDeck lists the deck file extensions.
func ForUnsupportedDeck() string {
	return "decks must end in .md, .markdown, .yaml, .yml or .json"
}

// ForOutputCollision explains how to give each deck its own file.
func ForOutputCollision() string {
	return "give decks distinct titles or convert them one at a time with -o"
}

// ForOutputDirectory checks the parent of the failed output path.
func ForOutputDirectory(path string) string {
	parent := filepath.Dir(path)
	if parent != "." && fileutil.FileExists(parent) {
		return parent + " is a file, not a directory"
	}
	return "check the output directory exists and is writable"
}
