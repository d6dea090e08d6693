// Package config loads the YAML configuration file shared by CLI runs.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2slides/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxNameLength = 64   // format, theme, engine, highlight style
	MaxPathLength = 4096 // PATH_MAX on Linux
	MaxWorkers    = 256
)

// Engine names accepted by render.engine.
const (
	EngineBuiltin  = "builtin"
	EngineGoldmark = "goldmark"
)

// Config holds all configuration for deck generation.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Render RenderConfig `yaml:"render"`
	Split  SplitConfig  `yaml:"split"`
	Assets AssetsConfig `yaml:"assets"`
}

// OutputConfig defines where and how decks are written.
type OutputConfig struct {
	Format string `yaml:"format"` // "markdown" or "html" (empty = markdown)
	Dir    string `yaml:"dir"`    // Empty = next to the source deck
}

// RenderConfig defines how slide bodies become HTML.
type RenderConfig struct {
	Theme     string `yaml:"theme"`     // Theme from the catalog (empty = first theme)
	Engine    string `yaml:"engine"`    // "builtin" or "goldmark" (empty = builtin)
	Highlight string `yaml:"highlight"` // Chroma style name (empty = client-side highlighting)
	CSS       string `yaml:"css"`       // Path to extra CSS injected into HTML decks
	Workers   int    `yaml:"workers"`   // Parallel fragment renders (0 = GOMAXPROCS)
}

// SplitConfig defines overflow detection limits.
type SplitConfig struct {
	Enabled       bool `yaml:"enabled"`
	MaxChars      int  `yaml:"maxChars"`
	MaxBullets    int  `yaml:"maxBullets"`
	MaxParagraphs int  `yaml:"maxParagraphs"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// Validate checks value ranges and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	names := []struct{ field, value string }{
		{"output.format", c.Output.Format},
		{"render.theme", c.Render.Theme},
		{"render.engine", c.Render.Engine},
		{"render.highlight", c.Render.Highlight},
	}
	for _, n := range names {
		if err := validateFieldLength(n.field, n.value, MaxNameLength); err != nil {
			return err
		}
	}

	paths := []struct{ field, value string }{
		{"output.dir", c.Output.Dir},
		{"render.css", c.Render.CSS},
		{"assets.basePath", c.Assets.BasePath},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.field, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	switch strings.ToLower(c.Render.Engine) {
	case "", EngineBuiltin, EngineGoldmark:
	default:
		return fmt.Errorf("%w: render.engine %q (must be %s or %s)", ErrInvalidValue, c.Render.Engine, EngineBuiltin, EngineGoldmark)
	}

	if c.Render.Workers < 0 || c.Render.Workers > MaxWorkers {
		return fmt.Errorf("%w: render.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Render.Workers)
	}

	limits := []struct {
		field string
		value int
	}{
		{"split.maxChars", c.Split.MaxChars},
		{"split.maxBullets", c.Split.MaxBullets},
		{"split.maxParagraphs", c.Split.MaxParagraphs},
	}
	for _, l := range limits {
		if l.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidValue, l.field, l.value)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// Markdown output next to the source, builtin engine, splitting on with
// the reference limits.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Format: "markdown"},
		Render: RenderConfig{Engine: EngineBuiltin},
		Split: SplitConfig{
			Enabled:       true,
			MaxChars:      2000,
			MaxBullets:    8,
			MaxParagraphs: 4,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, {UserConfigDir}/go-md2slides/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2slides", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
