package main

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/alnah/go-md2slides/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2SLIDES_CONFIG: config file name or path
	Format     string // MD2SLIDES_FORMAT: markdown or html
	Theme      string // MD2SLIDES_THEME: HTML opening theme
	OutputDir  string // MD2SLIDES_OUTPUT_DIR: default output directory
	Workers    int    // MD2SLIDES_WORKERS: parallel slide renders
}

// knownEnvVars lists valid MD2SLIDES_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2SLIDES_CONFIG":     true,
	"MD2SLIDES_FORMAT":     true,
	"MD2SLIDES_THEME":      true,
	"MD2SLIDES_OUTPUT_DIR": true,
	"MD2SLIDES_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Invalid worker counts are ignored rather than reported.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MD2SLIDES_CONFIG"),
		Format:     os.Getenv("MD2SLIDES_FORMAT"),
		Theme:      os.Getenv("MD2SLIDES_THEME"),
		OutputDir:  os.Getenv("MD2SLIDES_OUTPUT_DIR"),
	}

	if workers := os.Getenv("MD2SLIDES_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized MD2SLIDES_*
// variable, such as MD2SLIDES_THEMES instead of MD2SLIDES_THEME.
func warnUnknownEnvVars(logger *zap.Logger) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, "MD2SLIDES_") {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", zap.String("name", name))
		}
	}
}

// applyEnvConfig overrides config file values with the variables that are
// set. Flags are merged afterwards, so the final order is
// flags > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Format != "" {
		cfg.Output.Format = env.Format
	}
	if env.Theme != "" {
		cfg.Render.Theme = env.Theme
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Workers > 0 {
		cfg.Render.Workers = env.Workers
	}
}
