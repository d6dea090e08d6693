package main

import (
	"errors"
	"os"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alnah/go-md2slides"
	"github.com/alnah/go-md2slides/internal/config"
	"github.com/alnah/go-md2slides/internal/deck"
)

// Exit codes for md2slides CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Every deck converted
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, deck or asset selection
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the exit code for an error. It uses errors.Is, which
// also walks errors combined with multierr, so the first matching class
// below wins for a batch.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, deck.ErrReadDeck) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, md2slides.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrOutputCollision) ||
		errors.Is(err, doublestar.ErrBadPattern) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, deck.ErrInvalidDeck) ||
		errors.Is(err, deck.ErrUnsupportedDeck) ||
		errors.Is(err, md2slides.ErrInvalidFormat) ||
		errors.Is(err, md2slides.ErrInvalidThresholds) ||
		errors.Is(err, md2slides.ErrInvalidEngine) ||
		errors.Is(err, md2slides.ErrInvalidAssetPath) ||
		errors.Is(err, md2slides.ErrUnknownStyle) ||
		errors.Is(err, md2slides.ErrStyleNotFound) ||
		errors.Is(err, md2slides.ErrTemplateNotFound) ||
		errors.Is(err, md2slides.ErrThemeNotFound) ||
		errors.Is(err, md2slides.ErrInvalidTheme) {
		return ExitUsage
	}

	return ExitGeneral
}
