package md2slides

import (
	"errors"

	"github.com/alnah/go-md2slides/internal/assemble"
	"github.com/alnah/go-md2slides/internal/assets"
	"github.com/alnah/go-md2slides/internal/fileutil"
	"github.com/alnah/go-md2slides/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyDeck         = errors.New("deck has no slides")
	ErrInvalidFormat     = errors.New("invalid output format")
	ErrInvalidThresholds = errors.New("invalid overflow thresholds")
	ErrInvalidEngine     = errors.New("invalid render engine")
	ErrInvalidAssetPath  = errors.New("invalid asset path")

	// Rendering errors.
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrTemplateRender = assemble.ErrTemplateRender
	ErrUnknownStyle   = pipeline.ErrUnknownStyle

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrThemeNotFound    = assets.ErrThemeNotFound
	ErrInvalidTheme     = assets.ErrInvalidTheme

	// Storage errors.
	ErrWriteOutput = fileutil.ErrWriteOutput
)
