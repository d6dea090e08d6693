package md2slides

import (
	"fmt"
	"strings"

	"github.com/alnah/go-md2slides/internal/layout"
)

// Slide is a titled slide whose body is written in the slide markup dialect.
type Slide struct {
	Title string
	Body  string
}

// Default overflow limits.
const (
	DefaultMaxChars      = layout.DefaultMaxChars
	DefaultMaxBullets    = layout.DefaultMaxBullets
	DefaultMaxParagraphs = layout.DefaultMaxParagraphs
)

// Thresholds bounds what a single slide body may contain before it is
// split across several slides.
type Thresholds struct {
	MaxChars      int // Unicode code points
	MaxBullets    int // list-marker lines
	MaxParagraphs int // blank-line-delimited blocks
}

// DefaultThresholds returns 2000 chars, 8 bullets and 4 paragraphs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxChars:      DefaultMaxChars,
		MaxBullets:    DefaultMaxBullets,
		MaxParagraphs: DefaultMaxParagraphs,
	}
}

// Validate checks that every limit is positive.
func (t Thresholds) Validate() error {
	if t.MaxChars <= 0 {
		return fmt.Errorf("%w: max chars must be positive, got %d", ErrInvalidThresholds, t.MaxChars)
	}
	if t.MaxBullets <= 0 {
		return fmt.Errorf("%w: max bullets must be positive, got %d", ErrInvalidThresholds, t.MaxBullets)
	}
	if t.MaxParagraphs <= 0 {
		return fmt.Errorf("%w: max paragraphs must be positive, got %d", ErrInvalidThresholds, t.MaxParagraphs)
	}
	return nil
}

func (t Thresholds) internal() layout.Thresholds {
	return layout.Thresholds{
		MaxChars:      t.MaxChars,
		MaxBullets:    t.MaxBullets,
		MaxParagraphs: t.MaxParagraphs,
	}
}

// Format is a target document surface.
type Format string

// Supported formats.
const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat resolves a case-insensitive format name. Besides the canonical
// names it accepts "md" and "markup" for Markdown and "hypertext" for HTML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md", "markup":
		return FormatMarkdown, nil
	case "html", "hypertext":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %q (must be markdown or html)", ErrInvalidFormat, s)
	}
}

// Extension returns the canonical file extension, without the dot.
func (f Format) Extension() string {
	if f == FormatHTML {
		return "html"
	}
	return "md"
}

func (f Format) String() string {
	return string(f)
}

// Engine selects how slide bodies are rendered to HTML.
type Engine string

// Supported engines.
const (
	// EngineBuiltin renders with the slide dialect pass chain and its
	// house classes (elegant-list, task-item, code-block).
	EngineBuiltin Engine = "builtin"

	// EngineGoldmark renders CommonMark with GitHub extensions.
	EngineGoldmark Engine = "goldmark"
)

// ParseEngine resolves a case-insensitive engine name. Empty selects
// EngineBuiltin.
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(EngineBuiltin):
		return EngineBuiltin, nil
	case string(EngineGoldmark):
		return EngineGoldmark, nil
	default:
		return "", fmt.Errorf("%w: %q (must be builtin or goldmark)", ErrInvalidEngine, s)
	}
}

// Input contains conversion parameters for one deck.
type Input struct {
	Title     string  // Deck title (document heading, HTML <title>)
	Slides    []Slide // Source slides (required)
	Format    Format  // Target format (empty = markdown)
	Theme     string  // HTML opening theme (empty = converter default)
	SourceDir string  // Directory relative media paths resolve against (optional)
	OutputDir string  // When set with SourceDir, media paths become relative to it
}

// Document is a rendered deck.
type Document struct {
	Content string
	Format  Format
	Slides  int // slides after splitting
}
