// Package deck loads slide decks from disk.
//
// Two source formats are understood: structured decks (YAML, or JSON since
// JSON is a YAML subset) and Markdown decks, where headings mark slide
// boundaries.
package deck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/alnah/go-md2slides/internal/yamlutil"
)

// Sentinel errors for deck loading.
var (
	ErrInvalidDeck     = errors.New("invalid deck")
	ErrUnsupportedDeck = errors.New("unsupported deck format")
	ErrReadDeck        = errors.New("failed to read deck")
)

// Slide is one slide as written by the author, before any splitting.
type Slide struct {
	Title   string `yaml:"title" json:"title"`
	Content string `yaml:"content" json:"content"`
}

// Deck is an ordered list of slides with an optional title and theme.
type Deck struct {
	Title  string  `yaml:"title" json:"title"`
	Theme  string  `yaml:"theme,omitempty" json:"theme,omitempty"`
	Slides []Slide `yaml:"slides" json:"slides"`
}

// Validate checks that the deck has at least one slide.
func (d *Deck) Validate() error {
	if len(d.Slides) == 0 {
		return fmt.Errorf("%w: no slides", ErrInvalidDeck)
	}
	return nil
}

// Kind identifies a deck source format.
type Kind int

const (
	KindStructured Kind = iota // YAML or JSON
	KindMarkdown
)

// KindForPath picks the source format from a file extension.
func KindForPath(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return KindMarkdown, nil
	case ".yaml", ".yml", ".json":
		return KindStructured, nil
	default:
		return 0, fmt.Errorf("%w: %q (want .md, .markdown, .yaml, .yml or .json)", ErrUnsupportedDeck, filepath.Ext(path))
	}
}

// Parse decodes data in the given format and validates the result. Text is
// normalized to NFC first, so a decomposed "é" counts as one character when
// slides are measured.
func Parse(data []byte, kind Kind) (*Deck, error) {
	var (
		d   *Deck
		err error
	)
	data = norm.NFC.Bytes(data)
	switch kind {
	case KindMarkdown:
		d, err = ParseMarkdown(data)
	case KindStructured:
		d, err = ParseStructured(data)
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnsupportedDeck, kind)
	}
	if err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// ParseStructured decodes a YAML or JSON deck. Unknown keys are rejected so
// that typos such as "body" for "content" surface instead of yielding
// empty slides.
func ParseStructured(data []byte) (*Deck, error) {
	var d Deck
	if err := yamlutil.UnmarshalStrict(data, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDeck, err)
	}
	return &d, nil
}

// Load reads and parses the deck at path. A deck without a title is named
// after the file.
func Load(path string) (*Deck, error) {
	kind, err := KindForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided input
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadDeck, err)
	}

	d, err := Parse(data, kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if d.Title == "" {
		d.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return d, nil
}
