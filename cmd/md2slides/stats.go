package main

import (
	"io"

	"github.com/alnah/go-md2slides"
	"github.com/alnah/go-md2slides/internal/config"
	"github.com/alnah/go-md2slides/internal/layout"
	"github.com/alnah/go-md2slides/internal/yamlutil"
)

// deckStats is the --stats report of one converted deck.
type deckStats struct {
	Deck   string       `yaml:"deck"`
	Output string       `yaml:"output"`
	Slides []slideStats `yaml:"slides"`
}

type slideStats struct {
	Title      string `yaml:"title"`
	Chars      int    `yaml:"chars"`
	Bullets    int    `yaml:"bullets"`
	Paragraphs int    `yaml:"paragraphs"`
	Overflow   bool   `yaml:"overflow"`
	Fragments  int    `yaml:"fragments"`
}

// collectStats measures every source slide against the configured limits.
func collectStats(conv DeckConverter, input, output string, slides []md2slides.Slide, cfg *config.Config) deckStats {
	limits := layout.Thresholds{
		MaxChars:      cfg.Split.MaxChars,
		MaxBullets:    cfg.Split.MaxBullets,
		MaxParagraphs: cfg.Split.MaxParagraphs,
	}

	report := deckStats{Deck: input, Output: output, Slides: make([]slideStats, len(slides))}
	for i, s := range slides {
		m := layout.Measure(s.Body)
		report.Slides[i] = slideStats{
			Title:      s.Title,
			Chars:      m.Chars,
			Bullets:    m.Bullets,
			Paragraphs: m.Paragraphs,
			Overflow:   m.Exceeds(limits),
			Fragments:  len(conv.Split(s)),
		}
	}
	return report
}

// writeStats prints the report as a YAML document.
func writeStats(w io.Writer, conv DeckConverter, input, output string, slides []md2slides.Slide, cfg *config.Config) error {
	data, err := yamlutil.Marshal(collectStats(conv, input, output, slides, cfg))
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
