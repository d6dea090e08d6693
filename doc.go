// Package md2slides renders slide decks written in a lightweight Markdown
// dialect to a portable Markdown document or a standalone HTML presentation.
//
// # Quick Start
//
//	conv, err := md2slides.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	doc, err := conv.Convert(ctx, md2slides.Input{
//	    Title:  "Quarterly Review",
//	    Slides: []md2slides.Slide{{Title: "Intro", Body: "- growth\n- hiring"}},
//	    Format: md2slides.FormatHTML,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := md2slides.Save(doc, "review")
//
// # Conversion Pipeline
//
//  1. Overflow splitting: a slide whose body has too many characters,
//     bullets or paragraphs is cut at paragraph, bullet or sentence
//     boundaries into "Title", "Title (Part 2)", ...
//  2. Rendering (HTML only): each body goes through the builtin pass chain
//     (code is protected first and restored last) or through goldmark.
//     Slides are rendered in parallel; the deck order is fixed.
//  3. Assembly: Markdown output joins titled sections with rules; HTML
//     output fills the embedded deck template (navigation, themes, zoom,
//     progress bar).
//
// # Configuration
//
//	conv, err := md2slides.NewConverter(
//	    md2slides.WithThresholds(md2slides.Thresholds{MaxChars: 1200, MaxBullets: 6, MaxParagraphs: 3}),
//	    md2slides.WithTheme("dark"),
//	    md2slides.WithHighlighting("monokai"),
//	    md2slides.WithWorkers(4),
//	    md2slides.WithLogger(logger),
//	)
//
// # Custom Assets
//
// WithAssetPath points at a directory that overrides any of the embedded
// assets; missing files fall back to the embedded ones:
//
//	assets/
//	├── styles/deck.css
//	├── templates/deck.html
//	└── themes/default.yaml
//
// # Limitations
//
// The builtin engine covers the slide dialect, not full CommonMark. Header
// ids are not disambiguated when two headers share a slug. HTML decks load
// fonts, icons and (without WithHighlighting) highlight.js from CDNs.
package md2slides
