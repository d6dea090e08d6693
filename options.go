package md2slides

import "go.uber.org/zap"

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	thresholds Thresholds
	split      bool
	engine     Engine
	highlight  bool
	style      string // chroma style, empty = default
	theme      string
	css        string
	assetPath  string
	workers    int
}

// WithThresholds sets the overflow limits. Invalid limits make
// NewConverter fail with ErrInvalidThresholds.
func WithThresholds(t Thresholds) Option {
	return func(c *Converter) {
		c.cfg.thresholds = t
	}
}

// WithSplitting turns overflow splitting on or off. It is on by default.
func WithSplitting(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.split = enabled
	}
}

// WithEngine selects the HTML renderer for slide bodies.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithHighlighting turns on server-side code highlighting with the named
// chroma style (empty for the default style). Without it, HTML decks load
// highlight.js from a CDN instead. EngineGoldmark always highlights.
func WithHighlighting(style string) Option {
	return func(c *Converter) {
		c.cfg.highlight = true
		c.cfg.style = style
	}
}

// WithTheme sets the theme HTML decks open with.
func WithTheme(name string) Option {
	return func(c *Converter) {
		c.cfg.theme = name
	}
}

// WithCSS adds a stylesheet injected after the deck's own styles.
func WithCSS(css string) Option {
	return func(c *Converter) {
		c.cfg.css = css
	}
}

// WithAssetPath loads styles, templates and themes from dir, falling back
// to the embedded assets for anything dir does not provide.
func WithAssetPath(dir string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = dir
	}
}

// WithWorkers bounds how many slides are rendered in parallel.
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithWorkers(n int) Option {
	if n <= 0 {
		panic("md2slides: WithWorkers count must be positive")
	}
	return func(c *Converter) {
		c.cfg.workers = n
	}
}

// WithLogger sets the logger for debug events. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}
