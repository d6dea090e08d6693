package md2slides

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-md2slides/internal/assemble"
	"github.com/alnah/go-md2slides/internal/assets"
	"github.com/alnah/go-md2slides/internal/layout"
	"github.com/alnah/go-md2slides/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.FragmentRenderer = (*pipeline.BuiltinRenderer)(nil)
	_ pipeline.FragmentRenderer = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CodeHighlighter  = (*pipeline.ChromaHighlighter)(nil)
	_ assemble.StyleSheetWriter = (*pipeline.ChromaHighlighter)(nil)
	_ assets.AssetLoader        = (*assets.AssetResolver)(nil)
)

// Converter splits, renders and assembles slide decks.
// Create with NewConverter. A Converter is safe for concurrent use.
type Converter struct {
	cfg      converterConfig
	logger   *zap.Logger
	renderer pipeline.FragmentRenderer
	html     *assemble.HTMLAssembler
}

// NewConverter creates a Converter. Defaults: builtin engine, splitting on
// with DefaultThresholds, no server-side highlighting, embedded assets, one
// worker per GOMAXPROCS.
// Returns an error if an option is invalid or asset loading fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			thresholds: DefaultThresholds(),
			split:      true,
			engine:     EngineBuiltin,
		},
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.thresholds.Validate(); err != nil {
		return nil, err
	}
	engine, err := ParseEngine(string(c.cfg.engine))
	if err != nil {
		return nil, err
	}
	c.cfg.engine = engine
	if c.cfg.workers == 0 {
		c.cfg.workers = runtime.GOMAXPROCS(0)
	}

	var loader assets.AssetLoader = assets.NewEmbeddedLoader()
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		loader = resolver
	}

	var codeStyles assemble.StyleSheetWriter
	switch engine {
	case EngineGoldmark:
		hl, err := pipeline.NewChromaHighlighter(c.cfg.style)
		if err != nil {
			return nil, err
		}
		c.renderer = pipeline.NewGoldmarkConverter(c.cfg.style)
		codeStyles = hl
	default:
		var hl pipeline.CodeHighlighter
		if c.cfg.highlight {
			chroma, err := pipeline.NewChromaHighlighter(c.cfg.style)
			if err != nil {
				return nil, err
			}
			hl, codeStyles = chroma, chroma
		}
		c.renderer = pipeline.NewBuiltinRenderer(hl)
	}

	c.html, err = assemble.NewHTMLAssembler(assemble.HTMLConfig{
		Loader:     loader,
		Theme:      c.cfg.theme,
		CodeStyles: codeStyles,
		UserCSS:    c.cfg.css,
	})
	if err != nil {
		return nil, fmt.Errorf("loading deck assets: %w", err)
	}

	return c, nil
}

// Convert splits every overflowing slide, renders the result in the
// requested format and returns the assembled document.
// The context is checked between stages and before each slide render.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	format, err := c.validateInput(input)
	if err != nil {
		return nil, err
	}
	start := time.Now()

	fragments := make([]Slide, 0, len(input.Slides))
	for _, s := range input.Slides {
		fragments = append(fragments, c.Split(s)...)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var content string
	switch format {
	case FormatHTML:
		content, err = c.assembleHTML(ctx, input, fragments)
		if err != nil {
			return nil, err
		}
	default:
		content = assemble.Markdown(input.Title, toAssembleSlides(fragments))
	}

	c.logger.Debug("deck converted",
		zap.String("title", input.Title),
		zap.Stringer("format", format),
		zap.Int("slides", len(input.Slides)),
		zap.Int("fragments", len(fragments)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Document{Content: content, Format: format, Slides: len(fragments)}, nil
}

// Split returns slide unchanged when it fits or splitting is off, else the
// fragments produced by SplitSlide with the converter's thresholds.
func (c *Converter) Split(slide Slide) []Slide {
	if !c.cfg.split {
		return []Slide{slide}
	}
	fragments := SplitSlide(slide, c.cfg.thresholds)
	if len(fragments) > 1 {
		c.logger.Debug("slide split",
			zap.String("slide", slide.Title),
			zap.Int("fragments", len(fragments)),
		)
	}
	return fragments
}

// assembleHTML renders fragment bodies concurrently into an index-addressed
// slice so the deck order never depends on scheduling.
func (c *Converter) assembleHTML(ctx context.Context, input Input, fragments []Slide) (string, error) {
	assembler, err := c.html.WithTheme(input.Theme)
	if err != nil {
		return "", err
	}

	rewriter := pipeline.PathRewriter{SourceDir: input.SourceDir, OutputDir: input.OutputDir}
	rendered := make([]assemble.Slide, len(fragments))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.workers)
	for i, f := range fragments {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("internal error rendering slide %d: %v", i+1, r)
				}
			}()
			if err := gctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			body, err := c.renderer.Render(gctx, f.Body)
			if err != nil {
				return fmt.Errorf("rendering slide %d %q: %w", i+1, f.Title, err)
			}
			body, err = rewriter.Rewrite(body)
			if err != nil {
				return fmt.Errorf("rewriting relative paths: %w", err)
			}
			c.logger.Debug("slide rendered",
				zap.Int("index", i+1),
				zap.Int("bytes", len(body)),
				zap.Duration("elapsed", time.Since(start)),
			)

			rendered[i] = assemble.Slide{Title: f.Title, Body: body}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return assembler.Assemble(ctx, input.Title, rendered)
}

// validateInput checks the fields a library caller may set by hand and
// resolves the target format.
func (c *Converter) validateInput(input Input) (Format, error) {
	if len(input.Slides) == 0 {
		return "", ErrEmptyDeck
	}
	if input.Format == "" {
		return FormatMarkdown, nil
	}
	return ParseFormat(string(input.Format))
}

func toAssembleSlides(slides []Slide) []assemble.Slide {
	out := make([]assemble.Slide, len(slides))
	for i, s := range slides {
		out[i] = assemble.Slide{Title: s.Title, Body: s.Body}
	}
	return out
}

// SplitSlide distributes slide over as many slides as needed so that none
// exceeds t. Body order is preserved; titles after the first get a
// " (Part N)" suffix starting at 2. Non-positive limits fall back to the
// defaults.
func SplitSlide(slide Slide, t Thresholds) []Slide {
	fragments := layout.Split(slide.Title, slide.Body, t.internal())
	out := make([]Slide, len(fragments))
	for i, f := range fragments {
		out[i] = Slide{Title: f.Title, Body: f.Body}
	}
	return out
}

// IsOverflowing reports whether content exceeds any limit of t.
func IsOverflowing(content string, t Thresholds) bool {
	return layout.IsOverflowing(content, t.internal())
}

// RenderMarkdown renders one slide body to an HTML fragment with the
// builtin engine and plain code blocks.
func RenderMarkdown(body string) string {
	return pipeline.RenderMarkdown(body, nil)
}
