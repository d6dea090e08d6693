package assemble

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/alnah/go-md2slides/internal/assets"
	"github.com/alnah/go-md2slides/internal/pipeline"
)

// StyleSheetWriter writes extra CSS needed by rendered fragments, such as
// the rules matching highlighted code classes.
type StyleSheetWriter interface {
	WriteCSS(w io.Writer) error
}

// HTMLConfig selects the assets and styling of an HTMLAssembler.
// Empty names select the built-in assets.
type HTMLConfig struct {
	Loader       assets.AssetLoader // nil uses the embedded assets
	StyleName    string
	TemplateName string
	ThemeCatalog string
	Theme        string
	CodeStyles   StyleSheetWriter // nil when code highlighting is off
	UserCSS      string
}

// HTMLAssembler renders slides into a standalone HTML deck.
// It is safe for concurrent use once constructed.
type HTMLAssembler struct {
	tmpl        *template.Template
	style       template.CSS
	catalog     *assets.ThemeCatalog
	themeIndex  int
	highlighted bool
	userCSS     string
	injector    pipeline.CSSInjector
}

// deckView is the data handed to the page template.
type deckView struct {
	Title       string
	Style       template.CSS
	Vars        themeVars
	ThemeName   string
	Themes      []assets.Theme
	ThemeIndex  int
	Highlighted bool
	Total       int
	Slides      []slideView
}

// themeVars carries validated theme colors into the style element.
type themeVars struct {
	Background template.CSS
	Text       template.CSS
	Accent     template.CSS
	Secondary  template.CSS
}

type slideView struct {
	Number   int
	Title    string
	Content  template.HTML
	Progress string
}

// NewHTMLAssembler loads and parses the deck assets once.
func NewHTMLAssembler(cfg HTMLConfig) (*HTMLAssembler, error) {
	loader := cfg.Loader
	if loader == nil {
		loader = assets.NewEmbeddedLoader()
	}

	tmplContent, err := loader.LoadTemplate(orDefault(cfg.TemplateName, assets.DefaultTemplateName))
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New("deck").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	style, err := loader.LoadStyle(orDefault(cfg.StyleName, assets.DefaultStyleName))
	if err != nil {
		return nil, err
	}
	if cfg.CodeStyles != nil {
		var buf strings.Builder
		if err := cfg.CodeStyles.WriteCSS(&buf); err != nil {
			return nil, fmt.Errorf("writing code styles: %w", err)
		}
		style += "\n" + buf.String()
	}

	catalog, err := loader.LoadThemes(orDefault(cfg.ThemeCatalog, assets.DefaultThemeCatalog))
	if err != nil {
		return nil, err
	}
	themeIndex, err := catalog.Index(cfg.Theme)
	if err != nil {
		return nil, err
	}

	return &HTMLAssembler{
		tmpl:        tmpl,
		style:       template.CSS(sanitizeStyle(style)), // #nosec G203 -- stylesheet comes from trusted assets
		catalog:     catalog,
		themeIndex:  themeIndex,
		highlighted: cfg.CodeStyles != nil,
		userCSS:     cfg.UserCSS,
		injector:    &pipeline.CSSInjection{},
	}, nil
}

// Assemble renders the deck. Slide bodies must already be HTML fragments;
// titles are plain text and get escaped.
func (a *HTMLAssembler) Assemble(ctx context.Context, title string, slides []Slide) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	theme := a.catalog.Themes[a.themeIndex]
	view := deckView{
		Title:       title,
		Style:       a.style,
		Vars:        newThemeVars(theme),
		ThemeName:   theme.Name,
		Themes:      a.catalog.Themes,
		ThemeIndex:  a.themeIndex,
		Highlighted: a.highlighted,
		Total:       len(slides),
		Slides:      make([]slideView, len(slides)),
	}
	for i, s := range slides {
		view.Slides[i] = slideView{
			Number:   i + 1,
			Title:    s.Title,
			Content:  template.HTML(s.Body), // #nosec G203 -- produced by the renderer, which escapes source text
			Progress: progress(i+1, len(slides)),
		}
	}

	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}

	return a.injector.InjectCSS(ctx, buf.String(), a.userCSS), nil
}

// Theme returns the theme the deck opens with.
func (a *HTMLAssembler) Theme() assets.Theme {
	return a.catalog.Themes[a.themeIndex]
}

// WithTheme returns a copy of a that opens with the named theme. The parsed
// template and stylesheet are shared. An empty name returns a unchanged.
func (a *HTMLAssembler) WithTheme(name string) (*HTMLAssembler, error) {
	if name == "" {
		return a, nil
	}
	idx, err := a.catalog.Index(name)
	if err != nil {
		return nil, err
	}
	cp := *a
	cp.themeIndex = idx
	return &cp, nil
}

// newThemeVars converts theme colors for the style element. Theme.Validate
// has already refused anything that could end a declaration.
func newThemeVars(t assets.Theme) themeVars {
	return themeVars{
		Background: template.CSS(t.Background), // #nosec G203 -- validated
		Text:       template.CSS(t.Text),       // #nosec G203 -- validated
		Accent:     template.CSS(t.Accent),     // #nosec G203 -- validated
		Secondary:  template.CSS(t.Secondary),  // #nosec G203 -- validated
	}
}

// progress returns n/total as a percentage with at most two decimals.
func progress(n, total int) string {
	if total == 0 {
		return "0"
	}
	pct := math.Round(float64(n)/float64(total)*10000) / 100
	return strconv.FormatFloat(pct, 'f', -1, 64)
}

// sanitizeStyle keeps the stylesheet from closing its style element.
func sanitizeStyle(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}

func orDefault(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
