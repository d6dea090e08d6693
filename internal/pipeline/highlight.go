package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrUnknownStyle indicates the requested chroma style does not exist.
var ErrUnknownStyle = errors.New("unknown highlight style")

// DefaultHighlightStyle is used when no style is configured.
const DefaultHighlightStyle = "github"

// ChromaHighlighter highlights fenced code with chroma using CSS classes.
// The matching stylesheet comes from WriteCSS.
type ChromaHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

var _ CodeHighlighter = (*ChromaHighlighter)(nil)

// NewChromaHighlighter creates a highlighter for a named chroma style.
// An empty name selects DefaultHighlightStyle.
func NewChromaHighlighter(styleName string) (*ChromaHighlighter, error) {
	if styleName == "" {
		styleName = DefaultHighlightStyle
	}
	style, ok := styles.Registry[strings.ToLower(styleName)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownStyle, styleName, strings.Join(styles.Names(), ", "))
	}
	return &ChromaHighlighter{
		style: style,
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.WithLineNumbers(true),
		),
	}, nil
}

// Highlight renders code for lang. It returns false when chroma has no
// lexer for lang or formatting fails.
func (h *ChromaHighlighter) Highlight(code, lang string) (string, bool) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		return "", false
	}
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", false
	}
	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", false
	}
	return `<div class="code-block highlighted">` + buf.String() + `</div>`, true
}

// WriteCSS writes the stylesheet for the highlighter's classes.
func (h *ChromaHighlighter) WriteCSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}
