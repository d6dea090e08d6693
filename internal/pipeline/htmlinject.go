package pipeline

import (
	"context"
	"strings"
)

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection adds extra CSS to an assembled deck. The block is marked
// with class "user-css" and placed after the deck's own styles so its rules
// take precedence.
type CSSInjection struct{}

var _ CSSInjector = (*CSSInjection)(nil)

// InjectCSS inserts a <style> block before </head>, else right after the
// opening <body> tag, else at the front of the content. CSS is sanitized so
// it cannot close the style element.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" || ctx.Err() != nil {
		return htmlContent
	}

	block := `<style class="user-css">` + sanitizeCSS(cssContent) + "</style>"
	return insertAt(htmlContent, injectionPoint(htmlContent), block)
}

// injectionPoint returns the byte offset where a head element belongs.
func injectionPoint(htmlContent string) int {
	lower := strings.ToLower(htmlContent)

	if idx := strings.Index(lower, "</head>"); idx != -1 {
		return idx
	}

	if idx := strings.Index(lower, "<body"); idx != -1 {
		if end := strings.Index(htmlContent[idx:], ">"); end != -1 {
			return idx + end + 1
		}
	}

	return 0
}

func insertAt(s string, pos int, insert string) string {
	return s[:pos] + insert + s[pos:]
}

// sanitizeCSS escapes "</" so the CSS cannot terminate the style element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
