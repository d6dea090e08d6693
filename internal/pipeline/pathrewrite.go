package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// mediaAttrs lists the attributes that may reference a local file, per element.
var mediaAttrs = map[atom.Atom][]string{
	atom.Img:    {"src"},
	atom.Video:  {"src", "poster"},
	atom.Audio:  {"src"},
	atom.Source: {"src"},
	atom.A:      {"href"},
}

// PathRewriter resolves relative references in rendered slides against the
// directory of the deck file, so images and media keep working once the
// document is written somewhere else.
//
// When OutputDir is set, references become paths relative to it, which keeps
// the output portable together with its assets. Otherwise they become
// absolute file:// URLs. References that escape SourceDir are left alone.
type PathRewriter struct {
	SourceDir string
	OutputDir string
}

// Rewrite returns htmlContent with local references resolved. An empty
// SourceDir returns the content unchanged.
func (p PathRewriter) Rewrite(htmlContent string) (string, error) {
	if p.SourceDir == "" {
		return htmlContent, nil
	}

	sourceDir, err := filepath.Abs(p.SourceDir)
	if err != nil {
		return "", err
	}
	outputDir := ""
	if p.OutputDir != "" {
		if outputDir, err = filepath.Abs(p.OutputDir); err != nil {
			return "", err
		}
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	walk(doc, func(n *html.Node) {
		for _, key := range mediaAttrs[n.DataAtom] {
			rewriteAttr(n, key, sourceDir, outputDir)
		}
	})

	return renderHTML(doc, isFragment)
}

// parseHTML parses a full document or a fragment. Fragments are parsed in
// body context and collected under a document node.
func parseHTML(content string) (*html.Node, bool, error) {
	head := strings.ToLower(strings.TrimSpace(content))
	if strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// renderHTML renders a document, or only the children of a fragment container.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if !isFragment {
		if err := html.Render(&buf, doc); err != nil {
			return "", err
		}
		return buf.String(), nil
	}

	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// walk calls fn for every element node in depth-first order.
func walk(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func rewriteAttr(n *html.Node, key, sourceDir, outputDir string) {
	for i, attr := range n.Attr {
		if attr.Key != key || !isRelativePath(attr.Val) {
			continue
		}

		target := filepath.Join(sourceDir, filepath.FromSlash(attr.Val))
		if !isPathUnderDir(target, sourceDir) {
			continue
		}

		n.Attr[i].Val = resolveReference(target, outputDir)
	}
}

// resolveReference returns a reference to target as seen from outputDir.
func resolveReference(target, outputDir string) string {
	if outputDir != "" {
		if rel, err := filepath.Rel(outputDir, target); err == nil {
			return (&url.URL{Path: filepath.ToSlash(rel)}).String()
		}
	}
	return pathToFileURL(target)
}

// isRelativePath reports whether ref points at a local relative file.
func isRelativePath(ref string) bool {
	switch {
	case ref == "", strings.HasPrefix(ref, "#"), strings.HasPrefix(ref, "//"):
		return false
	case filepath.IsAbs(ref), strings.HasPrefix(ref, "/"):
		return false
	}
	if u, err := url.Parse(ref); err == nil && u.Scheme != "" {
		// http, https, file, data, mailto, ...
		return false
	}
	return true
}

// isPathUnderDir checks if absPath is dir or inside it.
func isPathUnderDir(absPath, dir string) bool {
	cleanDir := filepath.Clean(dir)
	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}
	return strings.HasPrefix(filepath.Clean(absPath)+string(filepath.Separator), cleanDir)
}

// pathToFileURL converts an absolute path to a file:// URL.
func pathToFileURL(absPath string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(absPath)}
	return u.String()
}
