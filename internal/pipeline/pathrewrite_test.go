package pipeline

// Notes:
// - Tests PathRewriter through Rewrite plus the small path helpers
// - Coverage gaps on error branches in parseHTML/renderHTML are acceptable:
//   the html package rarely fails on valid input
// - Path traversal tests verify the observable behavior (reference untouched)
//   rather than isPathUnderDir alone
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}
}

// ---------------------------------------------------------------------------
// TestPathRewriter_FileURLs - No output directory
// ---------------------------------------------------------------------------

func TestPathRewriter_FileURLs(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	rw := PathRewriter{SourceDir: "/decks"}

	tests := []struct {
		name string
		html string
		want string
	}{
		{"relative image with dot slash", `<img src="./images/logo.png"/>`, `src="file:///decks/images/logo.png"`},
		{"relative image without dot slash", `<img src="images/logo.png"/>`, `src="file:///decks/images/logo.png"`},
		{"video source rewritten", `<video src="clip.mp4"></video>`, `src="file:///decks/clip.mp4"`},
		{"video poster rewritten", `<video poster="poster.jpg"></video>`, `poster="file:///decks/poster.jpg"`},
		{"audio source rewritten", `<audio src="./theme.mp3"></audio>`, `src="file:///decks/theme.mp3"`},
		{"source element rewritten", `<video><source src="clip.webm"/></video>`, `src="file:///decks/clip.webm"`},
		{"relative link rewritten", `<a href="notes.md">notes</a>`, `href="file:///decks/notes.md"`},
		{"absolute path unchanged", `<img src="/abs/logo.png"/>`, `src="/abs/logo.png"`},
		{"https URL unchanged", `<img src="https://example.com/a.png"/>`, `src="https://example.com/a.png"`},
		{"data URI unchanged", `<img src="data:image/png;base64,ABC"/>`, `src="data:image/png;base64,ABC"`},
		{"anchor unchanged", `<a href="#slide-3">3</a>`, `href="#slide-3"`},
		{"mailto unchanged", `<a href="mailto:a@b.c">mail</a>`, `href="mailto:a@b.c"`},
		{"protocol-relative unchanged", `<img src="//cdn.example.com/a.png"/>`, `src="//cdn.example.com/a.png"`},
		{"script untouched", `<script src="app.js"></script>`, `src="app.js"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := rw.Rewrite(tt.html)
			if err != nil {
				t.Fatalf("Rewrite() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Rewrite() = %q, want to contain %q", got, tt.want)
			}
		})
	}
}

func TestPathRewriter_EmptySourceDir(t *testing.T) {
	t.Parallel()

	in := `<img src="./logo.png">`
	got, err := PathRewriter{}.Rewrite(in)
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	if got != in {
		t.Errorf("Rewrite() = %q, want input unchanged", got)
	}
}

// ---------------------------------------------------------------------------
// TestPathRewriter_OutputDir - Paths relative to the written document
// ---------------------------------------------------------------------------

func TestPathRewriter_OutputDir(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	tests := []struct {
		name      string
		outputDir string
		html      string
		want      string
	}{
		{"same directory", "/decks", `<img src="./img/a.png"/>`, `src="img/a.png"`},
		{"output in subdirectory", "/decks/out", `<img src="img/a.png"/>`, `src="../img/a.png"`},
		{"output elsewhere", "/tmp/site", `<img src="img/a.png"/>`, `src="../../decks/img/a.png"`},
		{"spaces are escaped", "/decks", `<img src="my img.png"/>`, `src="my%20img.png"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rw := PathRewriter{SourceDir: "/decks", OutputDir: tt.outputDir}
			got, err := rw.Rewrite(tt.html)
			if err != nil {
				t.Fatalf("Rewrite() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Rewrite() = %q, want to contain %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPathRewriter_PathTraversal - References outside the deck directory
// ---------------------------------------------------------------------------

func TestPathRewriter_PathTraversal(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	rw := PathRewriter{SourceDir: "/decks"}

	tests := []struct {
		name string
		html string
		want string
	}{
		{"parent traversal blocked", `<img src="../../../etc/passwd"/>`, `src="../../../etc/passwd"`},
		{"double dot in middle blocked", `<img src="img/../../../etc/passwd"/>`, `src="img/../../../etc/passwd"`},
		{"nested path allowed", `<img src="img/sub/deep.png"/>`, `src="file:///decks/img/sub/deep.png"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := rw.Rewrite(tt.html)
			if err != nil {
				t.Fatalf("Rewrite() error = %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Rewrite() = %q, want to contain %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPathRewriter_DocumentTypes - Full document vs fragment
// ---------------------------------------------------------------------------

func TestPathRewriter_FullDocument(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	doc := "<!DOCTYPE html>\n<html><head><title>Deck</title></head><body><div class=\"slide\"><img src=\"a.png\"/></div></body></html>"

	got, err := PathRewriter{SourceDir: "/decks"}.Rewrite(doc)
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "<title>Deck</title>", `src="file:///decks/a.png"`} {
		if !strings.Contains(got, want) {
			t.Errorf("Rewrite() missing %q in %q", want, got)
		}
	}
}

func TestPathRewriter_FragmentNotWrapped(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	got, err := PathRewriter{SourceDir: "/decks"}.Rewrite(`<figure class="elegant-image"><img src="a.png"/></figure>`)
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	if strings.Contains(got, "<body>") || strings.Contains(got, "<html>") {
		t.Errorf("fragment was wrapped: %q", got)
	}
	if !strings.HasPrefix(got, `<figure class="elegant-image">`) {
		t.Errorf("Rewrite() = %q, want figure kept", got)
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func TestIsRelativePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"./image.png", true},
		{"images/logo.png", true},
		{"../parent.png", true},
		{"file.png", true},
		{"", false},
		{"http://example.com/img.png", false},
		{"https://example.com/img.png", false},
		{"file:///abs/path.png", false},
		{"data:image/png;base64,ABC", false},
		{"mailto:someone@example.com", false},
		{"//cdn.example.com/img.png", false},
		{"#anchor", false},
		{"/absolute/path.png", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := isRelativePath(tt.path); got != tt.want {
				t.Errorf("isRelativePath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsPathUnderDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		absPath string
		dir     string
		want    bool
	}{
		{"direct child", "/decks/a.png", "/decks", true},
		{"nested child", "/decks/img/a.png", "/decks", true},
		{"parent directory", "/etc/passwd", "/decks", false},
		{"similar prefix", "/decks-old/a.png", "/decks", false},
		{"trailing slash", "/decks/a.png", "/decks/", true},
		{"exact match", "/decks", "/decks", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			absPath := filepath.FromSlash(tt.absPath)
			dir := filepath.FromSlash(tt.dir)
			if got := isPathUnderDir(absPath, dir); got != tt.want {
				t.Errorf("isPathUnderDir(%q, %q) = %v, want %v", absPath, dir, got, tt.want)
			}
		})
	}
}

func TestPathToFileURL(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	tests := []struct {
		absPath string
		want    string
	}{
		{"/decks/img/logo.png", "file:///decks/img/logo.png"},
		{"/decks/my images/logo.png", "file:///decks/my%20images/logo.png"},
		{"/decks/日本語/logo.png", "file:///decks/%E6%97%A5%E6%9C%AC%E8%AA%9E/logo.png"},
	}

	for _, tt := range tests {
		t.Run(tt.absPath, func(t *testing.T) {
			t.Parallel()

			if got := pathToFileURL(tt.absPath); got != tt.want {
				t.Errorf("pathToFileURL(%q) = %q, want %q", tt.absPath, got, tt.want)
			}
		})
	}
}
