package layout

import (
	"fmt"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"
)

func bulletBody(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("- item %d", i+1)
	}
	return strings.Join(lines, "\n")
}

// stripSpace removes every whitespace rune so bodies can be compared
// independently of splitting-introduced padding.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func joinBodies(fragments []Fragment) string {
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString(f.Body)
	}
	return b.String()
}

// ---------------------------------------------------------------------------
// TestSplit_Scenarios - Reference behaviors
// ---------------------------------------------------------------------------

func TestSplit_FitsReturnsSingleUnmodifiedFragment(t *testing.T) {
	t.Parallel()

	para := strings.Repeat("word ", 80) // 400 chars
	body := para + "\n\n" + para + "\n\n" + para

	got := Split("Intro", body, DefaultThresholds())
	if len(got) != 1 {
		t.Fatalf("len(fragments) = %d, want 1", len(got))
	}
	if got[0].Title != "Intro" {
		t.Errorf("Title = %q, want %q", got[0].Title, "Intro")
	}
	if got[0].Body != body {
		t.Error("Body was modified for non-overflowing content")
	}
}

func TestSplit_EmptyBody(t *testing.T) {
	t.Parallel()

	got := Split("Empty", "", DefaultThresholds())
	if len(got) != 1 || got[0].Title != "Empty" || got[0].Body != "" {
		t.Errorf("Split(empty) = %+v, want one empty fragment", got)
	}
}

func TestSplit_BlankBodyKeepsSlide(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()
	for _, body := range []string{
		strings.Repeat("\n", 2*th.MaxChars+1),
		strings.Repeat(" \n", th.MaxChars+1),
		strings.Repeat("\t", th.MaxChars+1),
	} {
		got := Split("Agenda", body, th)
		if len(got) != 1 || got[0].Title != "Agenda" || got[0].Body != "" {
			t.Errorf("Split(%d blank chars) = %+v, want one empty fragment", len(body), got)
		}
	}
}

func TestSplit_TwelveBullets(t *testing.T) {
	t.Parallel()

	got := Split("X", bulletBody(12), DefaultThresholds())
	if len(got) != 2 {
		t.Fatalf("len(fragments) = %d, want 2", len(got))
	}
	if got[0].Title != "X" {
		t.Errorf("first title = %q, want %q", got[0].Title, "X")
	}
	if got[1].Title != "X (Part 2)" {
		t.Errorf("second title = %q, want %q", got[1].Title, "X (Part 2)")
	}
	if want := bulletBody(8); got[0].Body != want {
		t.Errorf("first body = %q, want %q", got[0].Body, want)
	}
	if !strings.HasPrefix(got[1].Body, "- item 9\n") || !strings.HasSuffix(got[1].Body, "- item 12") {
		t.Errorf("second body = %q, want items 9..12", got[1].Body)
	}
}

func TestSplit_BulletsKeepInterleavedLines(t *testing.T) {
	t.Parallel()

	body := "- a\nnote under a\n- b\n- c"
	th := Thresholds{MaxChars: 1000, MaxBullets: 2, MaxParagraphs: 4}

	got := Split("T", body, th)
	if len(got) != 2 {
		t.Fatalf("len(fragments) = %d, want 2", len(got))
	}
	if got[0].Body != "- a\nnote under a\n- b" {
		t.Errorf("first body = %q", got[0].Body)
	}
	if got[1].Body != "- c" {
		t.Errorf("second body = %q", got[1].Body)
	}
}

func TestSplit_ParagraphsGreedy(t *testing.T) {
	t.Parallel()

	paras := []string{"p1", "p2", "p3", "p4", "p5", "p6"}
	body := strings.Join(paras, "\n\n")

	got := Split("Para", body, DefaultThresholds())
	if len(got) != 2 {
		t.Fatalf("len(fragments) = %d, want 2", len(got))
	}
	if got[0].Body != "p1\n\np2\n\np3\n\np4" {
		t.Errorf("first body = %q", got[0].Body)
	}
	if got[1].Body != "p5\n\np6" {
		t.Errorf("second body = %q", got[1].Body)
	}
	if got[1].Title != "Para (Part 2)" {
		t.Errorf("second title = %q", got[1].Title)
	}
}

func TestSplit_ParagraphsBeforeBullets(t *testing.T) {
	t.Parallel()

	// Both strategies apply; paragraph boundaries win.
	body := bulletBody(6) + "\n\n" + bulletBody(6)

	got := Split("L", body, DefaultThresholds())
	if len(got) != 2 {
		t.Fatalf("len(fragments) = %d, want 2", len(got))
	}
	if got[0].Body != bulletBody(6) || got[1].Body != bulletBody(6) {
		t.Errorf("fragments = %+v, want split at the blank line", got)
	}
}

func TestSplit_OversizedParagraphIsSplitAgain(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 25)
	body := "short\n\n" + long
	th := Thresholds{MaxChars: 10, MaxBullets: 8, MaxParagraphs: 4}

	got := Split("R", body, th)
	for i, f := range got {
		if IsOverflowing(f.Body, th) {
			t.Errorf("fragment %d still overflows: %q", i, f.Body)
		}
	}
	if stripSpace(joinBodies(got)) != stripSpace(body) {
		t.Errorf("fragments lost content: %+v", got)
	}
	if len(got) != 4 {
		t.Errorf("len(fragments) = %d, want 4 (short + 10 + 10 + 5)", len(got))
	}
}

// ---------------------------------------------------------------------------
// TestSplit_FencedCode - Code blocks are atomic
// ---------------------------------------------------------------------------

const pythonSnippet = "```python\n" +
	"# setup\nx = 1\n\n" +
	"# step one\ny = 2\n\n" +
	"# step two\nz = 3\n\n" +
	"# step three\nw = 4\n\n" +
	"# done\nprint(x)\n" +
	"```"

func TestMeasure_FencedCode(t *testing.T) {
	t.Parallel()

	code := "```\n- not\n- a\n- list\n\n- still code\n```"
	got := Measure("Intro\n\n" + pythonSnippet + "\n\n" + code + "\n\n- real")
	if got.Paragraphs != 4 {
		t.Errorf("Paragraphs = %d, want 4", got.Paragraphs)
	}
	if got.Bullets != 1 {
		t.Errorf("Bullets = %d, want 1", got.Bullets)
	}

	// Without a closing fence the lines are ordinary text.
	open := Measure("```\n- a\n\n- b")
	if open.Paragraphs != 2 || open.Bullets != 2 {
		t.Errorf("unclosed fence = %+v, want 2 paragraphs and 2 bullets", open)
	}
}

func TestSplit_FencedCodeStaysWhole(t *testing.T) {
	t.Parallel()

	body := "p1\n\np2\n\np3\n\n" + pythonSnippet + "\n\np5\n\np6"

	got := Split("Code", body, DefaultThresholds())
	if len(got) != 2 {
		t.Fatalf("len(fragments) = %d, want 2: %+v", len(got), got)
	}
	if want := "p1\n\np2\n\np3\n\n" + pythonSnippet; got[0].Body != want {
		t.Errorf("first body = %q, want %q", got[0].Body, want)
	}
	if got[1].Body != "p5\n\np6" {
		t.Errorf("second body = %q", got[1].Body)
	}
}

func TestSplit_BulletsSkipFencedCode(t *testing.T) {
	t.Parallel()

	code := "```\n" + bulletBody(10) + "\n```"
	body := "- a\n- b\n" + code + "\n- c\n- d"
	th := Thresholds{MaxChars: 1000, MaxBullets: 3, MaxParagraphs: 4}

	got := Split("B", body, th)
	if len(got) != 2 {
		t.Fatalf("len(fragments) = %d, want 2: %+v", len(got), got)
	}
	if want := "- a\n- b\n" + code + "\n- c"; got[0].Body != want {
		t.Errorf("first body = %q, want %q", got[0].Body, want)
	}
	if got[1].Body != "- d" {
		t.Errorf("second body = %q", got[1].Body)
	}
}

func TestLengthCut_SkipsFencedCode(t *testing.T) {
	t.Parallel()

	s := "Lead.\n```\nx.\n\ny\n```\ntail"
	cut, next := lengthCut(s, 20)
	if got := s[:cut]; got != "Lead." {
		t.Errorf("cut = %q, want %q", got, "Lead.")
	}
	if got := s[next:]; !strings.HasPrefix(got, "```") {
		t.Errorf("rest = %q, want it to start at the fence", got)
	}
}

// ---------------------------------------------------------------------------
// TestSplit_LengthBoundary - max_chars is inclusive
// ---------------------------------------------------------------------------

func TestSplit_LengthBoundary(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()

	exact := strings.Repeat("a", th.MaxChars)
	if got := Split("B", exact, th); len(got) != 1 {
		t.Errorf("exactly max_chars: len(fragments) = %d, want 1", len(got))
	}

	// No blank lines or sentence ends: the fallback is a hard cut mid-word.
	over := strings.Repeat("a", th.MaxChars+1)
	got := Split("B", over, th)
	if len(got) != 2 {
		t.Fatalf("max_chars+1: len(fragments) = %d, want 2", len(got))
	}
	if utf8.RuneCountInString(got[0].Body) != th.MaxChars {
		t.Errorf("first fragment = %d chars, want %d", utf8.RuneCountInString(got[0].Body), th.MaxChars)
	}
	if got[1].Body != "a" {
		t.Errorf("second fragment = %q, want %q", got[1].Body, "a")
	}
}

func TestSplit_LengthNeverCutsMidRune(t *testing.T) {
	t.Parallel()

	body := strings.Repeat("é", 25)
	th := Thresholds{MaxChars: 10, MaxBullets: 8, MaxParagraphs: 4}

	got := Split("U", body, th)
	if len(got) != 3 {
		t.Fatalf("len(fragments) = %d, want 3", len(got))
	}
	for i, f := range got {
		if !utf8.ValidString(f.Body) {
			t.Errorf("fragment %d is not valid UTF-8", i)
		}
	}
}

// ---------------------------------------------------------------------------
// TestLengthCut - Preferred cut points
// ---------------------------------------------------------------------------

func TestLengthCut(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		s        string
		maxChars int
		wantCut  string
		wantRest string
	}{
		{
			name:     "blank line preferred over sentence end",
			s:        "One. Two\n\nThree four five",
			maxChars: 14,
			wantCut:  "One. Two",
			wantRest: "Three four five",
		},
		{
			name:     "sentence end when no blank line",
			s:        "First one. Second sentence here",
			maxChars: 16,
			wantCut:  "First one.",
			wantRest: "Second sentence here",
		},
		{
			name:     "question and exclamation marks",
			s:        "Why? Because! And then",
			maxChars: 16,
			wantCut:  "Why? Because!",
			wantRest: "And then",
		},
		{
			name:     "hard cut without boundaries",
			s:        "abcdefghij",
			maxChars: 4,
			wantCut:  "abcd",
			wantRest: "efghij",
		},
		{
			name:     "leading blank line is not a cut point",
			s:        "\n\nabcdefgh",
			maxChars: 5,
			wantCut:  "\n\nabc",
			wantRest: "defgh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cut, next := lengthCut(tt.s, tt.maxChars)
			if got := tt.s[:cut]; got != tt.wantCut {
				t.Errorf("cut = %q, want %q", got, tt.wantCut)
			}
			if got := tt.s[next:]; got != tt.wantRest {
				t.Errorf("rest = %q, want %q", got, tt.wantRest)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestSplit_Properties - Lossless and monotonic over sample inputs
// ---------------------------------------------------------------------------

var propertyInputs = []string{
	"",
	"plain text",
	bulletBody(30),
	strings.Repeat("Sentence number one. ", 200),
	strings.Repeat("para\n\n", 20),
	bulletBody(5) + "\n\n" + strings.Repeat("x", 3000) + "\n\n" + bulletBody(12),
	"# Heading\n\n```go\nfunc main() {}\n```\n\n" + strings.Repeat("- nested\n  - child\n", 10),
	strings.Repeat("日本語のテキスト。", 400),
}

var propertyThresholds = []Thresholds{
	DefaultThresholds(),
	{MaxChars: 500, MaxBullets: 4, MaxParagraphs: 2},
	{MaxChars: 100, MaxBullets: 2, MaxParagraphs: 1},
	{MaxChars: 10, MaxBullets: 1, MaxParagraphs: 1},
}

func TestSplit_Lossless(t *testing.T) {
	t.Parallel()

	for i, body := range propertyInputs {
		for _, th := range propertyThresholds {
			got := Split("P", body, th)
			if stripSpace(joinBodies(got)) != stripSpace(body) {
				t.Errorf("input %d with %+v: content not reconstructed", i, th)
			}
			for j, f := range got {
				if j > 0 && f.Title != fmt.Sprintf("P (Part %d)", j+1) {
					t.Errorf("input %d: fragment %d title = %q", i, j, f.Title)
				}
				if len(got) > 1 && IsOverflowing(f.Body, th) && Measure(f.Body).Chars > th.MaxChars {
					t.Errorf("input %d with %+v: fragment %d exceeds max chars", i, th, j)
				}
			}
		}
	}
}

func TestSplit_Monotonic(t *testing.T) {
	t.Parallel()

	// propertyThresholds is ordered from loosest to strictest.
	for i, body := range propertyInputs {
		prev := 0
		for _, th := range propertyThresholds {
			n := len(Split("M", body, th))
			if n < prev {
				t.Errorf("input %d: %d fragments with %+v, fewer than %d with looser thresholds", i, n, th, prev)
			}
			prev = n
		}
	}
}

// Fragment counts only grow as a single limit tightens when the content
// splits on whole bullets or paragraphs. Hard cuts made mid-line by the
// length fallback do not keep this property.
func TestSplit_MonotonicByBoundaries(t *testing.T) {
	t.Parallel()

	loose := Thresholds{MaxChars: 1 << 20, MaxBullets: 1 << 10, MaxParagraphs: 1 << 10}

	for n := 1; n <= 40; n++ {
		bullets := bulletBody(n)
		paras := make([]string, n)
		for i := range paras {
			paras[i] = fmt.Sprintf("paragraph %d", i+1)
		}
		paragraphs := strings.Join(paras, "\n\n")

		prevBullets, prevParas := 0, 0
		for limit := 12; limit >= 1; limit-- {
			want := (n + limit - 1) / limit

			th := loose
			th.MaxBullets = limit
			got := len(Split("G", bullets, th))
			if got != want || got < prevBullets {
				t.Errorf("%d bullets, MaxBullets=%d: %d fragments, want %d", n, limit, got, want)
			}
			prevBullets = got

			th = loose
			th.MaxParagraphs = limit
			got = len(Split("G", paragraphs, th))
			if got != want || got < prevParas {
				t.Errorf("%d paragraphs, MaxParagraphs=%d: %d fragments, want %d", n, limit, got, want)
			}
			prevParas = got
		}
	}
}

func BenchmarkSplit(b *testing.B) {
	body := bulletBody(5) + "\n\n" + strings.Repeat("Sentence. ", 500) + "\n\n" + bulletBody(40)
	th := DefaultThresholds()
	b.ResetTimer()
	for b.Loop() {
		_ = Split("Bench", body, th)
	}
}
