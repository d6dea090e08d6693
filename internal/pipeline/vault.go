package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// Placeholder tokens use Unicode Private Use Area characters that no
// markup pass matches on. A token is tokenOpen + counter + a closing rune
// that records whether it stands for a block or an inline value.
const (
	tokenOpen   = "\uE000" // U+E000: token start
	blockClose  = "\uE001" // U+E001: fenced code block end
	inlineClose = "\uE002" // U+E002: inline value end
	maskOpen    = "\uE003" // U+E003: masked HTML tag start (emphasis pass)
	maskClose   = "\uE004" // U+E004: masked HTML tag end
)

var (
	// Opening fence with optional info string, body, closing fence at line start.
	fencedCode = regexp.MustCompile("(?ms)^[ \\t]*```([^\\n`]*)\\n(.*?)^[ \\t]*```[ \\t]*$")

	// Single-backtick span without embedded newline.
	inlineCode = regexp.MustCompile("`([^`\\n]+)`")

	// Any vault token.
	vaultToken = regexp.MustCompile(`\x{E000}(\d+)([\x{E001}\x{E002}])`)

	// A line holding exactly one block token.
	blockTokenLine = regexp.MustCompile(`^\x{E000}\d+\x{E001}$`)

	// Characters allowed in a language class name.
	langChars = regexp.MustCompile(`[^A-Za-z0-9_+#.-]`)
)

// entryKind tells Restore how to render a vault entry.
type entryKind int

const (
	kindFenced  entryKind = iota // fenced code block
	kindInline                   // inline code span
	kindLiteral                  // private-use rune from the input
)

type vaultEntry struct {
	kind entryKind
	lang string
	code string
}

// CodeHighlighter renders a fenced code block as HTML.
// Implementations return false when they cannot handle the language,
// in which case the plain numbered rendering is used.
type CodeHighlighter interface {
	Highlight(code, lang string) (string, bool)
}

// Vault holds code extracted from one conversion call.
// It is not safe for concurrent use; each call owns its own Vault.
type Vault struct {
	entries []vaultEntry
}

// Extract replaces fenced code blocks and inline code spans with opaque
// tokens. Fenced blocks become standalone lines padded by blank lines.
// Private-use runes already present in text are vaulted too, so no input
// can forge a token.
func Extract(text string) (string, *Vault) {
	v := &Vault{}
	text = v.protectLiterals(text)

	text = fencedCode.ReplaceAllStringFunc(text, func(match string) string {
		sub := fencedCode.FindStringSubmatch(match)
		code := strings.TrimSuffix(sub[2], "\n")
		return "\n\n" + v.add(vaultEntry{
			kind: kindFenced,
			lang: sanitizeLang(sub[1]),
			code: v.expandLiterals(code),
		}) + "\n\n"
	})

	text = inlineCode.ReplaceAllStringFunc(text, func(match string) string {
		sub := inlineCode.FindStringSubmatch(match)
		return v.add(vaultEntry{kind: kindInline, code: v.expandLiterals(sub[1])})
	})

	return text, v
}

// Len returns the number of vaulted entries.
func (v *Vault) Len() int {
	return len(v.entries)
}

func (v *Vault) add(e vaultEntry) string {
	id := len(v.entries)
	v.entries = append(v.entries, e)
	closer := inlineClose
	if e.kind == kindFenced {
		closer = blockClose
	}
	return tokenOpen + strconv.Itoa(id) + closer
}

func (v *Vault) lookup(token string) (vaultEntry, bool) {
	sub := vaultToken.FindStringSubmatch(token)
	if sub == nil {
		return vaultEntry{}, false
	}
	id, err := strconv.Atoi(sub[1])
	if err != nil || id >= len(v.entries) {
		return vaultEntry{}, false
	}
	return v.entries[id], true
}

// protectLiterals vaults every private-use rune we reserve for tokens.
func (v *Vault) protectLiterals(text string) string {
	if !strings.ContainsAny(text, tokenOpen+blockClose+inlineClose+maskOpen+maskClose) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r >= 0xE000 && r <= 0xE004 {
			b.WriteString(v.add(vaultEntry{kind: kindLiteral, code: string(r)}))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// expandLiterals puts literal runes back into extracted code.
func (v *Vault) expandLiterals(code string) string {
	if !strings.Contains(code, tokenOpen) {
		return code
	}
	return vaultToken.ReplaceAllStringFunc(code, func(token string) string {
		if e, ok := v.lookup(token); ok && e.kind == kindLiteral {
			return e.code
		}
		return token
	})
}

// Reveal replaces tokens with their raw text. Used where visible text is
// needed before rendering, such as heading ids.
func (v *Vault) Reveal(text string) string {
	return vaultToken.ReplaceAllStringFunc(text, func(token string) string {
		if e, ok := v.lookup(token); ok {
			return e.code
		}
		return token
	})
}

// Restore replaces every token with its rendered HTML. Code is escaped
// here, independently of the escaping applied to the surrounding text.
// Tokens unknown to this vault are left untouched.
func (v *Vault) Restore(text string, hl CodeHighlighter) string {
	return vaultToken.ReplaceAllStringFunc(text, func(token string) string {
		e, ok := v.lookup(token)
		if !ok {
			return token
		}
		switch e.kind {
		case kindFenced:
			return renderFenced(e, hl)
		case kindInline:
			return `<code class="inline-code">` + escapeHTML(e.code) + `</code>`
		default:
			return e.code
		}
	})
}

// isBlockToken reports whether block is a single fenced code token.
func isBlockToken(block string) bool {
	return blockTokenLine.MatchString(strings.TrimSpace(block))
}

func renderFenced(e vaultEntry, hl CodeHighlighter) string {
	if hl != nil && e.lang != "" {
		if out, ok := hl.Highlight(e.code, e.lang); ok {
			return out
		}
	}

	class := ""
	if e.lang != "" {
		class = ` class="language-` + e.lang + `"`
	}

	code := escapeHTML(e.code)
	if strings.Contains(code, "\n") {
		lines := strings.Split(code, "\n")
		for i, line := range lines {
			if strings.TrimSpace(line) == "" {
				lines[i] = `<span class="line-number"></span>`
				continue
			}
			lines[i] = `<span class="line-number">` + strconv.Itoa(i+1) + `</span>` + line
		}
		code = strings.Join(lines, "\n")
	}

	return `<pre class="code-block"><code` + class + `>` + code + `</code></pre>`
}

// sanitizeLang keeps the first word of a fence info string, restricted to
// characters that are safe inside a class attribute.
func sanitizeLang(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return langChars.ReplaceAllString(fields[0], "")
}
