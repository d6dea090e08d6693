// Package pipeline renders slide bodies written in Markdown to HTML fragments.
//
// The builtin engine is an ordered chain of rewrite passes:
//   - code extraction into a placeholder vault
//   - escaping and block isolation
//   - headers, rules, blockquotes, then lists
//   - tables, images, links, then emphasis
//   - paragraph wrapping, then code restoration
//
// Each pass scans the whole text and leaves what it does not recognize
// untouched, so rendering never fails on malformed input. Heavier markup
// (footnotes, strict CommonMark) is available through GoldmarkConverter.
//
// The package also holds the HTML post-processing used on assembled decks:
// CSS injection and relative path rewriting.
package pipeline
