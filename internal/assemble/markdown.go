package assemble

import "strings"

// Slide is one entry of an assembled deck. Body holds Markdown for the
// Markdown assembler and a rendered HTML fragment for the HTML assembler.
type Slide struct {
	Title string
	Body  string
}

// Markdown returns the deck as a single Markdown document: a title heading
// and rule, then for each slide a heading, its body and a closing rule.
func Markdown(title string, slides []Slide) string {
	var sb strings.Builder
	sb.WriteString("# " + title + "\n\n---\n\n")
	for _, s := range slides {
		sb.WriteString("\n# " + s.Title + "\n\n" + s.Body + "\n\n---\n")
	}
	return sb.String()
}
