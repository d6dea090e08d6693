package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Unordered item: indentation, marker, text
	unorderedItem = regexp.MustCompile(`^([ \t]*)[*+-][ \t]+(\S.*)$`)

	// Ordered item: number, text
	orderedItem = regexp.MustCompile(`^[ \t]*(\d+)\.[ \t]+(\S.*)$`)

	// Task item: state, text
	taskItem = regexp.MustCompile(`^[ \t]*-[ \t]+\[([ xX])\][ \t]+(\S.*)$`)
)

// replaceRuns hands every maximal run of consecutive lines accepted by match
// to render, and replaces the run with the result.
func replaceRuns(text string, match func(string) bool, render func([]string) string) string {
	lines := strings.Split(text, "\n")
	result := make([]string, 0, len(lines))

	for i := 0; i < len(lines); {
		if !match(lines[i]) {
			result = append(result, lines[i])
			i++
			continue
		}
		start := i
		for i < len(lines) && match(lines[i]) {
			i++
		}
		result = append(result, render(lines[start:i]))
	}

	return strings.Join(result, "\n")
}

func isUnorderedItem(line string) bool {
	return unorderedItem.MatchString(line) && !taskItem.MatchString(line)
}

// indentLevel converts leading whitespace to a nesting depth. Two spaces
// make one level and a tab counts as two spaces.
func indentLevel(indent string) int {
	width := 0
	for _, r := range indent {
		if r == '\t' {
			width += 2
		} else {
			width++
		}
	}
	return width / 2
}

// renderUnorderedLists builds nested lists from indentation. The stack holds
// the level of every open list; the innermost is last.
func renderUnorderedLists(text string) string {
	return replaceRuns(text, isUnorderedItem, func(lines []string) string {
		var (
			b     strings.Builder
			stack []int
		)
		for _, line := range lines {
			m := unorderedItem.FindStringSubmatch(line)
			level, item := indentLevel(m[1]), m[2]

			switch {
			case len(stack) == 0:
				b.WriteString("<ul class=\"elegant-list\">\n<li>")
				stack = append(stack, level)
			case level > stack[len(stack)-1]:
				b.WriteString("\n<ul class=\"nested-list\">\n<li>")
				stack = append(stack, level)
			default:
				for len(stack) > 1 && stack[len(stack)-1] > level {
					b.WriteString("</li>\n</ul>")
					stack = stack[:len(stack)-1]
				}
				b.WriteString("</li>\n<li>")
			}
			b.WriteString(item)
		}
		for range stack {
			b.WriteString("</li>\n</ul>")
		}
		return b.String()
	})
}

// renderOrderedLists converts runs of numbered items. A list that does not
// start at 1 keeps its first number.
func renderOrderedLists(text string) string {
	return replaceRuns(text, orderedItem.MatchString, func(lines []string) string {
		var b strings.Builder
		first := orderedItem.FindStringSubmatch(lines[0])[1]
		if n, err := strconv.Atoi(first); err == nil && n != 1 {
			b.WriteString(`<ol class="elegant-list" start="` + strconv.Itoa(n) + `">`)
		} else {
			b.WriteString(`<ol class="elegant-list">`)
		}
		for _, line := range lines {
			m := orderedItem.FindStringSubmatch(line)
			b.WriteString("\n<li>" + m[2] + "</li>")
		}
		b.WriteString("\n</ol>")
		return b.String()
	})
}

// renderTaskLists converts checkbox items.
func renderTaskLists(text string) string {
	return replaceRuns(text, taskItem.MatchString, func(lines []string) string {
		var b strings.Builder
		b.WriteString(`<ul class="task-list">`)
		for _, line := range lines {
			m := taskItem.FindStringSubmatch(line)
			state, glyph := "pending", "○"
			if m[1] != " " {
				state, glyph = "completed", "✓"
			}
			b.WriteString("\n<li class=\"task-item " + state + "\"><span class=\"checkbox\">" + glyph + "</span> " + m[2] + "</li>")
		}
		b.WriteString("\n</ul>")
		return b.String()
	})
}
