package pipeline

import (
	"regexp"
	"strings"
)

// Alignment marker cell: ---, :---, ---:, :---:
var alignCell = regexp.MustCompile(`^:?-+:?$`)

// renderTables converts pipe tables. A run of table lines without an
// alignment row as its second line is left as is.
func renderTables(text string) string {
	return replaceRuns(text, isTableLine, func(lines []string) string {
		if len(lines) < 2 || !tableLine.MatchString(lines[0]) {
			return strings.Join(lines, "\n")
		}
		aligns, ok := parseAlignments(lines[1])
		if !ok {
			return strings.Join(lines, "\n")
		}

		var b strings.Builder
		b.WriteString("<div class=\"table-container\"><table class=\"elegant-table\">\n<thead>")
		writeRow(&b, "th", splitCells(lines[0]), aligns)
		b.WriteString("</thead>\n<tbody>\n")
		for _, line := range lines[2:] {
			writeRow(&b, "td", splitCells(line), aligns)
			b.WriteString("\n")
		}
		b.WriteString("</tbody></table></div>")
		return b.String()
	})
}

// splitCells strips the outer pipes of a row and returns its trimmed cells.
func splitCells(row string) []string {
	row = strings.TrimSpace(row)
	row = strings.TrimPrefix(row, "|")
	row = strings.TrimSuffix(row, "|")
	cells := strings.Split(row, "|")
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}

// parseAlignments reads the marker row once for the whole table.
func parseAlignments(row string) ([]string, bool) {
	cells := splitCells(row)
	aligns := make([]string, len(cells))
	for i, c := range cells {
		if !alignCell.MatchString(c) {
			return nil, false
		}
		switch {
		case strings.HasPrefix(c, ":") && strings.HasSuffix(c, ":"):
			aligns[i] = "center"
		case strings.HasSuffix(c, ":"):
			aligns[i] = "right"
		default:
			aligns[i] = "left"
		}
	}
	return aligns, true
}

// writeRow emits one row. Cells past the last alignment get no attribute.
func writeRow(b *strings.Builder, tag string, cells, aligns []string) {
	b.WriteString("<tr>")
	for i, c := range cells {
		b.WriteString("<" + tag)
		if i < len(aligns) {
			b.WriteString(` align="` + aligns[i] + `"`)
		}
		b.WriteString(">" + c + "</" + tag + ">")
	}
	b.WriteString("</tr>")
}
