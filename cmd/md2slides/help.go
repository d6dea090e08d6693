package main

import (
	"fmt"
	"io"
)

// printUsage prints the command usage.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2slides [flags] <deck>...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render slide decks to Markdown or standalone HTML presentations.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  deck    Deck file (.md, .markdown, .yaml, .yml, .json) or directory of decks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>         Output file (one deck) or directory")
	fmt.Fprintln(w, "  -f, --format <s>            Output format: markdown, html (default markdown)")
	fmt.Fprintln(w, "  -c, --config <name>         Config file name or path")
	fmt.Fprintln(w, "      --stats                 Print per-slide size statistics")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --theme <name>          Theme the HTML deck opens with")
	fmt.Fprintln(w, "      --list-themes           List available themes and exit")
	fmt.Fprintln(w, "      --engine <s>            Render engine: builtin, goldmark")
	fmt.Fprintln(w, "      --highlight <style>     Highlight code with a chroma style")
	fmt.Fprintln(w, "      --css <path>            Extra CSS file for HTML decks")
	fmt.Fprintln(w, "      --asset-path <dir>      Custom styles/, templates/ and themes/")
	fmt.Fprintln(w, "  -w, --workers <n>           Parallel slide renders (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Splitting:")
	fmt.Fprintln(w, "      --max-chars <n>         Max characters per slide (default 2000)")
	fmt.Fprintln(w, "      --max-bullets <n>       Max bullet lines per slide (default 8)")
	fmt.Fprintln(w, "      --max-paragraphs <n>    Max paragraphs per slide (default 4)")
	fmt.Fprintln(w, "      --no-split              Never split overflowing slides")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                 Only show errors")
	fmt.Fprintln(w, "  -v, --verbose               Show debug details")
	fmt.Fprintln(w, "      --version               Show version information")
	fmt.Fprintln(w, "  -h, --help                  Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2SLIDES_CONFIG, MD2SLIDES_FORMAT, MD2SLIDES_THEME,")
	fmt.Fprintln(w, "  MD2SLIDES_OUTPUT_DIR, MD2SLIDES_WORKERS")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
}
