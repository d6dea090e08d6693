package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags that control the run rather than the decks.
type commonFlags struct {
	config     string
	quiet      bool
	verbose    bool
	version    bool
	help       bool
	listThemes bool
}

// renderFlags holds flags for HTML rendering.
type renderFlags struct {
	theme     string
	engine    string
	highlight string
	css       string
	assetPath string
	workers   int
}

// splitFlags holds overflow limit flags. Zero means "not set".
type splitFlags struct {
	maxChars      int
	maxBullets    int
	maxParagraphs int
	disabled      bool
}

// cliFlags holds all flags of the md2slides command.
type cliFlags struct {
	common commonFlags
	output string
	format string
	stats  bool
	render renderFlags
	split  splitFlags
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug details")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")
	fs.BoolVar(&f.listThemes, "list-themes", false, "list available HTML themes")
}

func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.theme, "theme", "", "HTML theme the deck opens with")
	fs.StringVar(&f.engine, "engine", "", "render engine: builtin, goldmark")
	fs.StringVar(&f.highlight, "highlight", "", "chroma style for server-side code highlighting")
	fs.StringVar(&f.css, "css", "", "extra CSS file for HTML decks")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel slide renders (0 = auto)")
}

func addSplitFlags(fs *flag.FlagSet, f *splitFlags) {
	fs.IntVar(&f.maxChars, "max-chars", 0, "max characters per slide (default 2000)")
	fs.IntVar(&f.maxBullets, "max-bullets", 0, "max bullet lines per slide (default 8)")
	fs.IntVar(&f.maxParagraphs, "max-paragraphs", 0, "max paragraphs per slide (default 4)")
	fs.BoolVar(&f.disabled, "no-split", false, "never split overflowing slides")
}

// newFlagSet registers every flag on a fresh FlagSet bound to f.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("md2slides", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringVarP(&f.output, "output", "o", "", "output file (one deck) or directory")
	fs.StringVarP(&f.format, "format", "f", "", "output format: markdown, html")
	fs.BoolVar(&f.stats, "stats", false, "print per-slide size statistics")

	addRenderFlags(fs, &f.render)
	addSplitFlags(fs, &f.split)
	addCommonFlags(fs, &f.common)

	return fs
}

// parseFlags parses args (without the program name) and returns the
// positional deck paths.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := newFlagSet(f)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
