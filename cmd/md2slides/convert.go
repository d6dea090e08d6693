package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/gosimple/slug"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/alnah/go-md2slides"
	"github.com/alnah/go-md2slides/internal/config"
	"github.com/alnah/go-md2slides/internal/deck"
	"github.com/alnah/go-md2slides/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput         = errors.New("no input deck specified")
	ErrReadCSS         = errors.New("failed to read CSS file")
	ErrOutputCollision = errors.New("several decks resolve to the same output file")
)

// DeckConverter is the part of md2slides.Converter the CLI depends on.
type DeckConverter interface {
	Convert(ctx context.Context, input md2slides.Input) (*md2slides.Document, error)
	Split(slide md2slides.Slide) []md2slides.Slide
}

// Compile-time interface implementation check.
var _ DeckConverter = (*md2slides.Converter)(nil)

// settings is the resolved configuration of one run.
type settings struct {
	cfg           *config.Config
	format        md2slides.Format
	themeOverride bool // theme came from a flag or env, not the config file
}

// run executes the command and returns its exit code.
func run(ctx context.Context, args []string, deps *Dependencies) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "md2slides: %v\n\n", err)
		printUsage(deps.Stderr)
		return ExitUsage
	}

	switch {
	case flags.common.help:
		printUsage(deps.Stdout)
		return ExitSuccess
	case flags.common.version:
		fmt.Fprintf(deps.Stdout, "md2slides %s\n", Version)
		return ExitSuccess
	}

	logger := newLogger(deps.Stderr, flags.common.verbose, flags.common.quiet)
	defer func() { _ = logger.Sync() }()

	if deps.TuneProcs {
		// maxprocs.Set only fails on an invalid GOMAXPROCS value, in which
		// case the runtime default stays in effect.
		undo, _ := maxprocs.Set(maxprocs.Logger(logger.Sugar().Debugf))
		defer undo()
	}

	warnUnknownEnvVars(logger)

	if err := execute(ctx, flags, positional, deps, logger); err != nil {
		for _, e := range multierr.Errors(err) {
			var fields []zap.Field
			if hint := hintFor(e, flags); hint != "" {
				fields = append(fields, zap.String("hint", hint))
			}
			logger.Error(e.Error(), fields...)
		}
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// execute resolves settings and converts every deck. Per-deck failures do
// not stop the batch; they are combined into the returned error.
func execute(ctx context.Context, flags *cliFlags, positional []string, deps *Dependencies, logger *zap.Logger) error {
	s, err := resolveSettings(flags, loadEnvConfig())
	if err != nil {
		return err
	}

	if flags.common.listThemes {
		return listThemes(deps, s.cfg.Assets.BasePath)
	}

	inputs, sawDir, err := expandInputs(positional)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return ErrNoInput
	}

	opts, err := converterOptions(s.cfg, logger)
	if err != nil {
		return err
	}
	conv, err := md2slides.NewConverter(opts...)
	if err != nil {
		return fmt.Errorf("initializing converter: %w", err)
	}

	var (
		errs error
		seen = make(map[string]string, len(inputs))
	)
	for _, path := range inputs {
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}
		errs = multierr.Append(errs, convertDeck(ctx, conv, path, sawDir || len(inputs) > 1, flags, s, seen, deps, logger))
	}
	return errs
}

// resolveSettings loads the config file and applies env and flag overrides.
func resolveSettings(flags *cliFlags, env *envConfig) (*settings, error) {
	cfg := config.DefaultConfig()

	name := flags.common.config
	if name == "" {
		name = env.ConfigPath
	}
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(env, cfg)
	if err := mergeFlags(flags, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	format, err := md2slides.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	return &settings{
		cfg:           cfg,
		format:        format,
		themeOverride: flags.render.theme != "" || env.Theme != "",
	}, nil
}

// mergeFlags overlays the flags that were set onto cfg (CLI wins). Zero
// values mean "not set" and leave cfg alone.
func mergeFlags(flags *cliFlags, cfg *config.Config) error {
	overlay := config.Config{
		Output: config.OutputConfig{Format: flags.format},
		Render: config.RenderConfig{
			Theme:     flags.render.theme,
			Engine:    flags.render.engine,
			Highlight: flags.render.highlight,
			CSS:       flags.render.css,
			Workers:   flags.render.workers,
		},
		Split: config.SplitConfig{
			MaxChars:      flags.split.maxChars,
			MaxBullets:    flags.split.maxBullets,
			MaxParagraphs: flags.split.maxParagraphs,
		},
		Assets: config.AssetsConfig{BasePath: flags.render.assetPath},
	}
	if err := mergo.Merge(cfg, overlay, mergo.WithOverride); err != nil {
		return fmt.Errorf("merging flags: %w", err)
	}
	if flags.split.disabled {
		cfg.Split.Enabled = false
	}
	return nil
}

// converterOptions maps a validated config onto converter options.
func converterOptions(cfg *config.Config, logger *zap.Logger) ([]md2slides.Option, error) {
	opts := []md2slides.Option{
		md2slides.WithLogger(logger),
		md2slides.WithEngine(md2slides.Engine(strings.ToLower(cfg.Render.Engine))),
		md2slides.WithSplitting(cfg.Split.Enabled),
		md2slides.WithThresholds(md2slides.Thresholds{
			MaxChars:      cfg.Split.MaxChars,
			MaxBullets:    cfg.Split.MaxBullets,
			MaxParagraphs: cfg.Split.MaxParagraphs,
		}),
	}
	if cfg.Render.Theme != "" {
		opts = append(opts, md2slides.WithTheme(cfg.Render.Theme))
	}
	if cfg.Render.Highlight != "" {
		opts = append(opts, md2slides.WithHighlighting(cfg.Render.Highlight))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, md2slides.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Render.Workers > 0 {
		opts = append(opts, md2slides.WithWorkers(cfg.Render.Workers))
	}
	if cfg.Render.CSS != "" {
		css, err := os.ReadFile(cfg.Render.CSS) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		opts = append(opts, md2slides.WithCSS(string(css)))
	}
	return opts, nil
}

// convertDeck loads, converts and saves one deck.
func convertDeck(ctx context.Context, conv DeckConverter, path string, batch bool, flags *cliFlags, s *settings, seen map[string]string, deps *Dependencies, logger *zap.Logger) error {
	start := time.Now()

	d, err := deck.Load(path)
	if err != nil {
		return err
	}

	outPath := resolveOutputPath(path, d.Title, flags.output, batch, s)
	key := filepath.Clean(fileutil.WithExtension(outPath, s.format.Extension()))
	if prev, ok := seen[key]; ok {
		return fmt.Errorf("%w: %s and %s -> %s", ErrOutputCollision, prev, path, key)
	}
	if sameFile(key, path) {
		return fmt.Errorf("%w: %s would overwrite its own input", ErrOutputCollision, path)
	}
	seen[key] = path

	input := md2slides.Input{
		Title:     d.Title,
		Slides:    make([]md2slides.Slide, len(d.Slides)),
		Format:    s.format,
		SourceDir: filepath.Dir(path),
		OutputDir: filepath.Dir(outPath),
	}
	for i, sl := range d.Slides {
		input.Slides[i] = md2slides.Slide{Title: sl.Title, Body: sl.Content}
	}
	if !s.themeOverride {
		input.Theme = d.Theme
	}

	doc, err := conv.Convert(ctx, input)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	saved, err := md2slides.Save(doc, outPath)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	logger.Info("deck written",
		zap.String("input", path),
		zap.String("output", saved),
		zap.Int("slides", doc.Slides),
		zap.Duration("elapsed", time.Since(start)),
	)

	if flags.stats {
		if err := writeStats(deps.Stdout, conv, path, saved, input.Slides, s.cfg); err != nil {
			return fmt.Errorf("%s: writing stats: %w", path, err)
		}
	}
	return nil
}

// resolveOutputPath picks where a deck is written. For a single deck -o
// names the file; in a batch it names the directory. Otherwise the file goes to
// the configured output directory, or next to the input, and is named after
// the deck title.
func resolveOutputPath(inputPath, title, output string, batch bool, s *settings) string {
	if output != "" && !batch && !isDirTarget(output) {
		return output
	}

	dir := filepath.Dir(inputPath)
	switch {
	case output != "":
		dir = output
	case s.cfg.Output.Dir != "":
		dir = s.cfg.Output.Dir
	}

	name := slug.Make(title)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	}
	return filepath.Join(dir, name+"."+s.format.Extension())
}

// isDirTarget reports whether output should be treated as a directory: an
// existing directory or a path ending in a separator.
func isDirTarget(output string) bool {
	if strings.HasSuffix(output, "/") || strings.HasSuffix(output, string(filepath.Separator)) {
		return true
	}
	return fileutil.DirExists(output)
}

// sameFile reports whether two paths name the same file. Paths that
// cannot be made absolute are compared as given.
func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// listThemes prints the themes HTML decks can use, in cycling order.
func listThemes(deps *Dependencies, assetPath string) error {
	themes, err := md2slides.Themes(assetPath)
	if err != nil {
		return err
	}
	for _, t := range themes {
		fmt.Fprintf(deps.Stdout, "%-12s accent %s\n", t.Name, t.Accent)
	}
	return nil
}
