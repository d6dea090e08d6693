package main

import (
	"reflect"
	"testing"

	"github.com/alnah/go-md2slides/internal/config"
)

// ---------------------------------------------------------------------------
// TestParseFlags - Flag parsing
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	f, args, err := parseFlags([]string{
		"-f", "html", "-o", "out", "--theme", "dark", "--engine", "goldmark",
		"--highlight", "monokai", "-w", "3", "--max-bullets", "5", "--no-split",
		"--stats", "-v", "a.md", "b.yaml",
	})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if !reflect.DeepEqual(args, []string{"a.md", "b.yaml"}) {
		t.Errorf("args = %v", args)
	}
	if f.format != "html" || f.output != "out" || !f.stats {
		t.Errorf("io flags = %+v", f)
	}
	want := renderFlags{theme: "dark", engine: "goldmark", highlight: "monokai", workers: 3}
	if f.render != want {
		t.Errorf("render = %+v, want %+v", f.render, want)
	}
	if f.split.maxBullets != 5 || !f.split.disabled {
		t.Errorf("split = %+v", f.split)
	}
	if !f.common.verbose {
		t.Error("verbose not set")
	}
}

func TestParseFlags_Unknown(t *testing.T) {
	t.Parallel()

	if _, _, err := parseFlags([]string{"--pdf"}); err == nil {
		t.Error("parseFlags(--pdf) should fail")
	}
}

// ---------------------------------------------------------------------------
// TestMergeFlags - Flags over env and file
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	t.Run("set flags win", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Render.Theme = "light"
		f := &cliFlags{format: "html", render: renderFlags{theme: "dark", workers: 2}, split: splitFlags{maxChars: 100, disabled: true}}
		if err := mergeFlags(f, cfg); err != nil {
			t.Fatalf("mergeFlags() error = %v", err)
		}

		if cfg.Output.Format != "html" || cfg.Render.Theme != "dark" || cfg.Render.Workers != 2 {
			t.Errorf("flags not merged: %+v", cfg)
		}
		if cfg.Split.MaxChars != 100 || cfg.Split.Enabled {
			t.Errorf("split = %+v", cfg.Split)
		}
		if cfg.Split.MaxBullets != config.DefaultConfig().Split.MaxBullets {
			t.Errorf("unset max-bullets changed to %d", cfg.Split.MaxBullets)
		}
	})

	t.Run("zero flags keep config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Render.Theme = "light"
		if err := mergeFlags(&cliFlags{}, cfg); err != nil {
			t.Fatalf("mergeFlags() error = %v", err)
		}

		if !reflect.DeepEqual(cfg.Split, config.DefaultConfig().Split) || cfg.Render.Theme != "light" {
			t.Errorf("config changed: %+v", cfg)
		}
	})
}
