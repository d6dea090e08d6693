package main

import (
	"io"
	"os"
)

// Dependencies holds injectable dependencies for testability.
type Dependencies struct {
	Stdout io.Writer
	Stderr io.Writer

	// TuneProcs sets GOMAXPROCS from the container CPU quota.
	TuneProcs bool
}

// DefaultDeps returns production dependencies.
func DefaultDeps() *Dependencies {
	return &Dependencies{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		TuneProcs: true,
	}
}
