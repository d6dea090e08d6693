package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/maruel/natural"

	"github.com/alnah/go-md2slides/internal/deck"
)

// expandInputs turns the positional arguments into deck paths.
//
//   - A directory yields the deck files it contains, walking subdirectories
//     and skipping hidden ones.
//   - A glob pattern that is not itself a file ("talks/**/*.md") yields the
//     matching deck files, for shells that do not expand "**".
//   - Anything else is kept as given so that a missing file or a bad
//     extension is reported for it.
//
// Paths found in one argument are in natural order ("part2" before
// "part10"). sawDir reports whether any argument was a directory or pattern.
func expandInputs(args []string) (paths []string, sawDir bool, err error) {
	for _, arg := range args {
		info, statErr := os.Stat(arg)
		switch {
		case statErr == nil && info.IsDir():
			found, err := discoverDecks(arg)
			if err != nil {
				return nil, false, err
			}
			paths = append(paths, found...)
			sawDir = true
		case statErr != nil && isGlob(arg):
			found, err := globDecks(arg)
			if err != nil {
				return nil, false, err
			}
			paths = append(paths, found...)
			sawDir = true
		default:
			paths = append(paths, arg)
		}
	}
	return paths, sawDir, nil
}

// discoverDecks returns the deck files under dir.
func discoverDecks(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if isDeckFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	sort.Sort(natural.StringSlice(paths))
	return paths, err
}

// globDecks returns the deck files matching pattern.
func globDecks(pattern string) ([]string, error) {
	if !doublestar.ValidatePathPattern(pattern) {
		return nil, fmt.Errorf("%w: %q", doublestar.ErrBadPattern, pattern)
	}
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	paths := matches[:0]
	for _, m := range matches {
		if isDeckFile(m) {
			paths = append(paths, m)
		}
	}
	sort.Sort(natural.StringSlice(paths))
	return paths, nil
}

func isDeckFile(path string) bool {
	_, err := deck.KindForPath(path)
	return err == nil
}

func isGlob(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}
