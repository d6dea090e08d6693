// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+traverse
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrFilenameEmpty          = errors.New("filename cannot be empty")
	ErrWriteOutput            = errors.New("failed to write output")
)

// ValidateExtension checks that the extension (without leading dot) is safe
// to append to a file name.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// WithExtension appends "."+extension unless filename already ends with it.
// The comparison ignores case, so "Deck.HTML" is left alone.
//
// Examples:
//   - ("talk", "md") -> "talk.md"
//   - ("talk.md", "md") -> "talk.md"
//   - ("talk.md", "html") -> "talk.md.html"
func WithExtension(filename, extension string) string {
	if strings.EqualFold(filepath.Ext(filename), "."+extension) {
		return filename
	}
	return filename + "." + extension
}

// Save writes content to filename, appending extension when missing and
// creating parent directories. Returns the path actually written.
func Save(content, filename, extension string) (string, error) {
	if err := ValidateExtension(extension); err != nil {
		return "", err
	}
	if strings.TrimSpace(filename) == "" {
		return "", ErrFilenameEmpty
	}

	path := WithExtension(filename, extension)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return "", fmt.Errorf("%w: creating directory %s: %v", ErrWriteOutput, dir, err)
		}
	}

	if err := os.WriteFile(path, []byte(content), filePermissions); err != nil { // #nosec G306 -- output is meant to be shared
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	return path, nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
