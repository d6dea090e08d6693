package md2slides

import "github.com/alnah/go-md2slides/internal/fileutil"

// Save writes doc to filename, appending the format's extension when
// filename lacks it, and returns the path written. Parent directories are
// created as needed. Failures wrap ErrWriteOutput.
func Save(doc *Document, filename string) (string, error) {
	return fileutil.Save(doc.Content, filename, doc.Format.Extension())
}
