// Package fs persists conversion outputs to the local filesystem.
package fs

import (
	"os"
	"path/filepath"

	mdminer "github.com/HaoQiuji-Pavel/juejin-md-miner"
)

// Ensure Writer implements mdminer.MarkdownWriter at compile time.
var _ mdminer.MarkdownWriter = (*Writer)(nil)

// Writer saves Markdown documents and zip archives under a base directory.
// File names are derived from the article title with filesystem-unsafe
// characters replaced.
type Writer struct {
	baseDir string
}

// NewWriter creates a Writer rooted at baseDir. The directory is created
// on first write if it does not exist.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteMarkdown saves the Markdown document as <title>.md and returns the
// path it was written to.
func (w *Writer) WriteMarkdown(title, markdown string) (string, error) {
	return w.write(mdminer.SanitizeTitle(title)+".md", []byte(markdown))
}

// WriteArchive saves the zip archive as <title>.zip and returns the path
// it was written to.
func (w *Writer) WriteArchive(title string, data []byte) (string, error) {
	return w.write(mdminer.SanitizeTitle(title)+".zip", data)
}

func (w *Writer) write(name string, data []byte) (string, error) {
	if err := os.MkdirAll(w.baseDir, 0o755); err != nil {
		return "", mdminer.Errorf(mdminer.EINTERNAL, "failed to create output directory %s: %v", w.baseDir, err)
	}

	path := filepath.Join(w.baseDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", mdminer.Errorf(mdminer.EINTERNAL, "failed to write %s: %v", path, err)
	}
	return path, nil
}
