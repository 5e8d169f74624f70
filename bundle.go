package mdminer

import "context"

// Bundler packages a Markdown document together with its remote images.
// Image references are fetched concurrently, renamed into a deterministic
// local scheme, and the Markdown is rewritten to point at the local copies.
// Individual fetch failures are tolerated: the reference is still rewritten
// and the missing file is simply absent from the archive.
type Bundler interface {
	// Bundle returns the bytes of an archive containing the rewritten
	// Markdown file at the top level and an images/ folder of fetched blobs.
	// Returns EINTERNAL if the archive cannot be assembled.
	Bundle(ctx context.Context, title, markdown string) ([]byte, error)
}

// MarkdownWriter persists conversion output to the local filesystem.
// Titles are sanitized before use as file names.
type MarkdownWriter interface {
	// WriteMarkdown writes markdown verbatim as "<title>.md" and returns
	// the written path.
	WriteMarkdown(title, markdown string) (string, error)

	// WriteArchive writes archive bytes as "<title>.zip" and returns the
	// written path.
	WriteArchive(title string, data []byte) (string, error)
}
