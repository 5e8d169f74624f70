package mdminer

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input is the inner markup of an article element as produced
	// by an Adapter. Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}
