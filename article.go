package mdminer

import "strings"

// Page is a read-only snapshot of a rendered browser page: the final URL
// after redirects and the rendered HTML. Adapters never mutate it.
type Page struct {
	URL  string
	HTML string
}

// ArticleMetadata holds the basic information of an article. All fields are
// trimmed of leading/trailing whitespace and newlines. Fields may be empty
// when not discoverable, except where an adapter documents them as required.
type ArticleMetadata struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Date   string `json:"date"`
}

// ConversionResult holds the outcome of converting an article to Markdown.
// Title is trimming-normalized; Markdown is the fully rendered document
// body, independent of metadata.
type ConversionResult struct {
	Title    string `json:"title"`
	Markdown string `json:"markdown"`
}

// Site identifies a supported extraction target. The set is closed:
// unknown identifiers are a handled error, not a crash.
type Site string

// Supported sites.
const (
	SiteJuejin Site = "juejin"
	SiteZhihu  Site = "zhihu"
	SiteGithub Site = "github"
	SiteOther  Site = "other"
)

// DefaultSite is used when a request does not specify a site.
const DefaultSite = SiteJuejin

// Adapter is a site-specific extraction strategy. Each implementation
// operates over a read-only Page snapshot of one site's DOM shape.
type Adapter interface {
	// Site returns the identifier this adapter handles.
	Site() Site

	// ExtractMetadata extracts the article's basic information.
	// Returns ENOTFOUND if a required element or field is absent.
	ExtractMetadata(page *Page) (*ArticleMetadata, error)

	// Convert produces the article title and Markdown body.
	// Returns ENOTFOUND if required content is absent.
	Convert(page *Page) (*ConversionResult, error)
}

// AdapterRegistry resolves site identifiers to adapters.
type AdapterRegistry interface {
	// Resolve returns the adapter for a site.
	// Returns ENOTSUPPORTED for unknown sites; it never panics.
	Resolve(site Site) (Adapter, error)

	// List returns all registered sites.
	List() []Site
}

// TrimText normalizes extracted text by removing leading and trailing
// whitespace and newlines. Trimming is idempotent.
func TrimText(s string) string {
	return strings.TrimSpace(s)
}

// SanitizeTitle replaces filesystem-unsafe characters in a title with
// underscores so it can be used as a file name.
func SanitizeTitle(title string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, title)
}
