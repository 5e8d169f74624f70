package mdminer

import (
	"encoding/hex"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

var extensionPattern = regexp.MustCompile(`\.([a-zA-Z0-9]+)$`)

// ResolveURL resolves an image reference against the page it appeared on.
// Absolute URLs pass through unchanged; root-relative references are
// resolved against the page origin; relative references are resolved
// against the directory of the page path. Unparseable input is returned
// unchanged.
func ResolveURL(pageURL, ref string) string {
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if r.IsAbs() {
		return ref
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return ref
	}
	return base.ResolveReference(r).String()
}

// DecodeProxyURL decodes a content-proxy URL of the form
// scheme://proxy-host/<version>/<hex> back into the original image URL.
// The hex path segment is decoded and accepted only if it re-parses as an
// absolute http(s) URL; any decode failure returns the input unchanged.
func DecodeProxyURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	var segments []string
	for _, s := range strings.Split(u.Path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	if len(segments) < 2 {
		return rawURL
	}

	decoded, err := hex.DecodeString(segments[1])
	if err != nil || !utf8.Valid(decoded) {
		return rawURL
	}

	target := string(decoded)
	t, err := url.Parse(target)
	if err != nil || (t.Scheme != "http" && t.Scheme != "https") {
		return rawURL
	}
	return target
}

// ImageExtension derives a local file extension from an image URL.
// The extension is read from the URL path suffix (query stripped,
// lowercased); the lossy awebp and generic image suffixes are canonicalized
// to webp, and jpg is the default when no suffix is present.
func ImageExtension(rawURL string) string {
	clean := rawURL
	if i := strings.Index(clean, "?"); i >= 0 {
		clean = clean[:i]
	}

	m := extensionPattern.FindStringSubmatch(clean)
	if m == nil {
		return "jpg"
	}

	switch ext := strings.ToLower(m[1]); ext {
	case "awebp", "image":
		return "webp"
	default:
		return ext
	}
}
