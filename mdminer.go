// Package mdminer extracts the readable content of an article from a
// rendered web page and converts it into a portable Markdown document,
// optionally bundling referenced images into a downloadable archive.
//
// Extraction is driven by site adapters: one strategy per supported site
// (juejin, zhihu, github, plus a generic fallback), each implementing the
// same two-operation contract against that site's DOM shape. Conversion is
// performed by a rule-based HTML-to-Markdown engine where site-specific
// override rules take precedence over generic element handling.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, zip/).
package mdminer
