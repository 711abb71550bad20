// Package kamar derives lightweight SEO content suggestions for a keyword
// from a handful of web search results: a page title, a meta description,
// an article outline and frequency-ranked term lists.
//
// This package contains domain types, interfaces and the pure text pipeline
// following Ben Johnson's Standard Package Layout. Implementations of the
// network collaborators live in subdirectories named after their primary
// dependency (e.g., google/, trafilatura/, sqlite/).
package kamar
