// Package dochub provides a small documentation hub: a fixed set of long-form
// markdown documents indexed into heading-scoped sections and searched with
// ranked, highlighted, snippet-bearing results.
//
// This package contains domain types, the parsing and ranking core, and the
// interfaces implemented elsewhere, following Ben Johnson's Standard Package
// Layout. Implementations live in subdirectories named after their primary
// dependency (e.g., sqlite/, goldmark/, htmltomarkdown/).
package dochub
