package dochub

import (
	"strings"
)

// WordsPerMinute is the reading speed used by ReadingTime.
const WordsPerMinute = 220

// TOCEntry is a table of contents link to a section heading.
type TOCEntry struct {
	Heading  string      `json:"heading"`
	Level    int         `json:"level"`
	Anchor   string      `json:"anchor"`
	Children []*TOCEntry `json:"children,omitempty"`
}

// BuildTOC returns the table of contents for the sections of one document.
// Level 4 entries are grouped under the preceding level 3 entry.
func BuildTOC(sections []*Section) []*TOCEntry {
	var entries []*TOCEntry
	var group *TOCEntry

	for _, s := range sections {
		entry := &TOCEntry{Heading: s.Heading, Level: s.Level, Anchor: s.Anchor}

		switch {
		case s.Level == 4 && group != nil:
			group.Children = append(group.Children, entry)
			continue
		case s.Level == 3:
			group = entry
		case s.Level < 3:
			group = nil
		}
		entries = append(entries, entry)
	}

	return entries
}

// FilterTOC returns the entries at any depth whose heading contains q,
// case-insensitively, as a flat list. An empty q returns entries unchanged.
func FilterTOC(entries []*TOCEntry, q string) []*TOCEntry {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return entries
	}

	var out []*TOCEntry
	var walk func([]*TOCEntry)
	walk = func(es []*TOCEntry) {
		for _, e := range es {
			if strings.Contains(strings.ToLower(e.Heading), q) {
				out = append(out, &TOCEntry{Heading: e.Heading, Level: e.Level, Anchor: e.Anchor})
			}
			walk(e.Children)
		}
	}
	walk(entries)

	return out
}

// ReadingTime estimates minutes needed to read the sections, at least one.
func ReadingTime(sections []*Section) int {
	words := 0
	for _, s := range sections {
		words += len(strings.Fields(s.Heading)) + len(strings.Fields(s.Content))
	}
	return max(1, (words+WordsPerMinute-1)/WordsPerMinute)
}
