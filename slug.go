package dochub

import (
	"strconv"
	"strings"
)

// FallbackSlug is used for headings without any alphanumeric characters.
const FallbackSlug = "section"

// Slugify converts text into a URL fragment: lower-cased, every run of
// characters outside [a-z0-9] replaced by a single hyphen, no leading or
// trailing hyphens.
func Slugify(text string) string {
	var sb strings.Builder
	pending := false

	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(r)
			pending = false
			continue
		}
		pending = true
	}

	return sb.String()
}

// Slugger assigns heading anchors for a single document. Both the section
// parser and the renderer use it so that result links resolve to real ids.
// The zero value is ready to use. A Slugger is not safe for concurrent use.
type Slugger struct {
	counts map[string]int
	used   map[string]bool
}

// Slug returns a unique anchor for the heading text. Repeats of a base get
// -1, -2, ... suffixes in order of appearance.
func (s *Slugger) Slug(text string) string {
	if s.counts == nil {
		s.counts = make(map[string]int)
		s.used = make(map[string]bool)
	}

	base := Slugify(text)
	if base == "" {
		base = FallbackSlug
	}

	slug := base
	if _, seen := s.counts[base]; !seen {
		s.counts[base] = 0
	}
	for s.used[slug] {
		s.counts[base]++
		slug = base + "-" + strconv.Itoa(s.counts[base])
	}

	s.used[slug] = true
	return slug
}
