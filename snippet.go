package dochub

import (
	"html"
	"sort"
	"strings"
	"unicode"
)

// Snippet settings.
const (
	SnippetLength = 140
	Ellipsis      = "…"

	snippetLead = 40
)

// Hit is a search result prepared for display. Heading and Snippet are HTML
// fragments: the text is escaped and query terms are wrapped in <mark>.
type Hit struct {
	DocumentID    string `json:"documentId"`
	DocumentTitle string `json:"documentTitle"`
	Color         string `json:"color,omitempty"`
	URL           string `json:"url"`
	Anchor        string `json:"anchor"`
	Level         int    `json:"level"`
	Score         int    `json:"score"`
	Heading       string `json:"heading"`
	Snippet       string `json:"snippet"`
}

// HitGroup holds the hits of one document.
type HitGroup struct {
	Document *Document `json:"document"`
	Hits     []*Hit    `json:"hits"`
}

// NewHit formats a search result for display.
func NewHit(result *SearchResult, query string) *Hit {
	s := result.Section
	hit := &Hit{
		URL:     s.URL(),
		Anchor:  s.Anchor,
		Level:   s.Level,
		Score:   result.Score,
		Heading: Highlight(s.Heading, query),
		Snippet: Highlight(Snippet(s.Content, query, SnippetLength), query),
	}
	if s.Document != nil {
		hit.DocumentID = s.Document.ID
		hit.DocumentTitle = s.Document.Title
		hit.Color = s.Document.Color
	}
	return hit
}

// GroupResults formats results and groups them by document, keeping the
// order in which documents first appear in the ranking.
func GroupResults(results []*SearchResult, query string) []*HitGroup {
	var groups []*HitGroup
	byDoc := make(map[*Document]*HitGroup)

	for _, r := range results {
		g, ok := byDoc[r.Section.Document]
		if !ok {
			g = &HitGroup{Document: r.Section.Document}
			byDoc[r.Section.Document] = g
			groups = append(groups, g)
		}
		g.Hits = append(g.Hits, NewHit(r, query))
	}

	return groups
}

// queryTerms returns the terms to locate and highlight. A query without
// usable tokens falls back to the whole trimmed query.
func queryTerms(query string) []string {
	if tokens := Tokenize(query); len(tokens) > 0 {
		return tokens
	}
	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		return []string{q}
	}
	return nil
}

// Snippet returns an excerpt of content of at most maxLen runes (plus
// ellipsis markers) starting shortly before the first occurrence of the
// first query term found in content. Without a match the excerpt is the
// beginning of content. The result is plain text.
func Snippet(content, query string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = SnippetLength
	}
	runes := []rune(content)
	lower := lowerRunes(runes)

	idx := -1
	for _, term := range queryTerms(query) {
		if i := indexRunes(lower, lowerRunes([]rune(term))); i >= 0 {
			idx = i
			break
		}
	}

	if idx < 0 {
		if len(runes) <= maxLen {
			return content
		}
		return string(runes[:maxLen]) + Ellipsis
	}

	lead := snippetLead
	if lead >= maxLen {
		lead = maxLen / 2
	}
	start := max(0, idx-lead)
	end := min(len(runes), start+maxLen)

	var sb strings.Builder
	if start > 0 {
		sb.WriteString(Ellipsis)
	}
	sb.WriteString(string(runes[start:end]))
	if end < len(runes) {
		sb.WriteString(Ellipsis)
	}
	return sb.String()
}

type span struct {
	start, end int
}

// Highlight HTML-escapes text and wraps every case-insensitive occurrence of
// each query term in <mark>. Terms are matched as literals on the raw text,
// so a mark never lands inside an escaped entity.
func Highlight(text, query string) string {
	runes := []rune(text)
	lower := lowerRunes(runes)

	var spans []span
	for _, term := range queryTerms(query) {
		t := lowerRunes([]rune(term))
		for i := 0; i < len(lower); {
			j := indexRunes(lower[i:], t)
			if j < 0 {
				break
			}
			spans = append(spans, span{i + j, i + j + len(t)})
			i += j + len(t)
		}
	}

	if len(spans) == 0 {
		return html.EscapeString(text)
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.start <= last.end {
			last.end = max(last.end, s.end)
			continue
		}
		merged = append(merged, s)
	}

	var sb strings.Builder
	pos := 0
	for _, s := range merged {
		sb.WriteString(html.EscapeString(string(runes[pos:s.start])))
		sb.WriteString("<mark>")
		sb.WriteString(html.EscapeString(string(runes[s.start:s.end])))
		sb.WriteString("</mark>")
		pos = s.end
	}
	sb.WriteString(html.EscapeString(string(runes[pos:])))
	return sb.String()
}

func lowerRunes(runes []rune) []rune {
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[i] = unicode.ToLower(r)
	}
	return out
}

// indexRunes returns the index of the first occurrence of sub in s, or -1.
func indexRunes(s, sub []rune) int {
	if len(sub) == 0 {
		return -1
	}
	for i := 0; i+len(sub) <= len(s); i++ {
		match := true
		for j := range sub {
			if s[i+j] != sub[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
