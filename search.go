package dochub

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"
)

// Search limits and scoring weights.
const (
	MinQueryLength = 2
	MinTokenLength = 2
	MaxResults     = 30

	scoreHeading       = 100
	scoreExactHeading  = 500
	scoreHeadingPrefix = 50
	scoreContent       = 10
	scoreOccurrence    = 2
	maxOccurrences     = 5
)

var levelBonus = map[int]int{1: 30, 2: 20, 3: 10}

// SearchResult represents a matching section and its score.
type SearchResult struct {
	Section *Section `json:"section"`
	Score   int      `json:"score"`
}

// SearchService provides search over an index of document sections.
type SearchService interface {
	// EnsureIndex builds the index on first use. Concurrent callers share
	// a single build; later calls return immediately.
	EnsureIndex(ctx context.Context) error

	// Ready reports whether the index has been built.
	Ready() bool

	// Search ranks indexed sections against the query.
	Search(ctx context.Context, query string) ([]*SearchResult, error)

	// FindSections returns the indexed sections of one document in order.
	// Returns ENOTFOUND if the document is not part of the index.
	FindSections(ctx context.Context, documentID string) ([]*Section, error)
}

// Tokenize splits a query into lower-cased terms, dropping terms shorter
// than MinTokenLength.
func Tokenize(query string) []string {
	var tokens []string
	for _, f := range strings.Fields(strings.ToLower(query)) {
		if utf8.RuneCountInString(f) >= MinTokenLength {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// normalizeQuery lower-cases the query and collapses whitespace.
func normalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

// Search scores every section against the query. A section matches only if
// every token occurs in its heading or content. Results are ordered by score
// (ties keep section order) and capped at MaxResults. Sections are not
// modified.
func Search(sections []*Section, query string) []*SearchResult {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return nil
	}

	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}
	normalized := normalizeQuery(query)

	var results []*SearchResult
	for _, section := range sections {
		if score, ok := scoreSection(section, tokens, normalized); ok {
			results = append(results, &SearchResult{Section: section, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}

// scoreSection returns the section score and whether all tokens matched.
func scoreSection(section *Section, tokens []string, normalized string) (int, bool) {
	heading := strings.ToLower(section.Heading)
	content := strings.ToLower(section.Content)

	score := 0
	for _, token := range tokens {
		inHeading := strings.Contains(heading, token)
		inContent := strings.Contains(content, token)
		if !inHeading && !inContent {
			return 0, false
		}

		if inHeading {
			score += scoreHeading
			if strings.HasPrefix(heading, token) {
				score += scoreHeadingPrefix
			}
		}
		if inContent {
			score += scoreContent
			score += scoreOccurrence * min(maxOccurrences, strings.Count(content, token))
		}
	}

	if heading == normalized {
		score += scoreExactHeading
	}
	score += levelBonus[section.Level]

	return score, true
}
