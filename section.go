package dochub

import (
	"regexp"
	"strings"
)

// Section is the unit of indexing: one heading plus the prose that follows it
// up to the next heading.
type Section struct {
	Document *Document `json:"-"`
	Heading  string    `json:"heading"`
	Level    int       `json:"level"`
	Anchor   string    `json:"anchor"`
	Content  string    `json:"content"`
}

// URL returns the page link for the section.
func (s *Section) URL() string {
	if s.Document == nil {
		return "#" + s.Anchor
	}
	return s.Document.URL(s.Anchor)
}

var (
	headingRe = regexp.MustCompile(`^(#{1,4})[ \t]+(.+)`)

	blockquoteRe   = regexp.MustCompile(`^>\s?`)
	bulletRe       = regexp.MustCompile(`^\s*[-*+]\s`)
	numberedRe     = regexp.MustCompile(`^\s*\d+\.\s`)
	inlineFenceRe  = regexp.MustCompile("```.*?```")
	inlineCodeRe   = regexp.MustCompile("`[^`]+`")
	linkRe         = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	emphasisRe     = regexp.MustCompile(`[*_~]`)
	headingMarkRe  = regexp.MustCompile("[`*_]")
	residualMarkRe = regexp.MustCompile("[#`*_\\[\\]()>|]")
)

// fence tracks fenced code block state. Only a line using the same delimiter
// family as the opening line closes the block.
type fence struct {
	marker string
}

// step reports whether line is part of a fenced block (the fence lines
// included) and advances the state.
func (f *fence) step(line string) bool {
	trimmed := strings.TrimSpace(line)
	marker := fenceMarker(trimmed)

	if marker != "" {
		if f.marker == "" {
			f.marker = marker
		} else if f.marker == marker {
			f.marker = ""
		}
		return true
	}

	return f.marker != ""
}

func (f *fence) open() bool {
	return f.marker != ""
}

func fenceMarker(trimmed string) string {
	switch {
	case strings.HasPrefix(trimmed, "```"):
		return "```"
	case strings.HasPrefix(trimmed, "~~~"):
		return "~~~"
	}
	return ""
}

// CleanHeading strips emphasis markers from heading text.
func CleanHeading(text string) string {
	return strings.TrimSpace(headingMarkRe.ReplaceAllString(text, ""))
}

// cleanLine strips markdown syntax from a single prose line.
func cleanLine(line string) string {
	line = blockquoteRe.ReplaceAllString(line, "")
	line = bulletRe.ReplaceAllString(line, "")
	line = numberedRe.ReplaceAllString(line, "")
	line = inlineFenceRe.ReplaceAllString(line, "")
	line = inlineCodeRe.ReplaceAllString(line, "")
	line = linkRe.ReplaceAllString(line, "$1")
	line = emphasisRe.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}

// joinContent joins buffered prose lines into normalized section content.
func joinContent(lines []string) string {
	content := residualMarkRe.ReplaceAllString(strings.Join(lines, " "), " ")
	return strings.Join(strings.Fields(content), " ")
}

// ParseSections splits markdown into heading-scoped sections owned by doc.
// Headings are levels 1-4; fenced code never contributes headings or
// content; text before the first heading is discarded. Any input parses.
func ParseSections(markdown string, doc *Document) []*Section {
	var (
		sections []*Section
		current  *Section
		buffer   []string
		fences   fence
		slugger  Slugger
	)

	flush := func() {
		if current == nil {
			return
		}
		current.Content = joinContent(buffer)
		sections = append(sections, current)
		buffer = nil
	}

	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if fences.step(line) {
			continue
		}

		if m := headingRe.FindStringSubmatch(line); m != nil {
			flush()
			heading := CleanHeading(m[2])
			current = &Section{
				Document: doc,
				Heading:  heading,
				Level:    len(m[1]),
				Anchor:   slugger.Slug(heading),
			}
			continue
		}

		if current == nil {
			continue
		}
		if cleaned := cleanLine(line); cleaned != "" {
			buffer = append(buffer, cleaned)
		}
	}
	flush()

	return sections
}
