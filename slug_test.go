package dochub_test

import (
	"testing"

	"github.com/fwojciec/dochub"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips punctuation", "Getting Started!", "getting-started"},
		{"collapses runs", "API  --  Reference (v2.0)", "api-reference-v2-0"},
		{"trims hyphens", "  --Hello--  ", "hello"},
		{"drops non-ascii letters", "Café au lait", "caf-au-lait"},
		{"keeps digits", "Python 3.14", "python-3-14"},
		{"empty for symbols only", "!!! ???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, dochub.Slugify(tt.in))
		})
	}
}

func TestSlugger_Slug(t *testing.T) {
	t.Parallel()

	t.Run("suffixes repeated headings starting at 1", func(t *testing.T) {
		t.Parallel()

		var s dochub.Slugger

		assert.Equal(t, "getting-started", s.Slug("Getting Started!"))
		assert.Equal(t, "getting-started-1", s.Slug("Getting Started"))
		assert.Equal(t, "getting-started-2", s.Slug("getting started"))
	})

	t.Run("falls back for headings without alphanumerics", func(t *testing.T) {
		t.Parallel()

		var s dochub.Slugger

		assert.Equal(t, "section", s.Slug("???"))
		assert.Equal(t, "section-1", s.Slug("!!!"))
	})

	t.Run("skips suffixes already taken by literal headings", func(t *testing.T) {
		t.Parallel()

		var s dochub.Slugger

		assert.Equal(t, "a-1", s.Slug("A 1"))
		assert.Equal(t, "a", s.Slug("A"))
		assert.Equal(t, "a-2", s.Slug("A"))
	})

	t.Run("produces pairwise distinct slugs", func(t *testing.T) {
		t.Parallel()

		var s dochub.Slugger
		headings := []string{"Intro", "Intro", "Intro 1", "Intro-2", "intro", "", "?", "Section", "Section 1"}

		seen := make(map[string]bool)
		for _, h := range headings {
			slug := s.Slug(h)
			assert.False(t, seen[slug], "duplicate slug %q for heading %q", slug, h)
			seen[slug] = true
		}
	})

	t.Run("separate sluggers do not share state", func(t *testing.T) {
		t.Parallel()

		var a, b dochub.Slugger

		assert.Equal(t, "intro", a.Slug("Intro"))
		assert.Equal(t, "intro", b.Slug("Intro"))
	})
}
