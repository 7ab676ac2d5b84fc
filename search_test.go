package dochub_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/dochub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"button", "slider"}, dochub.Tokenize("  Button a SLIDER "))
	assert.Empty(t, dochub.Tokenize("a b c"))
	assert.Equal(t, []string{"éé"}, dochub.Tokenize("ÉÉ"))
}

func TestSearch(t *testing.T) {
	t.Parallel()

	doc := &dochub.Document{ID: "ui", Title: "UI", PagePath: "pages/ui.html"}

	t.Run("requires every token to match", func(t *testing.T) {
		t.Parallel()

		widgets := &dochub.Section{Document: doc, Heading: "Widgets", Level: 2, Content: "buttons and sliders"}
		colors := &dochub.Section{Document: doc, Heading: "Colors", Level: 2, Content: "buttons only"}

		results := dochub.Search([]*dochub.Section{widgets, colors}, "button slider")

		require.Len(t, results, 1)
		assert.Same(t, widgets, results[0].Section)
	})

	t.Run("ranks heading matches above content matches", func(t *testing.T) {
		t.Parallel()

		inContent := &dochub.Section{Document: doc, Heading: "Overview", Level: 2, Content: "the grid layout places widgets"}
		inHeading := &dochub.Section{Document: doc, Heading: "Grid Layout", Level: 2, Content: "places widgets"}

		results := dochub.Search([]*dochub.Section{inContent, inHeading}, "grid layout")

		require.Len(t, results, 2)
		assert.Same(t, inHeading, results[0].Section)
		assert.Greater(t, results[0].Score, results[1].Score)
	})

	t.Run("scores components once per section", func(t *testing.T) {
		t.Parallel()

		s := &dochub.Section{Document: doc, Heading: "Grid Layout", Level: 1, Content: "grid grid"}

		results := dochub.Search([]*dochub.Section{s}, "grid layout")

		require.Len(t, results, 1)
		// grid: heading 100 + prefix 50 + content 10 + 2*2 occurrences
		// layout: heading 100
		// exact heading 500, level one 30
		assert.Equal(t, 164+100+500+30, results[0].Score)
	})

	t.Run("caps occurrence bonus", func(t *testing.T) {
		t.Parallel()

		s := &dochub.Section{Document: doc, Heading: "Misc", Level: 4, Content: strings.Repeat("tab ", 20)}

		results := dochub.Search([]*dochub.Section{s}, "tab")

		require.Len(t, results, 1)
		assert.Equal(t, 10+2*5, results[0].Score)
	})

	t.Run("matches case-insensitively", func(t *testing.T) {
		t.Parallel()

		s := &dochub.Section{Document: doc, Heading: "CustomTkinter", Level: 1}

		results := dochub.Search([]*dochub.Section{s}, "CUSTOMTK")

		require.Len(t, results, 1)
	})

	t.Run("returns nothing for short queries", func(t *testing.T) {
		t.Parallel()

		s := &dochub.Section{Document: doc, Heading: "a b c", Level: 1}

		assert.Empty(t, dochub.Search([]*dochub.Section{s}, " a "))
		assert.Empty(t, dochub.Search([]*dochub.Section{s}, "a b"))
		assert.Empty(t, dochub.Search([]*dochub.Section{s}, ""))
	})

	t.Run("returns nothing when no section matches", func(t *testing.T) {
		t.Parallel()

		s := &dochub.Section{Document: doc, Heading: "Widgets", Level: 1, Content: "buttons"}

		assert.Empty(t, dochub.Search([]*dochub.Section{s}, "zebra"))
	})

	t.Run("truncates to the top results", func(t *testing.T) {
		t.Parallel()

		var sections []*dochub.Section
		for i := range 40 {
			sections = append(sections, &dochub.Section{
				Document: doc,
				Heading:  fmt.Sprintf("Item %d", i),
				Level:    2,
				Content:  "shared term",
			})
		}

		results := dochub.Search(sections, "shared")

		require.Len(t, results, dochub.MaxResults)
		for i, r := range results {
			assert.Same(t, sections[i], r.Section, "ties keep index order")
		}
	})

	t.Run("does not modify sections", func(t *testing.T) {
		t.Parallel()

		s := &dochub.Section{Document: doc, Heading: "Widgets", Level: 1, Content: "Buttons"}
		before := *s

		dochub.Search([]*dochub.Section{s}, "buttons")

		assert.Equal(t, before, *s)
	})
}
