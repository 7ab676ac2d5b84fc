package dochub

import "strings"

// UnclosedFence describes a fenced code block that is never closed.
type UnclosedFence struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// CheckFences reports a fence left open at the end of the markdown. Everything
// after such a fence is invisible to ParseSections.
func CheckFences(markdown string) []UnclosedFence {
	var (
		f      fence
		opened UnclosedFence
	)

	for i, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSuffix(line, "\r")
		wasOpen := f.open()
		f.step(line)
		if !wasOpen && f.open() {
			opened = UnclosedFence{Line: i + 1, Text: truncate(strings.TrimSpace(line), 40)}
		}
	}

	if f.open() {
		return []UnclosedFence{opened}
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
