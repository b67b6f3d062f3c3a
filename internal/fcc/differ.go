package fcc

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

// FilteredLines runs the line filter over text and returns the lines that
// survive, in their original order. Useful on its own for diagnosing why a
// particular line was or wasn't considered content.
func FilteredLines(text string, ignoreDirectives bool) []string {
	return splitFiltered(text, filterOptions{ignoreDirectives: ignoreDirectives})
}

// DiffFiltered renders a unified diff between the raw input and the lines
// the parser actually kept, so a policy author can see at a glance which
// lines were dropped as blank, or (when ignoreDirectives is true) as
// directives.
func DiffFiltered(name, text string, ignoreDirectives bool) string {
	kept := FilteredLines(text, ignoreDirectives)
	filteredText := strings.Join(kept, "\n")
	if len(kept) > 0 {
		filteredText += "\n"
	}

	if filteredText == text {
		return ""
	}
	return udiff.Unified(name, name+" (filtered)", text, filteredText)
}
