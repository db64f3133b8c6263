// Package filter narrows a fetched collection by a free-text term and a
// categorical selector.
package filter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// All is the category selector that matches every item. Any other selector,
// the empty one included, matches only items in exactly that category.
const All = "all"

type Criteria struct {
	Term     string
	Category string
}

// Active reports whether the criteria narrow anything.
func (c Criteria) Active() bool {
	return strings.TrimSpace(c.Term) != "" || c.Category != All
}

// Apply returns the items whose text fields contain the term (lower-cased)
// and whose category equals the selector. The input slice is not modified
// and relative order is kept.
func Apply[T any](items []T, c Criteria, text func(T) []string, category func(T) string) []T {
	out := make([]T, 0, len(items))

	// A Caser carries state, so each call gets its own.
	lower := cases.Lower(language.Und)
	term := lower.String(c.Term)

	for _, item := range items {
		if !matchesCategory(category(item), c.Category) {
			continue
		}
		if !matchesTerm(lower, term, text(item)) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesCategory(value, selector string) bool {
	return selector == All || value == selector
}

func matchesTerm(lower cases.Caser, term string, fields []string) bool {
	if term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(lower.String(f), term) {
			return true
		}
	}
	return false
}
