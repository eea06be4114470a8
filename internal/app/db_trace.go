package app

import (
	"strings"
	"unicode/utf8"
)

const maxTracedQueryLength = 512

// formatDBQueryForTrace renders a query as a span name attribute: one line,
// insert column and value lists folded to "(..)" so wide event inserts keep
// the table and RETURNING clause readable, and cut on a rune boundary.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if normalized == "" {
		return normalized
	}
	if strings.HasPrefix(strings.ToUpper(normalized), "INSERT INTO ") {
		normalized = foldInsertLists(normalized)
	}
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	cut := maxTracedQueryLength
	for cut > 0 && !utf8.RuneStart(normalized[cut]) {
		cut--
	}
	return normalized[:cut] + "..."
}

// foldInsertLists replaces each top-level parenthesised list with "(..)".
func foldInsertLists(query string) string {
	var b strings.Builder
	b.Grow(len(query))
	depth := 0
	for _, r := range query {
		switch {
		case r == '(':
			if depth == 0 {
				b.WriteString("(..)")
			}
			depth++
		case r == ')' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
