package search

import (
	"strings"

	"golang.org/x/text/cases"

	"shopchannel/search/internal/domain"
)

// MatchesCategory reports whether a raw category field satisfies the
// requested filter token. The token is compared case-insensitively against
// every level of every path; only exact level equality counts, never
// substring matches. An empty or whitespace-only token matches everything.
func MatchesCategory(rawCategory, filterToken string) bool {
	token := strings.TrimSpace(filterToken)
	if token == "" {
		return true
	}

	// Unicode case folding so the comparison holds for non-Latin scripts.
	fold := cases.Fold()
	folded := fold.String(token)

	for _, path := range domain.CategoryPaths(rawCategory) {
		for _, level := range path {
			if fold.String(level) == folded {
				return true
			}
		}
	}

	return false
}
