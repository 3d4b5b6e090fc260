package matching

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Fold lower-cases s using Brazilian Portuguese casing rules
func Fold(s string) string {
	return cases.Lower(language.BrazilianPortuguese).String(s)
}

// ContainsFold reports whether query appears in name, ignoring case.
// An empty query matches every name.
func ContainsFold(name, query string) bool {
	return strings.Contains(Fold(name), Fold(query))
}
