package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"booktrail/internal/search"
)

const (
	isbnResultLimit  = 10
	titleResultLimit = 20
)

var (
	nonWordRuns   = regexp.MustCompile(`[^\w\s]+`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// BuildQuery turns a raw search input into a Google Books query term.
// ISBN input becomes an identifier-scoped term; anything else becomes a
// quoted, whitespace-collapsed title term.
func BuildQuery(input string) string {
	if search.Classify(input) == search.KindISBN {
		return fmt.Sprintf("isbn:%s", search.CleanISBN(input))
	}

	cleaned := strings.TrimSpace(input)
	cleaned = nonWordRuns.ReplaceAllString(cleaned, " ")
	cleaned = whitespaceRun.ReplaceAllString(cleaned, " ")
	return fmt.Sprintf(`intitle:"%s"`, strings.TrimSpace(cleaned))
}

// ResultLimit returns how many results to request for a search kind.
// Title searches need more candidates for the user to disambiguate.
func ResultLimit(kind search.Kind) int {
	if kind == search.KindISBN {
		return isbnResultLimit
	}
	return titleResultLimit
}
