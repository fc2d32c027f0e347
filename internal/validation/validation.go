package validation

import "strings"

// MaxQueryLength caps company name input. Wikipedia titles max out well
// below this.
const MaxQueryLength = 200

// NormalizeQuery trims surrounding whitespace from a company name query.
func NormalizeQuery(query string) string {
	return strings.TrimSpace(query)
}

// ValidateQuery checks that a normalized query is usable. Returns false
// with a user-facing message otherwise.
func ValidateQuery(query string) (bool, string) {
	if query == "" {
		return false, "Please enter a company name"
	}
	if len(query) > MaxQueryLength {
		return false, "Company name is too long"
	}
	return true, ""
}
