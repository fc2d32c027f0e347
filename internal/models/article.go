package models

// Article is a resolved encyclopedia article for a company.
// Created per request and discarded after the response is rendered.
type Article struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	URL     string `json:"url"`
}

// Excerpt returns the first n runes of the summary for display.
func (a *Article) Excerpt(n int) string {
	runes := []rune(a.Summary)
	if len(runes) <= n {
		return a.Summary
	}
	return string(runes[:n]) + "…"
}
