package models

import "github.com/google/uuid"

// Peer is a related company that passed the ownership filter.
type Peer struct {
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Excerpt string  `json:"excerpt,omitempty"`
	Verdict Verdict `json:"verdict"`
}

// Result aggregates one complete interaction: the query, the resolved
// article, its verdict, and the peers whose verdicts came back negative.
// Results live only for the duration of one request; nothing is persisted.
type Result struct {
	ID      uuid.UUID `json:"id"`
	Query   string    `json:"query"`
	Article *Article  `json:"article"`
	Verdict Verdict   `json:"verdict"`
	Peers   []Peer    `json:"peers"`
}
