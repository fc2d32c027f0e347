package models

// Lookup outcome constants, used as metric label values.
const (
	OutcomeResolved    = "resolved"
	OutcomeNotFound    = "not_found"
	OutcomeUnavailable = "unavailable"
)

// Verdict is the classifier's output for a single text: whether the text
// shows private-equity ownership signals, plus the matched phrases in order
// of first occurrence. A Verdict is always derivable from the text alone.
type Verdict struct {
	PEOwned  bool     `json:"pe_owned"`
	Evidence []string `json:"evidence,omitempty"`
}

// Label returns a short human-readable verdict label.
func (v Verdict) Label() string {
	if v.PEOwned {
		return "Likely PE-owned/backed"
	}
	return "No clear PE indicators"
}
