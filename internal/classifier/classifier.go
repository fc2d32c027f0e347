// Package classifier scans article text for private-equity ownership
// signals. Classification is a pure function of the input text and the
// configured signal set: no network, no state, no errors.
package classifier

import (
	"regexp"
	"sort"
	"strings"

	"pecheck/internal/config"
	"pecheck/internal/models"
)

type compiledSignal struct {
	label   string
	pattern *regexp.Regexp
}

// Classifier holds a compiled signal set.
type Classifier struct {
	signals []compiledSignal
	firms   []string
}

// New compiles a signal set into a Classifier. The set must have been
// validated; invalid patterns are skipped.
func New(set config.SignalSet) *Classifier {
	c := &Classifier{}
	for _, sig := range set.Signals {
		re, err := regexp.Compile(`(?i)` + sig.Pattern)
		if err != nil {
			continue
		}
		c.signals = append(c.signals, compiledSignal{label: sig.Label, pattern: re})
	}
	for _, firm := range set.Firms {
		c.firms = append(c.firms, strings.ToLower(firm))
	}
	return c
}

// Classify returns the verdict for a text. Absence of any signal means a
// negative verdict; the heuristics only detect positive indicators, so
// false negatives are expected. Evidence lists the matched canonical
// phrases ordered by first occurrence in the text.
func (c *Classifier) Classify(text string) models.Verdict {
	if text == "" {
		return models.Verdict{}
	}

	type match struct {
		index    int
		evidence string
	}
	var matches []match

	for _, sig := range c.signals {
		if loc := sig.pattern.FindStringIndex(text); loc != nil {
			matches = append(matches, match{index: loc[0], evidence: sig.label})
		}
	}

	lower := strings.ToLower(text)
	for _, firm := range c.firms {
		if idx := strings.Index(lower, firm); idx >= 0 {
			matches = append(matches, match{index: idx, evidence: firm})
		}
	}

	if len(matches) == 0 {
		return models.Verdict{}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].index < matches[j].index
	})

	evidence := make([]string, 0, len(matches))
	for _, m := range matches {
		evidence = append(evidence, m.evidence)
	}

	return models.Verdict{PEOwned: true, Evidence: evidence}
}
