package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Signal is one heuristic ownership indicator: a case-insensitive pattern
// and the canonical label reported as evidence when it matches.
type Signal struct {
	Label   string `yaml:"label"`
	Pattern string `yaml:"pattern"`
}

// SignalSet is the enumerated heuristic configuration the classifier runs
// against. Keeping it as explicit data (rather than scattered literals)
// lets the set be tested exhaustively and extended without touching the
// matching code.
type SignalSet struct {
	Signals []Signal `yaml:"signals"`
	// Firms are names of known private-equity firms, matched as plain
	// case-insensitive substrings.
	Firms []string `yaml:"firms"`
}

// DefaultSignals returns the built-in signal set.
func DefaultSignals() SignalSet {
	return SignalSet{
		Signals: []Signal{
			{Label: "private equity", Pattern: `private[-\s]?equity`},
			{Label: "leveraged buyout", Pattern: `leveraged buyout`},
			{Label: "buyout firm", Pattern: `buyout firm`},
			{Label: "portfolio company of", Pattern: `portfolio company of`},
			{Label: "taken private", Pattern: `taken private`},
			{Label: "PE-backed", Pattern: `\bpe[-\s]backed`},
			{Label: "acquired by investment firm", Pattern: `acquired by [a-z&.'\s]{1,60}(capital|partners|equity)`},
		},
		Firms: []string{
			"blackstone", "kkr", "carlyle", "apollo global", "tpg capital",
			"advent international", "hellman & friedman", "hellman and friedman",
			"warburg pincus", "vista equity", "silver lake", "thoma bravo",
			"platinum equity", "eqt partners", "permira", "bain capital",
			"gtcr", "leonard green", "genstar", "audax", "charterhouse",
			"bc partners", "clearlake capital", "sycamore partners",
			"sun capital", "centerbridge", "apax partners", "new mountain capital",
		},
	}
}

// LoadSignals loads the signal set from the given YAML file, falling back
// to the built-in defaults when the file doesn't exist. The file replaces
// the defaults wholesale so deployments control the exact heuristics.
func LoadSignals(path string) (SignalSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Signal file is optional
			return DefaultSignals(), nil
		}
		return SignalSet{}, err
	}

	var set SignalSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return SignalSet{}, fmt.Errorf("failed to parse signal config %s: %w", path, err)
	}

	if err := set.Validate(); err != nil {
		return SignalSet{}, fmt.Errorf("invalid signal config %s: %w", path, err)
	}

	return set, nil
}

// Validate checks that every signal has a label and a compilable pattern.
func (s SignalSet) Validate() error {
	if len(s.Signals) == 0 && len(s.Firms) == 0 {
		return fmt.Errorf("signal set is empty")
	}
	for i, sig := range s.Signals {
		if sig.Label == "" {
			return fmt.Errorf("signal %d has no label", i)
		}
		if _, err := regexp.Compile(`(?i)` + sig.Pattern); err != nil {
			return fmt.Errorf("signal %q has an invalid pattern: %w", sig.Label, err)
		}
	}
	return nil
}
