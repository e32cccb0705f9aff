package team

import "strings"

// Matcher resolves an externally reported team name against stored teams.
// Implementations pick at most one team; ambiguity handling is up to the
// strategy.
type Matcher interface {
	Match(name string, teams []Team) (Team, bool)
}

// SubstringMatcher mirrors the provider reconciliation heuristic: a stored
// team matches when its name contains the reported name case-insensitively,
// or contains the reported name with internal spaces removed (tolerates
// spacing variants such as "Manchester United" vs "ManchesterUnited"). The
// first match in storage order wins; no scoring or tie-breaking beyond that.
type SubstringMatcher struct{}

func NewSubstringMatcher() SubstringMatcher {
	return SubstringMatcher{}
}

func (SubstringMatcher) Match(name string, teams []Team) (Team, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return Team{}, false
	}
	squashed := strings.ReplaceAll(needle, " ", "")

	for _, candidate := range teams {
		stored := strings.ToLower(candidate.Name)
		if strings.Contains(stored, needle) || strings.Contains(stored, squashed) {
			return candidate, true
		}
	}

	return Team{}, false
}
