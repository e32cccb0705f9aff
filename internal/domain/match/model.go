package match

import (
	"fmt"
	"strconv"
	"strings"
)

// Match is one fixture reconciled into the catalog. Team references are
// nullable because externally reported fixtures may mention teams the
// catalog does not know. Date is a YYYY-MM-DD string; lexicographic order is
// date order. Result is "<home>-<away>" once played, nil before.
type Match struct {
	ID         int64
	HomeTeamID *int64
	AwayTeamID *int64
	Date       string
	Result     *string
}

// Played reports whether a final result has been recorded.
func (m Match) Played() bool {
	return m.Result != nil && strings.TrimSpace(*m.Result) != ""
}

// Outcome is the direction of a final result from the home side's view.
type Outcome int

const (
	OutcomeHomeWin Outcome = 1
	OutcomeDraw    Outcome = 0
	OutcomeAwayWin Outcome = -1
)

// ParseResult splits a "<home>-<away>" scoreline into its integer parts.
func ParseResult(result string) (homeScore, awayScore int, err error) {
	parts := strings.SplitN(strings.TrimSpace(result), "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed result %q", result)
	}

	homeScore, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed home score in %q: %w", result, err)
	}
	awayScore, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed away score in %q: %w", result, err)
	}

	return homeScore, awayScore, nil
}

// FormatResult renders the canonical "<home>-<away>" scoreline.
func FormatResult(homeScore, awayScore int) string {
	return strconv.Itoa(homeScore) + "-" + strconv.Itoa(awayScore)
}

// ResultOutcome classifies a scoreline.
func ResultOutcome(homeScore, awayScore int) Outcome {
	switch {
	case homeScore > awayScore:
		return OutcomeHomeWin
	case homeScore < awayScore:
		return OutcomeAwayWin
	default:
		return OutcomeDraw
	}
}
