package teamstats

import "github.com/riskibarqy/prediction-league/internal/domain/match"

// Record is a team's played/won/lost/drawn tally over the stored matches.
// Played counts every stored match for the team, including ones without a
// result yet; win/loss/draw only accumulate from final results.
type Record struct {
	TeamID int64
	Played int
	Wins   int
	Losses int
	Draws  int
}

// Compute tallies the record for teamID over the given matches. Matches with
// no result or a malformed result contribute to Played only.
func Compute(teamID int64, matches []match.Match) Record {
	record := Record{TeamID: teamID}

	for _, m := range matches {
		isHome := m.HomeTeamID != nil && *m.HomeTeamID == teamID
		isAway := m.AwayTeamID != nil && *m.AwayTeamID == teamID
		if !isHome && !isAway {
			continue
		}
		record.Played++

		if !m.Played() {
			continue
		}
		homeScore, awayScore, err := match.ParseResult(*m.Result)
		if err != nil {
			continue
		}

		outcome := match.ResultOutcome(homeScore, awayScore)
		switch {
		case outcome == match.OutcomeDraw:
			record.Draws++
		case (outcome == match.OutcomeHomeWin) == isHome:
			record.Wins++
		default:
			record.Losses++
		}
	}

	return record
}
