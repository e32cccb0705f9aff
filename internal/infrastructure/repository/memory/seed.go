package memory

import (
	"github.com/riskibarqy/prediction-league/internal/domain/league"
	"github.com/riskibarqy/prediction-league/internal/domain/match"
	"github.com/riskibarqy/prediction-league/internal/domain/team"
)

// Seed data mirrors the football-data.org catalog closely enough for demos
// and tests to exercise every flow without the provider.
const (
	LeagueIDPremierLeague int64 = 2021
	LeagueIDPrimeraDiv    int64 = 2014
)

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:          LeagueIDPremierLeague,
			Name:        "Premier League",
			Country:     "England",
			Website:     "https://www.premierleague.com",
			Competition: "PL",
		},
		{
			ID:          LeagueIDPrimeraDiv,
			Name:        "Primera Division",
			Country:     "Spain",
			Website:     "https://www.laliga.com",
			Competition: "PD",
		},
	}
}

func SeedTeams() []team.Team {
	pl := LeagueIDPremierLeague
	pd := LeagueIDPrimeraDiv

	return []team.Team{
		{ID: 57, LeagueID: &pl, Name: "Arsenal FC", LogoURL: "https://crests.football-data.org/57.png", Stadium: "Emirates Stadium"},
		{ID: 64, LeagueID: &pl, Name: "Liverpool FC", LogoURL: "https://crests.football-data.org/64.png", Stadium: "Anfield"},
		{ID: 65, LeagueID: &pl, Name: "Manchester City FC", LogoURL: "https://crests.football-data.org/65.png", Stadium: "Etihad Stadium"},
		{ID: 66, LeagueID: &pl, Name: "Manchester United FC", LogoURL: "https://crests.football-data.org/66.png", Stadium: "Old Trafford"},
		{ID: 61, LeagueID: &pl, Name: "Chelsea FC", LogoURL: "https://crests.football-data.org/61.png", Stadium: "Stamford Bridge"},
		{ID: 81, LeagueID: &pd, Name: "FC Barcelona", LogoURL: "https://crests.football-data.org/81.png", Stadium: "Camp Nou"},
		{ID: 86, LeagueID: &pd, Name: "Real Madrid CF", LogoURL: "https://crests.football-data.org/86.png", Stadium: "Santiago Bernabeu"},
	}
}

func SeedMatches() []match.Match {
	arsenal, liverpool := int64(57), int64(64)
	city, united := int64(65), int64(66)
	chelsea := int64(61)
	barcelona, real := int64(81), int64(86)
	finished := func(result string) *string { return &result }

	return []match.Match{
		{ID: 1, HomeTeamID: &arsenal, AwayTeamID: &liverpool, Date: "2026-08-15", Result: finished("2-1")},
		{ID: 2, HomeTeamID: &city, AwayTeamID: &united, Date: "2026-08-16", Result: finished("1-1")},
		{ID: 3, HomeTeamID: &barcelona, AwayTeamID: &real, Date: "2026-08-16", Result: finished("3-2")},
		{ID: 4, HomeTeamID: &liverpool, AwayTeamID: &chelsea, Date: "2026-09-05"},
		{ID: 5, HomeTeamID: &united, AwayTeamID: &arsenal, Date: "2026-09-06"},
	}
}
