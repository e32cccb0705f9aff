package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/prediction-league/internal/domain/match"
)

// MatchRepository resolves league filters through the team catalog, so it
// holds a reference to the TeamRepository it was seeded alongside.
type MatchRepository struct {
	mu      sync.RWMutex
	nextID  int64
	matches []match.Match
	teams   *TeamRepository
}

func NewMatchRepository(matches []match.Match, teams *TeamRepository) *MatchRepository {
	out := make([]match.Match, 0, len(matches))
	var nextID int64 = 1
	for _, item := range matches {
		out = append(out, item)
		if item.ID >= nextID {
			nextID = item.ID + 1
		}
	}

	return &MatchRepository{nextID: nextID, matches: out, teams: teams}
}

func (r *MatchRepository) List(ctx context.Context, filter match.ListFilter) ([]match.Match, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]match.Match, 0, len(r.matches))
	for _, item := range r.matches {
		if filter.TeamID != nil && !involvesTeam(item, *filter.TeamID) {
			continue
		}
		if filter.LeagueID != nil && !r.involvesLeague(ctx, item, *filter.LeagueID) {
			continue
		}
		matched = append(matched, item)
	}

	total := len(matched)
	start := filter.Offset
	if start > total {
		start = total
	}
	end := total
	if filter.Limit > 0 && start+filter.Limit < end {
		end = start + filter.Limit
	}

	return matched[start:end], total, nil
}

func (r *MatchRepository) ListAll(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	out = append(out, r.matches...)

	return out, nil
}

func (r *MatchRepository) ListByTeam(_ context.Context, teamID int64) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, item := range r.matches {
		if involvesTeam(item, teamID) {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.matches {
		if item.ID == matchID {
			return item, true, nil
		}
	}

	return match.Match{}, false, nil
}

func (r *MatchRepository) ExistsByKey(_ context.Context, homeTeamID, awayTeamID int64, date string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.matches {
		if item.HomeTeamID != nil && *item.HomeTeamID == homeTeamID &&
			item.AwayTeamID != nil && *item.AwayTeamID == awayTeamID &&
			item.Date == date {
			return true, nil
		}
	}

	return false, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.matches {
		if existing.HomeTeamID != nil && item.HomeTeamID != nil && *existing.HomeTeamID == *item.HomeTeamID &&
			existing.AwayTeamID != nil && item.AwayTeamID != nil && *existing.AwayTeamID == *item.AwayTeamID &&
			existing.Date == item.Date {
			return 0, match.ErrDuplicate
		}
	}

	item.ID = r.nextID
	r.nextID++
	r.matches = append(r.matches, item)

	return item.ID, nil
}

func involvesTeam(item match.Match, teamID int64) bool {
	return (item.HomeTeamID != nil && *item.HomeTeamID == teamID) ||
		(item.AwayTeamID != nil && *item.AwayTeamID == teamID)
}

// involvesLeague resolves the league through the home side only.
func (r *MatchRepository) involvesLeague(ctx context.Context, item match.Match, leagueID int64) bool {
	if r.teams == nil || item.HomeTeamID == nil {
		return false
	}

	found, exists, err := r.teams.GetByID(ctx, *item.HomeTeamID)
	return err == nil && exists && found.LeagueID != nil && *found.LeagueID == leagueID
}
