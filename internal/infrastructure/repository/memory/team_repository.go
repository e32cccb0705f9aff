package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/prediction-league/internal/domain/team"
)

// TeamRepository keeps teams in insertion order so list results and fuzzy
// matching stay deterministic.
type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	out := make([]team.Team, 0, len(teams))
	out = append(out, teams...)

	return &TeamRepository{teams: out}
}

func (r *TeamRepository) List(_ context.Context, filter team.ListFilter) ([]team.Team, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	matched := make([]team.Team, 0, len(r.teams))
	for _, item := range r.teams {
		if filter.LeagueID != nil {
			if item.LeagueID == nil || *item.LeagueID != *filter.LeagueID {
				continue
			}
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		matched = append(matched, item)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Name != matched[j].Name {
			return matched[i].Name < matched[j].Name
		}
		return matched[i].ID < matched[j].ID
	})

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

func (r *TeamRepository) ListAll(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.teams))
	out = append(out, r.teams...)

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.teams {
		if item.ID == teamID {
			return item, true, nil
		}
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) GetByName(_ context.Context, name string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.teams {
		if strings.EqualFold(item.Name, name) {
			return item, true, nil
		}
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.teams {
		if existing.ID == item.ID || strings.EqualFold(existing.Name, item.Name) {
			return team.ErrDuplicate
		}
	}
	r.teams = append(r.teams, item)

	return nil
}

func (r *TeamRepository) Upsert(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.teams {
		if r.teams[idx].ID == item.ID {
			r.teams[idx] = item
			return nil
		}
	}
	r.teams = append(r.teams, item)

	return nil
}
