package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/prediction-league/internal/domain/league"
)

type LeagueRepository struct {
	mu      sync.RWMutex
	leagues map[int64]league.League
}

func NewLeagueRepository(leagues []league.League) *LeagueRepository {
	byID := make(map[int64]league.League, len(leagues))
	for _, item := range leagues {
		byID[item.ID] = item
	}

	return &LeagueRepository{leagues: byID}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.leagues))
	for _, item := range r.leagues {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID int64) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.leagues[leagueID]
	return item, ok, nil
}

func (r *LeagueRepository) Upsert(_ context.Context, item league.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.leagues[item.ID] = item
	return nil
}
