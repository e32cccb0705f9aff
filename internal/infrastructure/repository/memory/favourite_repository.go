package memory

import (
	"context"
	"sync"
)

type favouriteKey struct {
	userID int64
	teamID int64
}

type FavouriteRepository struct {
	mu    sync.RWMutex
	marks map[favouriteKey]struct{}
	order []favouriteKey
}

func NewFavouriteRepository() *FavouriteRepository {
	return &FavouriteRepository{marks: make(map[favouriteKey]struct{})}
}

func (r *FavouriteRepository) Add(_ context.Context, userID, teamID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := favouriteKey{userID: userID, teamID: teamID}
	if _, ok := r.marks[key]; ok {
		return nil
	}
	r.marks[key] = struct{}{}
	r.order = append(r.order, key)

	return nil
}

func (r *FavouriteRepository) Remove(_ context.Context, userID, teamID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := favouriteKey{userID: userID, teamID: teamID}
	if _, ok := r.marks[key]; !ok {
		return nil
	}
	delete(r.marks, key)
	for idx, existing := range r.order {
		if existing == key {
			r.order = append(r.order[:idx], r.order[idx+1:]...)
			break
		}
	}

	return nil
}

func (r *FavouriteRepository) Exists(_ context.Context, userID, teamID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.marks[favouriteKey{userID: userID, teamID: teamID}]
	return ok, nil
}

func (r *FavouriteRepository) ListTeamIDsByUser(_ context.Context, userID int64) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]int64, 0)
	for _, key := range r.order {
		if key.userID == userID {
			out = append(out, key.teamID)
		}
	}

	return out, nil
}

func (r *FavouriteRepository) ListDistinctTeamIDs(_ context.Context) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int64]bool, len(r.order))
	out := make([]int64, 0, len(r.order))
	for _, key := range r.order {
		if !seen[key.teamID] {
			seen[key.teamID] = true
			out = append(out, key.teamID)
		}
	}

	return out, nil
}
