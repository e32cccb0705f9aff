package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/prediction-league/internal/domain/user"
)

type UserRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]user.User
}

func NewUserRepository(users []user.User) *UserRepository {
	byID := make(map[int64]user.User, len(users))
	var nextID int64 = 1
	for _, item := range users {
		byID[item.ID] = item
		if item.ID >= nextID {
			nextID = item.ID + 1
		}
	}

	return &UserRepository{nextID: nextID, users: byID}
}

func (r *UserRepository) Create(_ context.Context, item user.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Username, item.Username) {
			return 0, user.ErrDuplicateUsername
		}
	}

	item.ID = r.nextID
	r.nextID++
	r.users[item.ID] = item

	return item.ID, nil
}

func (r *UserRepository) GetByID(_ context.Context, userID int64) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.users[userID]
	return item, ok, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.users {
		if strings.EqualFold(item.Username, username) {
			return item, true, nil
		}
	}

	return user.User{}, false, nil
}

func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0, len(r.users))
	for _, item := range r.users {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
