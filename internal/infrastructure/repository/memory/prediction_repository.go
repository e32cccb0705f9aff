package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
)

type PredictionRepository struct {
	mu          sync.RWMutex
	nextID      int64
	predictions []prediction.Prediction
}

func NewPredictionRepository(predictions []prediction.Prediction) *PredictionRepository {
	out := make([]prediction.Prediction, 0, len(predictions))
	var nextID int64 = 1
	for _, item := range predictions {
		out = append(out, item)
		if item.ID >= nextID {
			nextID = item.ID + 1
		}
	}

	return &PredictionRepository{nextID: nextID, predictions: out}
}

func (r *PredictionRepository) Create(_ context.Context, item prediction.Prediction) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.predictions {
		if existing.UserID == item.UserID && existing.MatchID == item.MatchID {
			return 0, prediction.ErrDuplicate
		}
	}

	item.ID = r.nextID
	r.nextID++
	r.predictions = append(r.predictions, item)

	return item.ID, nil
}

func (r *PredictionRepository) ListByUser(_ context.Context, userID int64) ([]prediction.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prediction.Prediction, 0)
	for _, item := range r.predictions {
		if item.UserID == userID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *PredictionRepository) ListByMatch(_ context.Context, matchID int64) ([]prediction.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prediction.Prediction, 0)
	for _, item := range r.predictions {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *PredictionRepository) ListPredictedMatchIDs(_ context.Context) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int64]bool, len(r.predictions))
	out := make([]int64, 0, len(r.predictions))
	for _, item := range r.predictions {
		if !seen[item.MatchID] {
			seen[item.MatchID] = true
			out = append(out, item.MatchID)
		}
	}

	return out, nil
}

func (r *PredictionRepository) UpdatePoints(_ context.Context, predictionID int64, points int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.predictions {
		if r.predictions[idx].ID == predictionID {
			r.predictions[idx].PointsAwarded = points
			return nil
		}
	}

	return nil
}

func (r *PredictionRepository) SumPointsByUser(_ context.Context) (map[int64]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[int64]int)
	for _, item := range r.predictions {
		out[item.UserID] += item.PointsAwarded
	}

	return out, nil
}
