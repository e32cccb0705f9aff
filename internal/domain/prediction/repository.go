package prediction

import (
	"context"
	"errors"
)

// ErrDuplicate is returned by Create when the user already predicted the
// match; second attempts are rejected, never overwritten.
var ErrDuplicate = errors.New("prediction already exists for this match")

// Repository describes prediction persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Prediction) (int64, error)
	ListByUser(ctx context.Context, userID int64) ([]Prediction, error)
	ListByMatch(ctx context.Context, matchID int64) ([]Prediction, error)
	ListPredictedMatchIDs(ctx context.Context) ([]int64, error)
	UpdatePoints(ctx context.Context, id int64, points int) error
	SumPointsByUser(ctx context.Context) (map[int64]int, error)
}
