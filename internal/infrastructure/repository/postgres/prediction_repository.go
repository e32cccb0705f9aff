package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
	qb "github.com/riskibarqy/prediction-league/internal/platform/querybuilder"
)

type predictionTableModel struct {
	ID              int64  `db:"id"`
	UserID          int64  `db:"user_id"`
	MatchID         int64  `db:"match_id"`
	PredictedResult string `db:"predicted_result"`
	PointsAwarded   int    `db:"points_awarded"`
}

type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) Create(ctx context.Context, item prediction.Prediction) (int64, error) {
	query, args, err := qb.InsertInto("predictions").
		Columns("user_id", "match_id", "predicted_result", "points_awarded").
		Values(item.UserID, item.MatchID, item.PredictedResult, item.PointsAwarded).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert prediction query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		if isUniqueViolation(err) {
			return 0, prediction.ErrDuplicate
		}
		return 0, fmt.Errorf("insert prediction: %w", err)
	}

	return id, nil
}

func (r *PredictionRepository) ListByUser(ctx context.Context, userID int64) ([]prediction.Prediction, error) {
	return r.list(ctx, qb.Eq("user_id", userID))
}

func (r *PredictionRepository) ListByMatch(ctx context.Context, matchID int64) ([]prediction.Prediction, error) {
	return r.list(ctx, qb.Eq("match_id", matchID))
}

func (r *PredictionRepository) list(ctx context.Context, conditions ...qb.Condition) ([]prediction.Prediction, error) {
	query, args, err := qb.Select("*").From("predictions").
		Where(conditions...).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select predictions query: %w", err)
	}

	var rows []predictionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select predictions: %w", err)
	}

	out := make([]prediction.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, prediction.Prediction(row))
	}

	return out, nil
}

func (r *PredictionRepository) ListPredictedMatchIDs(ctx context.Context) ([]int64, error) {
	query, args, err := qb.Select("DISTINCT match_id").From("predictions").
		OrderBy("match_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select predicted match ids query: %w", err)
	}

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("select predicted match ids: %w", err)
	}

	return ids, nil
}

func (r *PredictionRepository) UpdatePoints(ctx context.Context, predictionID int64, points int) error {
	query, args, err := qb.Update("predictions").
		Set("points_awarded", points).
		Where(qb.Eq("id", predictionID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update prediction points query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update prediction points: %w", err)
	}

	return nil
}

func (r *PredictionRepository) SumPointsByUser(ctx context.Context) (map[int64]int, error) {
	query, args, err := qb.Select("user_id", "COALESCE(SUM(points_awarded), 0) AS total").
		From("predictions").
		GroupBy("user_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build sum points query: %w", err)
	}

	var rows []struct {
		UserID int64 `db:"user_id"`
		Total  int   `db:"total"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("sum points by user: %w", err)
	}

	out := make(map[int64]int, len(rows))
	for _, row := range rows {
		out[row.UserID] = row.Total
	}

	return out, nil
}
