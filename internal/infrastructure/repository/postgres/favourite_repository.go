package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	qb "github.com/riskibarqy/prediction-league/internal/platform/querybuilder"
)

type FavouriteRepository struct {
	db *sqlx.DB
}

func NewFavouriteRepository(db *sqlx.DB) *FavouriteRepository {
	return &FavouriteRepository{db: db}
}

func (r *FavouriteRepository) Add(ctx context.Context, userID, teamID int64) error {
	query, args, err := qb.InsertInto("favourite_teams").
		Columns("user_id", "team_id").
		Values(userID, teamID).
		Suffix("ON CONFLICT (user_id, team_id) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert favourite query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert favourite: %w", err)
	}

	return nil
}

func (r *FavouriteRepository) Remove(ctx context.Context, userID, teamID int64) error {
	query, args, err := qb.DeleteFrom("favourite_teams").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("team_id", teamID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete favourite query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete favourite: %w", err)
	}

	return nil
}

func (r *FavouriteRepository) Exists(ctx context.Context, userID, teamID int64) (bool, error) {
	query, args, err := qb.Select("COUNT(*)").From("favourite_teams").
		Where(
			qb.Eq("user_id", userID),
			qb.Eq("team_id", teamID),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build favourite exists query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("check favourite exists: %w", err)
	}

	return count > 0, nil
}

func (r *FavouriteRepository) ListTeamIDsByUser(ctx context.Context, userID int64) ([]int64, error) {
	query, args, err := qb.Select("team_id").From("favourite_teams").
		Where(qb.Eq("user_id", userID)).
		OrderBy("team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select favourites query: %w", err)
	}

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("select favourites by user: %w", err)
	}

	return ids, nil
}

func (r *FavouriteRepository) ListDistinctTeamIDs(ctx context.Context) ([]int64, error) {
	query, args, err := qb.Select("DISTINCT team_id").From("favourite_teams").
		OrderBy("team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select distinct favourites query: %w", err)
	}

	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("select distinct favourite team ids: %w", err)
	}

	return ids, nil
}
