package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/prediction-league/internal/domain/match"
	qb "github.com/riskibarqy/prediction-league/internal/platform/querybuilder"
)

type matchTableModel struct {
	ID         int64          `db:"id"`
	HomeTeamID sql.NullInt64  `db:"home_team_id"`
	AwayTeamID sql.NullInt64  `db:"away_team_id"`
	Date       string         `db:"date"`
	Result     sql.NullString `db:"result"`
}

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, filter match.ListFilter) ([]match.Match, int, error) {
	conditions := make([]qb.Condition, 0, 2)
	if filter.TeamID != nil {
		conditions = append(conditions, qb.Or(
			qb.Eq("home_team_id", *filter.TeamID),
			qb.Eq("away_team_id", *filter.TeamID),
		))
	}
	if filter.LeagueID != nil {
		// League scope resolves through the home side only.
		conditions = append(conditions,
			qb.Expr("home_team_id IN (SELECT id FROM teams WHERE league_id = ?)", *filter.LeagueID),
		)
	}

	countQuery, countArgs, err := qb.Select("COUNT(*)").From("matches").
		Where(conditions...).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build count matches query: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count matches: %w", err)
	}

	builder := qb.Select("*").From("matches").
		Where(conditions...).
		OrderBy("date", "id")
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit).Offset(filter.Offset)
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("select matches: %w", err)
	}

	return toMatches(rows), total, nil
}

func (r *MatchRepository) ListAll(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		OrderBy("date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select all matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select all matches: %w", err)
	}

	return toMatches(rows), nil
}

func (r *MatchRepository) ListByTeam(ctx context.Context, teamID int64) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Or(
			qb.Eq("home_team_id", teamID),
			qb.Eq("away_team_id", teamID),
		)).
		OrderBy("date", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches by team query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches by team: %w", err)
	}

	return toMatches(rows), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match by id: %w", err)
	}

	return toMatch(row), true, nil
}

func (r *MatchRepository) ExistsByKey(ctx context.Context, homeTeamID, awayTeamID int64, date string) (bool, error) {
	query, args, err := qb.Select("COUNT(*)").From("matches").
		Where(
			qb.Eq("home_team_id", homeTeamID),
			qb.Eq("away_team_id", awayTeamID),
			qb.Eq("date", date),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build match exists query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("check match exists: %w", err)
	}

	return count > 0, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (int64, error) {
	var result sql.NullString
	if item.Result != nil {
		result = sql.NullString{String: *item.Result, Valid: true}
	}

	query, args, err := qb.InsertInto("matches").
		Columns("home_team_id", "away_team_id", "date", "result").
		Values(ptrToNullInt64(item.HomeTeamID), ptrToNullInt64(item.AwayTeamID), item.Date, result).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build insert match query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		if isUniqueViolation(err) {
			return 0, match.ErrDuplicate
		}
		return 0, fmt.Errorf("insert match: %w", err)
	}

	return id, nil
}

func toMatch(row matchTableModel) match.Match {
	out := match.Match{
		ID:         row.ID,
		HomeTeamID: nullInt64ToPtr(row.HomeTeamID),
		AwayTeamID: nullInt64ToPtr(row.AwayTeamID),
		Date:       row.Date,
	}
	if row.Result.Valid {
		result := row.Result.String
		out.Result = &result
	}
	return out
}

func toMatches(rows []matchTableModel) []match.Match {
	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, toMatch(row))
	}
	return out
}
