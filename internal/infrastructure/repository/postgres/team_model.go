package postgres

import "database/sql"

type teamTableModel struct {
	ID       int64         `db:"id"`
	LeagueID sql.NullInt64 `db:"league_id"`
	Name     string        `db:"name"`
	LogoURL  string        `db:"logo_url"`
	Stadium  string        `db:"stadium"`
}

func nullInt64ToPtr(value sql.NullInt64) *int64 {
	if !value.Valid {
		return nil
	}
	out := value.Int64
	return &out
}

func ptrToNullInt64(value *int64) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *value, Valid: true}
}
