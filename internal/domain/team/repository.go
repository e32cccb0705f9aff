package team

import (
	"context"
	"errors"
)

// ErrDuplicate is returned by Create when the team ID or name collides with
// an existing row.
var ErrDuplicate = errors.New("team already exists")

// ListFilter narrows and paginates team listings. A nil LeagueID means no
// league filter; an empty Search means no name filter.
type ListFilter struct {
	LeagueID *int64
	Search   string
	Offset   int
	Limit    int
}

// Repository describes team persistence needs from use cases. List returns
// the page plus the total row count for the filter.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Team, int, error)
	ListAll(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, id int64) (Team, bool, error)
	GetByName(ctx context.Context, name string) (Team, bool, error)
	Create(ctx context.Context, item Team) error
	Upsert(ctx context.Context, item Team) error
}
