package match

import (
	"context"
	"errors"
)

// ErrDuplicate is returned by Create when the (home, away, date) dedup key
// already exists.
var ErrDuplicate = errors.New("match already exists")

// ListFilter narrows and paginates match listings. LeagueID filters through
// the home team's league; TeamID matches either side.
type ListFilter struct {
	LeagueID *int64
	TeamID   *int64
	Offset   int
	Limit    int
}

// Repository describes match persistence needs from use cases. List returns
// the page in date-ascending order plus the total row count for the filter.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Match, int, error)
	ListAll(ctx context.Context) ([]Match, error)
	ListByTeam(ctx context.Context, teamID int64) ([]Match, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	ExistsByKey(ctx context.Context, homeTeamID, awayTeamID int64, date string) (bool, error)
	Create(ctx context.Context, item Match) (int64, error)
}
