package favourite

import "context"

// Repository records user/team bookmarks. A pair is either present or
// absent; Add and Remove are idempotent and neither validates that the team
// exists.
type Repository interface {
	Add(ctx context.Context, userID, teamID int64) error
	Remove(ctx context.Context, userID, teamID int64) error
	Exists(ctx context.Context, userID, teamID int64) (bool, error)
	ListTeamIDsByUser(ctx context.Context, userID int64) ([]int64, error)
	ListDistinctTeamIDs(ctx context.Context) ([]int64, error)
}
