package league

import "context"

// Repository exposes league reference data owned by the sync process.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByID(ctx context.Context, id int64) (League, bool, error)
	Upsert(ctx context.Context, item League) error
}
