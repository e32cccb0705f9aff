package usecase

import "context"

// ExternalFixture is one raw fixture as reported by the sports-data
// provider, prior to reconciliation. Result is nil for unplayed fixtures.
type ExternalFixture struct {
	HomeTeam string
	AwayTeam string
	Date     string
	Result   *string
}

// ExternalTeam is a provider catalog entry used by the seed sync.
type ExternalTeam struct {
	ID      int64
	Name    string
	LogoURL string
	Stadium string
}

// FixtureProvider is the sports-data collaborator. Implementations return
// the fixtures known for a provider team ID, optionally narrowed to one
// competition code.
type FixtureProvider interface {
	FetchMatchesForTeam(ctx context.Context, teamRefID int64, competition string) ([]ExternalFixture, error)
}
