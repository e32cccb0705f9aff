package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/riskibarqy/prediction-league/internal/infrastructure/repository/memory"
)

type stubFixtureProvider struct {
	mu       sync.Mutex
	fixtures map[int64][]ExternalFixture
	err      error
	calls    []int64
}

func (p *stubFixtureProvider) FetchMatchesForTeam(_ context.Context, teamRefID int64, _ string) ([]ExternalFixture, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls = append(p.calls, teamRefID)
	if p.err != nil {
		return nil, p.err
	}
	return p.fixtures[teamRefID], nil
}

func TestIngestionService_ImportMatchesForTeam(t *testing.T) {
	ctx := context.Background()
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	matchRepo := memory.NewMatchRepository(nil, teamRepo)

	result := "2-0"
	provider := &stubFixtureProvider{fixtures: map[int64][]ExternalFixture{
		57: {
			// Fuzzy names: catalog stores "Arsenal FC" and "Chelsea FC".
			{HomeTeam: "Arsenal", AwayTeam: "Chelsea", Date: "2026-09-12", Result: &result},
			{HomeTeam: "Arsenal", AwayTeam: "Unknown Wanderers", Date: "2026-09-19"},
		},
	}}

	predictionRepo := memory.NewPredictionRepository(nil)
	scoring := NewScoringService(predictionRepo, matchRepo, nil)
	service := NewIngestionService(provider, teamRepo, matchRepo, nil, scoring, 2, nil)

	imported, err := service.ImportMatchesForTeam(ctx, "Arsenal FC")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	// The unresolvable away side drops that fixture silently.
	if imported.TotalFound != 2 || imported.Inserted != 1 {
		t.Fatalf("unexpected result: %+v", imported)
	}

	stored, err := matchRepo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("unexpected stored matches: got=%d want=1", len(stored))
	}
	m := stored[0]
	if m.HomeTeamID == nil || *m.HomeTeamID != 57 || m.AwayTeamID == nil || *m.AwayTeamID != 61 {
		t.Fatalf("sides did not resolve: %+v", m)
	}
	if m.Result == nil || *m.Result != "2-0" {
		t.Fatalf("unexpected result: %v", m.Result)
	}

	// Re-running the import must not duplicate the fixture.
	imported, err = service.ImportMatchesForTeam(ctx, "Arsenal FC")
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}
	if imported.Inserted != 0 {
		t.Fatalf("re-import must insert nothing, got %+v", imported)
	}
}

func TestIngestionService_ImportUnknownTeam(t *testing.T) {
	ctx := context.Background()
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	matchRepo := memory.NewMatchRepository(nil, teamRepo)
	service := NewIngestionService(&stubFixtureProvider{}, teamRepo, matchRepo, nil, nil, 2, nil)

	if _, err := service.ImportMatchesForTeam(ctx, "Nonexistent FC"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.ImportMatchesForTeam(ctx, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
}

func TestIngestionService_ImportAbsorbsProviderFailure(t *testing.T) {
	ctx := context.Background()
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	matchRepo := memory.NewMatchRepository(nil, teamRepo)
	provider := &stubFixtureProvider{err: errors.New("upstream down")}
	service := NewIngestionService(provider, teamRepo, matchRepo, nil, nil, 2, nil)

	imported, err := service.ImportMatchesForTeam(ctx, "Arsenal FC")
	if err != nil {
		t.Fatalf("provider failure must absorb to zero fixtures, got %v", err)
	}
	if imported.TotalFound != 0 || imported.Inserted != 0 {
		t.Fatalf("unexpected result: %+v", imported)
	}
}

func TestIngestionService_SyncFavouriteTeams(t *testing.T) {
	ctx := context.Background()
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	matchRepo := memory.NewMatchRepository(nil, teamRepo)
	favouriteRepo := memory.NewFavouriteRepository()

	// Two users share a favourite, one favourite is user-added, and one
	// points at a team missing from the catalog.
	for _, mark := range []struct{ userID, teamID int64 }{
		{1, 57}, {2, 57}, {1, 64}, {2, -4321}, {1, 999},
	} {
		if err := favouriteRepo.Add(ctx, mark.userID, mark.teamID); err != nil {
			t.Fatalf("add favourite: %v", err)
		}
	}

	provider := &stubFixtureProvider{fixtures: map[int64][]ExternalFixture{
		57: {{HomeTeam: "Arsenal FC", AwayTeam: "Liverpool FC", Date: "2026-09-12"}},
		64: {{HomeTeam: "Liverpool FC", AwayTeam: "Chelsea FC", Date: "2026-09-13"}},
	}}
	service := NewIngestionService(provider, teamRepo, matchRepo, nil, nil, 2, nil)

	summary, err := service.SyncFavouriteTeams(ctx, favouriteRepo)
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if summary.TeamsSynced != 2 {
		t.Fatalf("unexpected synced count: got=%d want=2", summary.TeamsSynced)
	}
	if summary.TeamsSkipped != 1 {
		t.Fatalf("user-added favourite must be skipped: %+v", summary)
	}
	if summary.TeamsFailed != 1 {
		t.Fatalf("uncatalogued favourite must fail without aborting: %+v", summary)
	}
	if summary.Inserted != 2 {
		t.Fatalf("unexpected inserted count: got=%d want=2", summary.Inserted)
	}
}
