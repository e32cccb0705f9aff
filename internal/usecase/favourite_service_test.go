package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/prediction-league/internal/infrastructure/repository/memory"
)

func TestFavouriteService_AddRemoveIdempotent(t *testing.T) {
	ctx := context.Background()
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	service := NewFavouriteService(memory.NewFavouriteRepository(), teamRepo, nil)

	for range 3 {
		if err := service.AddFavourite(ctx, 1, 57); err != nil {
			t.Fatalf("add favourite: %v", err)
		}
	}

	teams, err := service.ListFavourites(ctx, 1)
	if err != nil {
		t.Fatalf("list favourites: %v", err)
	}
	if len(teams) != 1 || teams[0].ID != 57 {
		t.Fatalf("unexpected favourites: %+v", teams)
	}

	for range 2 {
		if err := service.RemoveFavourite(ctx, 1, 57); err != nil {
			t.Fatalf("remove favourite: %v", err)
		}
	}

	teams, err = service.ListFavourites(ctx, 1)
	if err != nil {
		t.Fatalf("list favourites: %v", err)
	}
	if len(teams) != 0 {
		t.Fatalf("expected no favourites, got %+v", teams)
	}
}

func TestFavouriteService_AcceptsUncataloguedTeam(t *testing.T) {
	ctx := context.Background()
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	favouriteRepo := memory.NewFavouriteRepository()
	service := NewFavouriteService(favouriteRepo, teamRepo, nil)

	if err := service.AddFavourite(ctx, 1, 424242); err != nil {
		t.Fatalf("add favourite for uncatalogued team: %v", err)
	}

	exists, err := favouriteRepo.Exists(ctx, 1, 424242)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatalf("mark should be stored even without a catalog row")
	}

	// The listing resolves against the catalog, so the stray mark is
	// invisible there but survives for a future resync.
	teams, err := service.ListFavourites(ctx, 1)
	if err != nil {
		t.Fatalf("list favourites: %v", err)
	}
	if len(teams) != 0 {
		t.Fatalf("uncatalogued favourite must not be listed, got %+v", teams)
	}
}
