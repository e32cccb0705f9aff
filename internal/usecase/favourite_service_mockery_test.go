package usecase

import (
	"context"
	"errors"
	"testing"

	favouritemock "github.com/riskibarqy/prediction-league/internal/mocks/domain/favourite"
	"github.com/riskibarqy/prediction-league/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/mock"
)

func TestFavouriteService_RemoveFavourite_RepoErrorUsingMockery(t *testing.T) {
	t.Parallel()

	favouriteRepo := favouritemock.NewRepository(t)
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	service := NewFavouriteService(favouriteRepo, teamRepo, nil)

	repoErr := errors.New("deadlock detected")
	favouriteRepo.
		On("Remove", mock.MatchedBy(func(v context.Context) bool { return v != nil }), int64(1), int64(57)).
		Return(repoErr).
		Once()

	if err := service.RemoveFavourite(context.Background(), 1, 57); !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}

func TestFavouriteService_ListFavourites_SkipsUncataloguedUsingMockery(t *testing.T) {
	t.Parallel()

	favouriteRepo := favouritemock.NewRepository(t)
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	service := NewFavouriteService(favouriteRepo, teamRepo, nil)

	favouriteRepo.
		On("ListTeamIDsByUser", mock.MatchedBy(func(v context.Context) bool { return v != nil }), int64(7)).
		Return([]int64{57, 999}, nil).
		Once()

	teams, err := service.ListFavourites(context.Background(), 7)
	if err != nil {
		t.Fatalf("list favourites: %v", err)
	}
	if len(teams) != 1 {
		t.Fatalf("expected 1 catalogued favourite, got %d", len(teams))
	}
	if teams[0].ID != 57 {
		t.Fatalf("unexpected favourite team id: %d", teams[0].ID)
	}
}
