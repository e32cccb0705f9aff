package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/prediction-league/internal/domain/league"
	leaguemock "github.com/riskibarqy/prediction-league/internal/mocks/domain/league"
	"github.com/stretchr/testify/mock"
)

func TestLeagueService_ListLeagues_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	service := NewLeagueService(leagueRepo)

	expected := []league.League{
		{ID: 2021, Name: "Premier League", Country: "England", Competition: "PL"},
		{ID: 2014, Name: "Primera Division", Country: "Spain", Competition: "PD"},
	}

	leagueRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v != nil })).
		Return(expected, nil).
		Once()

	got, err := service.ListLeagues(ctx)
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(got) != len(expected) {
		t.Fatalf("unexpected league count: got=%d want=%d", len(got), len(expected))
	}
	if got[0].ID != expected[0].ID {
		t.Fatalf("unexpected league id: got=%d want=%d", got[0].ID, expected[0].ID)
	}
}

func TestLeagueService_ListLeagues_RepoErrorUsingMockery(t *testing.T) {
	t.Parallel()

	leagueRepo := leaguemock.NewRepository(t)
	service := NewLeagueService(leagueRepo)

	repoErr := errors.New("connection reset")
	leagueRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v != nil })).
		Return(nil, repoErr).
		Once()

	if _, err := service.ListLeagues(context.Background()); !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}
