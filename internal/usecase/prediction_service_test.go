package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/prediction-league/internal/domain/user"
	"github.com/riskibarqy/prediction-league/internal/infrastructure/repository/memory"
)

type predictionFixture struct {
	service        *PredictionService
	predictionRepo *memory.PredictionRepository
	userRepo       *memory.UserRepository
}

func newPredictionFixture(users []user.User) predictionFixture {
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches(), teamRepo)
	predictionRepo := memory.NewPredictionRepository(nil)
	userRepo := memory.NewUserRepository(users)
	matchService := NewMatchService(matchRepo, teamRepo, predictionRepo)

	return predictionFixture{
		service:        NewPredictionService(predictionRepo, matchRepo, userRepo, matchService, nil),
		predictionRepo: predictionRepo,
		userRepo:       userRepo,
	}
}

func TestPredictionService_AddPrediction(t *testing.T) {
	ctx := context.Background()
	fx := newPredictionFixture([]user.User{{ID: 1, Username: "alice"}})

	created, err := fx.service.AddPrediction(ctx, 1, 4, 2, 0)
	if err != nil {
		t.Fatalf("add prediction: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected prediction id to be assigned")
	}

	if _, err := fx.service.AddPrediction(ctx, 1, 4, 1, 1); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on second prediction, got %v", err)
	}
	if _, err := fx.service.AddPrediction(ctx, 1, 999, 1, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown match, got %v", err)
	}
	if _, err := fx.service.AddPrediction(ctx, 1, 5, -1, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative score, got %v", err)
	}
}

func TestPredictionService_ListPredictionsMarksCorrect(t *testing.T) {
	ctx := context.Background()
	fx := newPredictionFixture([]user.User{{ID: 1, Username: "alice"}})

	// Match 1 finished 2-1, match 4 has no result yet.
	if _, err := fx.service.AddPrediction(ctx, 1, 1, 2, 1); err != nil {
		t.Fatalf("add prediction: %v", err)
	}
	if _, err := fx.service.AddPrediction(ctx, 1, 4, 2, 1); err != nil {
		t.Fatalf("add prediction: %v", err)
	}

	views, err := fx.service.ListPredictions(ctx, 1)
	if err != nil {
		t.Fatalf("list predictions: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("unexpected prediction count: got=%d want=2", len(views))
	}
	for _, v := range views {
		switch v.Prediction.MatchID {
		case 1:
			if !v.Correct {
				t.Fatalf("exact scoreline on match 1 should be correct")
			}
			if v.Match.HomeTeamName != "Arsenal FC" {
				t.Fatalf("unexpected home team name: %s", v.Match.HomeTeamName)
			}
		case 4:
			if v.Correct {
				t.Fatalf("unplayed match cannot be correct")
			}
		}
	}
}

func TestPredictionService_LeaderboardOrdersByPoints(t *testing.T) {
	ctx := context.Background()
	fx := newPredictionFixture([]user.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
		{ID: 3, Username: "carol"},
	})

	// alice nails match 1 (3 pts), bob gets the outcome only (1 pt),
	// carol never predicts.
	if _, err := fx.service.AddPrediction(ctx, 1, 1, 2, 1); err != nil {
		t.Fatalf("add prediction: %v", err)
	}
	if _, err := fx.service.AddPrediction(ctx, 2, 1, 3, 0); err != nil {
		t.Fatalf("add prediction: %v", err)
	}

	scoring := NewScoringService(fx.predictionRepo, fx.service.matchRepo, nil)
	if _, err := scoring.ScoreMatch(ctx, 1); err != nil {
		t.Fatalf("score match: %v", err)
	}

	entries, err := fx.service.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("unexpected entry count: got=%d want=3", len(entries))
	}
	if entries[0].Username != "alice" || entries[0].Score != 3 {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Username != "bob" || entries[1].Score != 1 {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
	if entries[2].Username != "carol" || entries[2].Score != 0 {
		t.Fatalf("users without predictions must still appear: %+v", entries[2])
	}
}

func TestPredictionService_UserStats(t *testing.T) {
	ctx := context.Background()
	fx := newPredictionFixture([]user.User{{ID: 1, Username: "alice"}})

	if _, err := fx.service.AddPrediction(ctx, 1, 1, 2, 1); err != nil {
		t.Fatalf("add prediction: %v", err)
	}
	if _, err := fx.service.AddPrediction(ctx, 1, 2, 2, 0); err != nil {
		t.Fatalf("add prediction: %v", err)
	}

	scoring := NewScoringService(fx.predictionRepo, fx.service.matchRepo, nil)
	if _, err := scoring.ScoreAll(ctx); err != nil {
		t.Fatalf("score all: %v", err)
	}

	stats, err := fx.service.UserStats(ctx, 1)
	if err != nil {
		t.Fatalf("user stats: %v", err)
	}
	if stats.TotalPredictions != 2 || stats.ExactPredictions != 1 || stats.TotalPoints != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	if _, err := fx.service.UserStats(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown user, got %v", err)
	}
}
