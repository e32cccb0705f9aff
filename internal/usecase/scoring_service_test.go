package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
	"github.com/riskibarqy/prediction-league/internal/infrastructure/repository/memory"
)

func TestScorePrediction(t *testing.T) {
	cases := []struct {
		name      string
		predicted string
		home      int
		away      int
		want      int
	}{
		{name: "exact scoreline", predicted: "2-1", home: 2, away: 1, want: 3},
		{name: "right outcome wrong score", predicted: "1-0", home: 2, away: 1, want: 1},
		{name: "right draw wrong score", predicted: "0-0", home: 1, away: 1, want: 1},
		{name: "wrong outcome", predicted: "0-2", home: 2, away: 1, want: 0},
		{name: "malformed prediction", predicted: "abc", home: 2, away: 1, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := scorePrediction(tc.predicted, tc.home, tc.away)
			if got != tc.want {
				t.Fatalf("unexpected points: got=%d want=%d", got, tc.want)
			}
		})
	}
}

func TestScoringService_ScoreMatchIsIdempotent(t *testing.T) {
	ctx := context.Background()
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches(), teamRepo)
	predictionRepo := memory.NewPredictionRepository([]prediction.Prediction{
		{ID: 1, UserID: 1, MatchID: 1, PredictedResult: "2-1"},
		{ID: 2, UserID: 2, MatchID: 1, PredictedResult: "1-0"},
		{ID: 3, UserID: 3, MatchID: 4, PredictedResult: "1-0"},
	})
	service := NewScoringService(predictionRepo, matchRepo, nil)

	updated, err := service.ScoreMatch(ctx, 1)
	if err != nil {
		t.Fatalf("score match: %v", err)
	}
	if updated != 2 {
		t.Fatalf("unexpected updates: got=%d want=2", updated)
	}

	points, err := predictionRepo.SumPointsByUser(ctx)
	if err != nil {
		t.Fatalf("sum points: %v", err)
	}
	if points[1] != 3 || points[2] != 1 {
		t.Fatalf("unexpected points: %v", points)
	}

	updated, err = service.ScoreMatch(ctx, 1)
	if err != nil {
		t.Fatalf("rescore match: %v", err)
	}
	if updated != 0 {
		t.Fatalf("rescoring must be a no-op, got %d updates", updated)
	}
}

func TestScoringService_ScoreAllSkipsUnplayed(t *testing.T) {
	ctx := context.Background()
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	matchRepo := memory.NewMatchRepository(memory.SeedMatches(), teamRepo)
	predictionRepo := memory.NewPredictionRepository([]prediction.Prediction{
		{ID: 1, UserID: 1, MatchID: 1, PredictedResult: "0-3"},
		{ID: 2, UserID: 1, MatchID: 4, PredictedResult: "2-0"},
	})
	service := NewScoringService(predictionRepo, matchRepo, nil)

	updated, err := service.ScoreAll(ctx)
	if err != nil {
		t.Fatalf("score all: %v", err)
	}
	// Prediction 1 lands on zero points, which is already its stored value;
	// prediction 2 targets an unplayed match.
	if updated != 0 {
		t.Fatalf("unexpected updates: got=%d want=0", updated)
	}

	byUser, err := predictionRepo.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("list predictions: %v", err)
	}
	for _, p := range byUser {
		if p.PointsAwarded != 0 {
			t.Fatalf("prediction %d should have zero points, got %d", p.ID, p.PointsAwarded)
		}
	}
}
