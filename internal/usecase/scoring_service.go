package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/riskibarqy/prediction-league/internal/domain/match"
	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
)

const (
	pointsExactScoreline = 3
	pointsCorrectOutcome = 1
)

// ScoringService awards points once a match has a final result: the exact
// scoreline earns pointsExactScoreline, the right outcome alone earns
// pointsCorrectOutcome, anything else earns zero. Scoring is a pure function
// of the stored result, so re-running it is safe.
type ScoringService struct {
	predictionRepo prediction.Repository
	matchRepo      match.Repository
	logger         *slog.Logger
}

func NewScoringService(predictionRepo prediction.Repository, matchRepo match.Repository, logger *slog.Logger) *ScoringService {
	if logger == nil {
		logger = slog.Default()
	}

	return &ScoringService{
		predictionRepo: predictionRepo,
		matchRepo:      matchRepo,
		logger:         logger,
	}
}

// ScoreMatch recomputes points for every prediction on the given match.
// Matches without a result are skipped without error.
func (s *ScoringService) ScoreMatch(ctx context.Context, matchID int64) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.ScoreMatch")
	defer span.End()

	found, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return 0, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return 0, fmt.Errorf("%w: match %d", ErrNotFound, matchID)
	}

	return s.scorePlayedMatch(ctx, found)
}

// ScoreAll sweeps every played match and recomputes prediction points,
// returning the number of predictions updated.
func (s *ScoringService) ScoreAll(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.ScoreAll")
	defer span.End()

	matches, err := s.matchRepo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list matches: %w", err)
	}

	updated := 0
	for _, m := range matches {
		n, err := s.scorePlayedMatch(ctx, m)
		if err != nil {
			return updated, err
		}
		updated += n
	}

	s.logger.InfoContext(ctx, "scoring sweep finished", "predictions_updated", updated)
	return updated, nil
}

func (s *ScoringService) scorePlayedMatch(ctx context.Context, m match.Match) (int, error) {
	if !m.Played() {
		return 0, nil
	}

	actualHome, actualAway, err := match.ParseResult(*m.Result)
	if err != nil {
		s.logger.WarnContext(ctx, "match has unparseable result, skipping", "match_id", m.ID, "result", *m.Result)
		return 0, nil
	}

	predictions, err := s.predictionRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return 0, fmt.Errorf("list predictions for match: %w", err)
	}

	updated := 0
	for _, p := range predictions {
		points := scorePrediction(p.PredictedResult, actualHome, actualAway)
		if points == p.PointsAwarded {
			continue
		}
		if err := s.predictionRepo.UpdatePoints(ctx, p.ID, points); err != nil {
			return updated, fmt.Errorf("update prediction points: %w", err)
		}
		updated++
	}
	return updated, nil
}

func scorePrediction(predictedResult string, actualHome, actualAway int) int {
	predHome, predAway, err := match.ParseResult(predictedResult)
	if err != nil {
		return 0
	}
	if predHome == actualHome && predAway == actualAway {
		return pointsExactScoreline
	}
	if match.ResultOutcome(predHome, predAway) == match.ResultOutcome(actualHome, actualAway) {
		return pointsCorrectOutcome
	}
	return 0
}
