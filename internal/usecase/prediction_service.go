package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/riskibarqy/prediction-league/internal/domain/match"
	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
	"github.com/riskibarqy/prediction-league/internal/domain/user"
)

// PredictionView pairs a prediction with its match for display; Correct is
// true only when the match finished with the exact predicted scoreline.
type PredictionView struct {
	Prediction prediction.Prediction
	Match      MatchView
	Correct    bool
}

type LeaderboardEntry struct {
	UserID   int64
	Username string
	Score    int
}

type UserStats struct {
	UserID           int64
	Username         string
	TotalPredictions int
	ExactPredictions int
	TotalPoints      int
}

type PredictionService struct {
	predictionRepo prediction.Repository
	matchRepo      match.Repository
	userRepo       user.Repository
	matchService   *MatchService
	logger         *slog.Logger
}

func NewPredictionService(
	predictionRepo prediction.Repository,
	matchRepo match.Repository,
	userRepo user.Repository,
	matchService *MatchService,
	logger *slog.Logger,
) *PredictionService {
	if logger == nil {
		logger = slog.Default()
	}

	return &PredictionService{
		predictionRepo: predictionRepo,
		matchRepo:      matchRepo,
		userRepo:       userRepo,
		matchService:   matchService,
		logger:         logger,
	}
}

// AddPrediction records the user's scoreline for a match. One prediction per
// user per match; duplicates surface as ErrConflict. An unknown match is an
// input error, not a missing resource.
func (s *PredictionService) AddPrediction(ctx context.Context, userID, matchID int64, homeScore, awayScore int) (prediction.Prediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.AddPrediction")
	defer span.End()

	if matchID <= 0 {
		return prediction.Prediction{}, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}
	if homeScore < 0 || awayScore < 0 {
		return prediction.Prediction{}, fmt.Errorf("%w: scores must be non-negative", ErrInvalidInput)
	}

	_, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return prediction.Prediction{}, fmt.Errorf("%w: match %d does not exist", ErrInvalidInput, matchID)
	}

	created := prediction.Prediction{
		UserID:          userID,
		MatchID:         matchID,
		PredictedResult: match.FormatResult(homeScore, awayScore),
	}
	id, err := s.predictionRepo.Create(ctx, created)
	if err != nil {
		if errors.Is(err, prediction.ErrDuplicate) {
			return prediction.Prediction{}, fmt.Errorf("%w: prediction for match %d already exists", ErrConflict, matchID)
		}
		return prediction.Prediction{}, fmt.Errorf("create prediction: %w", err)
	}
	created.ID = id

	s.logger.InfoContext(ctx, "prediction recorded", "user_id", userID, "match_id", matchID)
	return created, nil
}

func (s *PredictionService) ListPredictions(ctx context.Context, userID int64) ([]PredictionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.ListPredictions")
	defer span.End()

	predictions, err := s.predictionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}

	views := make([]PredictionView, 0, len(predictions))
	for _, p := range predictions {
		view := PredictionView{Prediction: p}
		matchView, err := s.matchService.GetMatch(ctx, p.MatchID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		if err == nil {
			view.Match = matchView
			view.Correct = matchView.Match.Played() &&
				matchView.Match.Result != nil &&
				*matchView.Match.Result == p.PredictedResult
		}
		views = append(views, view)
	}

	return views, nil
}

// Leaderboard ranks every user by total awarded points, highest first; users
// with no predictions appear with zero. Ties break by user ID for a stable
// order.
func (s *PredictionService) Leaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Leaderboard")
	defer span.End()

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	points, err := s.predictionRepo.SumPointsByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum points by user: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, LeaderboardEntry{
			UserID:   u.ID,
			Username: u.Username,
			Score:    points[u.ID],
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].UserID < entries[j].UserID
	})

	return entries, nil
}

func (s *PredictionService) UserStats(ctx context.Context, userID int64) (UserStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.UserStats")
	defer span.End()

	found, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return UserStats{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return UserStats{}, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	views, err := s.ListPredictions(ctx, userID)
	if err != nil {
		return UserStats{}, err
	}

	stats := UserStats{UserID: found.ID, Username: found.Username, TotalPredictions: len(views)}
	for _, v := range views {
		stats.TotalPoints += v.Prediction.PointsAwarded
		if v.Correct {
			stats.ExactPredictions++
		}
	}
	return stats, nil
}
