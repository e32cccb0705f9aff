package httpapi

import (
	"net/http"

	"github.com/riskibarqy/prediction-league/internal/usecase"
)

type addPredictionRequest struct {
	MatchID int64 `json:"match_id" validate:"required,gt=0"`
	// Pointers so an absent score is rejected instead of reading as 0-0.
	HomeScore *int `json:"home_score" validate:"required,gte=0,lte=99"`
	AwayScore *int `json:"away_score" validate:"required,gte=0,lte=99"`
}

type predictionDTO struct {
	ID              int64    `json:"id"`
	MatchID         int64    `json:"match_id"`
	PredictedResult string   `json:"predicted_result"`
	PointsAwarded   int      `json:"points_awarded"`
	Match           matchDTO `json:"match"`
	Correct         bool     `json:"correct"`
}

type leaderboardEntryDTO struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}

type userStatsDTO struct {
	UserID           int64  `json:"user_id"`
	Username         string `json:"username"`
	TotalPredictions int    `json:"total_predictions"`
	ExactPredictions int    `json:"exact_predictions"`
	TotalPoints      int    `json:"total_points"`
}

func predictionViewToDTO(view usecase.PredictionView) predictionDTO {
	return predictionDTO{
		ID:              view.Prediction.ID,
		MatchID:         view.Prediction.MatchID,
		PredictedResult: view.Prediction.PredictedResult,
		PointsAwarded:   view.Prediction.PointsAwarded,
		Match:           matchViewToDTO(view.Match),
		Correct:         view.Correct,
	}
}

func (h *Handler) AddPrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPrediction")
	defer span.End()

	userID, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req addPredictionRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.predictionService.AddPrediction(ctx, userID, req.MatchID, *req.HomeScore, *req.AwayScore)
	if err != nil {
		h.logger.WarnContext(ctx, "add prediction failed", "match_id", req.MatchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, predictionDTO{
		ID:              created.ID,
		MatchID:         created.MatchID,
		PredictedResult: created.PredictedResult,
		PointsAwarded:   created.PointsAwarded,
	})
}

func (h *Handler) ListPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPredictions")
	defer span.End()

	userID, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	views, err := h.predictionService.ListPredictions(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "list predictions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]predictionDTO, 0, len(views))
	for _, view := range views {
		items = append(items, predictionViewToDTO(view))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Leaderboard")
	defer span.End()

	entries, err := h.predictionService.Leaderboard(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leaderboardEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, leaderboardEntryDTO{
			UserID:   entry.UserID,
			Username: entry.Username,
			Score:    entry.Score,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUserStats")
	defer span.End()

	userID, err := parsePathInt64(r, "userID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.predictionService.UserStats(ctx, userID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userStatsDTO{
		UserID:           stats.UserID,
		Username:         stats.Username,
		TotalPredictions: stats.TotalPredictions,
		ExactPredictions: stats.ExactPredictions,
		TotalPoints:      stats.TotalPoints,
	})
}
