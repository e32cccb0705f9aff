package httpapi

import (
	"net/http"
)

type scoreJobResponseDTO struct {
	PredictionsUpdated int `json:"predictions_updated"`
}

type syncJobResponseDTO struct {
	TeamsSynced  int `json:"teams_synced"`
	TeamsSkipped int `json:"teams_skipped"`
	TeamsFailed  int `json:"teams_failed"`
	Inserted     int `json:"inserted"`
}

// RunScoreJob sweeps every played match and settles outstanding prediction
// points. Triggered by the scheduler, not by end users.
func (h *Handler) RunScoreJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunScoreJob")
	defer span.End()

	updated, err := h.scoringService.ScoreAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "score job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "score job finished", "predictions_updated", updated)
	writeSuccess(ctx, w, http.StatusOK, scoreJobResponseDTO{PredictionsUpdated: updated})
}

// RunSyncFavouritesJob imports fresh fixtures for every favourited team.
func (h *Handler) RunSyncFavouritesJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSyncFavouritesJob")
	defer span.End()

	summary, err := h.syncFavourites(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "sync favourites job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "sync favourites job finished",
		"teams_synced", summary.TeamsSynced,
		"teams_skipped", summary.TeamsSkipped,
		"teams_failed", summary.TeamsFailed,
		"inserted", summary.Inserted,
	)
	writeSuccess(ctx, w, http.StatusOK, syncJobResponseDTO{
		TeamsSynced:  summary.TeamsSynced,
		TeamsSkipped: summary.TeamsSkipped,
		TeamsFailed:  summary.TeamsFailed,
		Inserted:     summary.Inserted,
	})
}
