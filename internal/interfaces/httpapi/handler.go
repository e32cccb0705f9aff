package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/riskibarqy/prediction-league/internal/usecase"
)

type Handler struct {
	authService       *usecase.AuthService
	leagueService     *usecase.LeagueService
	teamService       *usecase.TeamService
	matchService      *usecase.MatchService
	predictionService *usecase.PredictionService
	favouriteService  *usecase.FavouriteService
	ingestionService  *usecase.IngestionService
	scoringService    *usecase.ScoringService
	syncFavourites    func(ctx context.Context) (usecase.SyncSummary, error)
	logger            *slog.Logger
	validator         *validator.Validate
}

func NewHandler(
	authService *usecase.AuthService,
	leagueService *usecase.LeagueService,
	teamService *usecase.TeamService,
	matchService *usecase.MatchService,
	predictionService *usecase.PredictionService,
	favouriteService *usecase.FavouriteService,
	ingestionService *usecase.IngestionService,
	scoringService *usecase.ScoringService,
	syncFavourites func(ctx context.Context) (usecase.SyncSummary, error),
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		authService:       authService,
		leagueService:     leagueService,
		teamService:       teamService,
		matchService:      matchService,
		predictionService: predictionService,
		favouriteService:  favouriteService,
		ingestionService:  ingestionService,
		scoringService:    scoringService,
		syncFavourites:    syncFavourites,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(r *http.Request, payload any) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func parsePathInt64(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

func parseQueryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}

func parseQueryInt64Ptr(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return &value, nil
}

func requirePrincipal(ctx context.Context) (int64, error) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		return 0, fmt.Errorf("%w: missing authenticated principal", usecase.ErrUnauthorized)
	}
	return principal.UserID, nil
}
