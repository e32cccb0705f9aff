package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/riskibarqy/prediction-league/internal/domain/favourite"
	"github.com/riskibarqy/prediction-league/internal/domain/team"
)

// FavouriteService manages per-user favourite team marks. Marks are
// permissive: unknown team IDs are accepted so a favourite can outlive a
// catalog resync, and both add and remove are idempotent.
type FavouriteService struct {
	favouriteRepo favourite.Repository
	teamRepo      team.Repository
	logger        *slog.Logger
}

func NewFavouriteService(favouriteRepo favourite.Repository, teamRepo team.Repository, logger *slog.Logger) *FavouriteService {
	if logger == nil {
		logger = slog.Default()
	}

	return &FavouriteService{
		favouriteRepo: favouriteRepo,
		teamRepo:      teamRepo,
		logger:        logger,
	}
}

func (s *FavouriteService) AddFavourite(ctx context.Context, userID, teamID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FavouriteService.AddFavourite")
	defer span.End()

	if teamID == 0 {
		return fmt.Errorf("%w: team_id is required", ErrInvalidInput)
	}

	if _, exists, err := s.teamRepo.GetByID(ctx, teamID); err == nil && !exists {
		s.logger.WarnContext(ctx, "favourite added for uncatalogued team", "user_id", userID, "team_id", teamID)
	}

	if err := s.favouriteRepo.Add(ctx, userID, teamID); err != nil {
		return fmt.Errorf("add favourite: %w", err)
	}
	return nil
}

func (s *FavouriteService) RemoveFavourite(ctx context.Context, userID, teamID int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.FavouriteService.RemoveFavourite")
	defer span.End()

	if err := s.favouriteRepo.Remove(ctx, userID, teamID); err != nil {
		return fmt.Errorf("remove favourite: %w", err)
	}
	return nil
}

// ListFavourites resolves the user's marks against the catalog. Marks
// pointing at teams no longer catalogued are skipped, not deleted.
func (s *FavouriteService) ListFavourites(ctx context.Context, userID int64) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FavouriteService.ListFavourites")
	defer span.End()

	ids, err := s.favouriteRepo.ListTeamIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favourite team ids: %w", err)
	}

	teams := make([]team.Team, 0, len(ids))
	for _, id := range ids {
		found, exists, err := s.teamRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get favourite team: %w", err)
		}
		if exists {
			teams = append(teams, found)
		}
	}
	return teams, nil
}
