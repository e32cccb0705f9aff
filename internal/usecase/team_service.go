package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/riskibarqy/prediction-league/internal/domain/favourite"
	"github.com/riskibarqy/prediction-league/internal/domain/match"
	"github.com/riskibarqy/prediction-league/internal/domain/team"
	"github.com/riskibarqy/prediction-league/internal/domain/teamstats"
	idgen "github.com/riskibarqy/prediction-league/internal/platform/id"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100

	// Synthetic ID allocation races against concurrent inserts picking the
	// same candidate; the store's uniqueness constraint settles it and we
	// retry a bounded number of times.
	maxSyntheticIDAttempts = 5
)

// Pagination is exact page metadata; the last page may be partial.
type Pagination struct {
	Total     int
	Page      int
	PerPage   int
	PageCount int
}

func paginate(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

func pageCount(total, perPage int) int {
	if total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}

// TeamView decorates a team with the requesting user's favourite flag.
type TeamView struct {
	Team      team.Team
	Favourite bool
}

type TeamPage struct {
	Items []TeamView
	Pagination
}

type ListTeamsInput struct {
	UserID   int64
	Page     int
	PerPage  int
	LeagueID *int64
	Search   string
}

type TeamService struct {
	teamRepo      team.Repository
	matchRepo     match.Repository
	favouriteRepo favourite.Repository
	allocator     idgen.TeamIDAllocator
	logger        *slog.Logger
}

func NewTeamService(
	teamRepo team.Repository,
	matchRepo match.Repository,
	favouriteRepo favourite.Repository,
	allocator idgen.TeamIDAllocator,
	logger *slog.Logger,
) *TeamService {
	if logger == nil {
		logger = slog.Default()
	}

	return &TeamService{
		teamRepo:      teamRepo,
		matchRepo:     matchRepo,
		favouriteRepo: favouriteRepo,
		allocator:     allocator,
		logger:        logger,
	}
}

func (s *TeamService) ListTeams(ctx context.Context, input ListTeamsInput) (TeamPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	page, perPage := paginate(input.Page, input.PerPage)
	items, total, err := s.teamRepo.List(ctx, team.ListFilter{
		LeagueID: input.LeagueID,
		Search:   strings.TrimSpace(input.Search),
		Offset:   (page - 1) * perPage,
		Limit:    perPage,
	})
	if err != nil {
		return TeamPage{}, fmt.Errorf("list teams: %w", err)
	}

	favouriteIDs, err := s.favouriteTeamIDSet(ctx, input.UserID)
	if err != nil {
		return TeamPage{}, err
	}

	views := make([]TeamView, 0, len(items))
	for _, item := range items {
		views = append(views, TeamView{Team: item, Favourite: favouriteIDs[item.ID]})
	}

	return TeamPage{
		Items: views,
		Pagination: Pagination{
			Total:     total,
			Page:      page,
			PerPage:   perPage,
			PageCount: pageCount(total, perPage),
		},
	}, nil
}

// SearchOrAddTeam returns the team with the exact given name, creating it
// with a synthetic negative ID when absent. The added flag reports whether a
// row was created.
func (s *TeamService) SearchOrAddTeam(ctx context.Context, userID int64, name string) (TeamView, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.SearchOrAddTeam")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return TeamView{}, false, fmt.Errorf("%w: team_name is required", ErrInvalidInput)
	}

	existing, exists, err := s.teamRepo.GetByName(ctx, name)
	if err != nil {
		return TeamView{}, false, fmt.Errorf("get team by name: %w", err)
	}
	if exists {
		favourited, err := s.favouriteRepo.Exists(ctx, userID, existing.ID)
		if err != nil {
			return TeamView{}, false, fmt.Errorf("check favourite: %w", err)
		}
		return TeamView{Team: existing, Favourite: favourited}, false, nil
	}

	for attempt := 0; attempt < maxSyntheticIDAttempts; attempt++ {
		candidate, err := s.allocator.NextTeamID()
		if err != nil {
			return TeamView{}, false, fmt.Errorf("allocate synthetic team id: %w", err)
		}

		created := team.Team{ID: candidate, Name: name}
		err = s.teamRepo.Create(ctx, created)
		if err == nil {
			s.logger.InfoContext(ctx, "user-added team created", "team_id", candidate, "name", name)
			return TeamView{Team: created}, true, nil
		}
		if !errors.Is(err, team.ErrDuplicate) {
			return TeamView{}, false, fmt.Errorf("create team: %w", err)
		}

		// A name collision means a concurrent caller won the race for the
		// same team; an ID collision just means an unlucky candidate.
		if _, exists, getErr := s.teamRepo.GetByName(ctx, name); getErr == nil && exists {
			return TeamView{}, false, fmt.Errorf("%w: team %q already exists", ErrConflict, name)
		}
	}

	return TeamView{}, false, fmt.Errorf("%w: could not allocate a free synthetic team id", ErrConflict)
}

func (s *TeamService) ListMatchesForTeam(ctx context.Context, teamID int64) ([]MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListMatchesForTeam")
	defer span.End()

	matches, err := s.matchRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list matches for team: %w", err)
	}

	return buildMatchViews(ctx, s.teamRepo, matches)
}

func (s *TeamService) TeamStats(ctx context.Context, teamID int64) (teamstats.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.TeamStats")
	defer span.End()

	matches, err := s.matchRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return teamstats.Record{}, fmt.Errorf("list matches for team stats: %w", err)
	}

	return teamstats.Compute(teamID, matches), nil
}

func (s *TeamService) favouriteTeamIDSet(ctx context.Context, userID int64) (map[int64]bool, error) {
	ids, err := s.favouriteRepo.ListTeamIDsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favourite team ids: %w", err)
	}

	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
