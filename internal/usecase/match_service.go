package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/prediction-league/internal/domain/match"
	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
	"github.com/riskibarqy/prediction-league/internal/domain/team"
)

// MatchView resolves team IDs to display names; a nil side renders as an
// empty name so unmatched fixtures stay visible.
type MatchView struct {
	Match        match.Match
	HomeTeamName string
	AwayTeamName string
}

type MatchPage struct {
	Items []MatchView
	Pagination
}

type ListMatchesInput struct {
	Page     int
	PerPage  int
	LeagueID *int64
	TeamID   *int64
}

type MatchService struct {
	matchRepo      match.Repository
	teamRepo       team.Repository
	predictionRepo prediction.Repository
}

func NewMatchService(matchRepo match.Repository, teamRepo team.Repository, predictionRepo prediction.Repository) *MatchService {
	return &MatchService{
		matchRepo:      matchRepo,
		teamRepo:       teamRepo,
		predictionRepo: predictionRepo,
	}
}

func (s *MatchService) ListMatches(ctx context.Context, input ListMatchesInput) (MatchPage, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	page, perPage := paginate(input.Page, input.PerPage)
	matches, total, err := s.matchRepo.List(ctx, match.ListFilter{
		LeagueID: input.LeagueID,
		TeamID:   input.TeamID,
		Offset:   (page - 1) * perPage,
		Limit:    perPage,
	})
	if err != nil {
		return MatchPage{}, fmt.Errorf("list matches: %w", err)
	}

	views, err := buildMatchViews(ctx, s.teamRepo, matches)
	if err != nil {
		return MatchPage{}, err
	}

	return MatchPage{
		Items: views,
		Pagination: Pagination{
			Total:     total,
			Page:      page,
			PerPage:   perPage,
			PageCount: pageCount(total, perPage),
		},
	}, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID int64) (MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	found, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return MatchView{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return MatchView{}, fmt.Errorf("%w: match %d", ErrNotFound, matchID)
	}

	views, err := buildMatchViews(ctx, s.teamRepo, []match.Match{found})
	if err != nil {
		return MatchView{}, err
	}
	return views[0], nil
}

// ListRelevantMatches returns matches where both sides are catalogued teams
// and nobody has predicted yet. The no-prediction check spans all users, so
// one user predicting removes the match from everyone's relevant list.
func (s *MatchService) ListRelevantMatches(ctx context.Context) ([]MatchView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListRelevantMatches")
	defer span.End()

	teams, err := s.teamRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	knownTeams := make(map[int64]bool, len(teams))
	for _, t := range teams {
		knownTeams[t.ID] = true
	}

	predictedIDs, err := s.predictionRepo.ListPredictedMatchIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list predicted match ids: %w", err)
	}
	predicted := make(map[int64]bool, len(predictedIDs))
	for _, id := range predictedIDs {
		predicted[id] = true
	}

	matches, err := s.matchRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	relevant := matches[:0:0]
	for _, m := range matches {
		if predicted[m.ID] {
			continue
		}
		if m.HomeTeamID != nil && knownTeams[*m.HomeTeamID] &&
			m.AwayTeamID != nil && knownTeams[*m.AwayTeamID] {
			relevant = append(relevant, m)
		}
	}

	return buildMatchViews(ctx, s.teamRepo, relevant)
}

func buildMatchViews(ctx context.Context, teamRepo team.Repository, matches []match.Match) ([]MatchView, error) {
	teams, err := teamRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams for match views: %w", err)
	}

	names := make(map[int64]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}

	views := make([]MatchView, 0, len(matches))
	for _, m := range matches {
		view := MatchView{Match: m}
		if m.HomeTeamID != nil {
			view.HomeTeamName = names[*m.HomeTeamID]
		}
		if m.AwayTeamID != nil {
			view.AwayTeamName = names[*m.AwayTeamID]
		}
		views = append(views, view)
	}
	return views, nil
}
