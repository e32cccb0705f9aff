package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/prediction-league/internal/domain/favourite"
	"github.com/riskibarqy/prediction-league/internal/domain/match"
	"github.com/riskibarqy/prediction-league/internal/domain/team"
	idgen "github.com/riskibarqy/prediction-league/internal/platform/id"
)

const defaultSyncMaxWorkers = 4

// ImportResult reports what an import did with the provider payload. A
// fixture that is fetched but not inserted was either unresolvable or
// already stored.
type ImportResult struct {
	Inserted   int
	TotalFound int
}

// SyncSummary aggregates per-team imports from a favourites sweep.
type SyncSummary struct {
	TeamsSynced  int
	TeamsSkipped int
	TeamsFailed  int
	Inserted     int
}

// IngestionService pulls fixtures from the external provider and reconciles
// them into the match catalog. Provider failures are absorbed into zero
// fixtures so a flaky upstream degrades imports instead of failing them;
// callers cannot tell "no fixtures" from "provider unreachable".
type IngestionService struct {
	provider       FixtureProvider
	teamRepo       team.Repository
	matchRepo      match.Repository
	matcher        team.Matcher
	scoring        *ScoringService
	syncMaxWorkers int
	logger         *slog.Logger
}

func NewIngestionService(
	provider FixtureProvider,
	teamRepo team.Repository,
	matchRepo match.Repository,
	matcher team.Matcher,
	scoring *ScoringService,
	syncMaxWorkers int,
	logger *slog.Logger,
) *IngestionService {
	if matcher == nil {
		matcher = team.NewSubstringMatcher()
	}
	if syncMaxWorkers < 1 {
		syncMaxWorkers = defaultSyncMaxWorkers
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &IngestionService{
		provider:       provider,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		matcher:        matcher,
		scoring:        scoring,
		syncMaxWorkers: syncMaxWorkers,
		logger:         logger,
	}
}

// ImportMatchesForTeam fetches the provider's fixture list for the named
// team and stores the fixtures whose sides both resolve against the catalog
// and that are not already present. Fixtures with a result are scored right
// after insert.
func (s *IngestionService) ImportMatchesForTeam(ctx context.Context, teamName string) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.ImportMatchesForTeam")
	defer span.End()

	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return ImportResult{}, fmt.Errorf("%w: team_name is required", ErrInvalidInput)
	}

	found, exists, err := s.teamRepo.GetByName(ctx, teamName)
	if err != nil {
		return ImportResult{}, fmt.Errorf("get team by name: %w", err)
	}
	if !exists {
		return ImportResult{}, fmt.Errorf("%w: team %q", ErrNotFound, teamName)
	}

	return s.importForTeam(ctx, found)
}

func (s *IngestionService) importForTeam(ctx context.Context, item team.Team) (ImportResult, error) {
	fixtures, err := s.provider.FetchMatchesForTeam(ctx, item.ID, "")
	if err != nil {
		s.logger.WarnContext(ctx, "fixture fetch failed, treating as zero fixtures",
			"team_id", item.ID, "team_name", item.Name, "error", err)
		fixtures = nil
	}

	catalog, err := s.teamRepo.ListAll(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("list teams: %w", err)
	}

	result := ImportResult{TotalFound: len(fixtures)}
	for _, fixture := range fixtures {
		home, homeOK := s.matcher.Match(fixture.HomeTeam, catalog)
		away, awayOK := s.matcher.Match(fixture.AwayTeam, catalog)
		if !homeOK || !awayOK {
			continue
		}

		exists, err := s.matchRepo.ExistsByKey(ctx, home.ID, away.ID, fixture.Date)
		if err != nil {
			return result, fmt.Errorf("check existing match: %w", err)
		}
		if exists {
			continue
		}

		homeID, awayID := home.ID, away.ID
		id, err := s.matchRepo.Create(ctx, match.Match{
			HomeTeamID: &homeID,
			AwayTeamID: &awayID,
			Date:       fixture.Date,
			Result:     fixture.Result,
		})
		if err != nil {
			if errors.Is(err, match.ErrDuplicate) {
				continue
			}
			return result, fmt.Errorf("create match: %w", err)
		}
		result.Inserted++

		if fixture.Result != nil && s.scoring != nil {
			if _, err := s.scoring.ScoreMatch(ctx, id); err != nil {
				return result, err
			}
		}
	}

	s.logger.InfoContext(ctx, "fixture import finished",
		"team_id", item.ID,
		"total_found", result.TotalFound,
		"inserted", result.Inserted,
	)
	return result, nil
}

// SyncFavouriteTeams imports fixtures for every team any user has marked as
// a favourite. User-added teams have no provider identity and are skipped.
// Imports run on a bounded worker pool; one team failing does not stop the
// sweep.
func (s *IngestionService) SyncFavouriteTeams(ctx context.Context, favouriteRepo favourite.Repository) (SyncSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.SyncFavouriteTeams")
	defer span.End()

	teamIDs, err := favouriteRepo.ListDistinctTeamIDs(ctx)
	if err != nil {
		return SyncSummary{}, fmt.Errorf("list favourite team ids: %w", err)
	}

	pool, err := ants.NewPool(s.syncMaxWorkers)
	if err != nil {
		return SyncSummary{}, fmt.Errorf("create sync worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		summary SyncSummary
	)
	for _, teamID := range teamIDs {
		if idgen.IsSynthetic(teamID) {
			summary.TeamsSkipped++
			continue
		}

		found, exists, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil || !exists {
			summary.TeamsFailed++
			s.logger.WarnContext(ctx, "favourite team missing from catalog", "team_id", teamID, "error", err)
			continue
		}

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			imported, err := s.importForTeam(ctx, found)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.TeamsFailed++
				s.logger.WarnContext(ctx, "favourite team sync failed", "team_id", found.ID, "error", err)
				return
			}
			summary.TeamsSynced++
			summary.Inserted += imported.Inserted
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			summary.TeamsFailed++
			mu.Unlock()
			s.logger.WarnContext(ctx, "favourite team sync submit failed", "team_id", teamID, "error", submitErr)
		}
	}
	wg.Wait()

	s.logger.InfoContext(ctx, "favourite team sync finished",
		"synced", summary.TeamsSynced,
		"skipped", summary.TeamsSkipped,
		"failed", summary.TeamsFailed,
		"matches_inserted", summary.Inserted,
	)
	return summary, nil
}
