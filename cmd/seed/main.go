package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/riskibarqy/prediction-league/external/footballdata"
	"github.com/riskibarqy/prediction-league/internal/config"
	"github.com/riskibarqy/prediction-league/internal/domain/league"
	"github.com/riskibarqy/prediction-league/internal/domain/team"
	"github.com/riskibarqy/prediction-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/prediction-league/internal/platform/logging"
	"github.com/riskibarqy/prediction-league/internal/platform/resilience"
)

// seed pulls competition and team reference data from football-data.org
// into Postgres so imports can resolve fixture sides against a real catalog.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if !cfg.DBEnabled {
		logger.Error("seed requires DB_ENABLED=true")
		os.Exit(1)
	}
	if !cfg.FootballDataEnabled {
		logger.Error("seed requires FOOTBALLDATA_ENABLED=true")
		os.Exit(1)
	}
	if len(cfg.FootballDataCompetitions) == 0 {
		logger.Error("no competitions configured", "hint", "set FOOTBALLDATA_COMPETITIONS")
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.DBURL)
	if err != nil {
		logger.Error("connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	client := footballdata.NewClient(footballdata.ClientConfig{
		BaseURL:    cfg.FootballDataBaseURL,
		Token:      cfg.FootballDataToken,
		Timeout:    cfg.FootballDataTimeout,
		MaxRetries: cfg.FootballDataMaxRetries,
		Logger:     logging.NewJSON(cfg.LogLevel),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FootballDataCircuitEnabled,
			FailureThreshold: cfg.FootballDataCircuitFailureCount,
			OpenTimeout:      cfg.FootballDataCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FootballDataCircuitHalfOpenMaxReq,
		},
	})

	leagueRepo := postgres.NewLeagueRepository(db)
	teamRepo := postgres.NewTeamRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	failed := 0
	for _, code := range cfg.FootballDataCompetitions {
		if err := seedCompetition(ctx, client, leagueRepo, teamRepo, code, logger); err != nil {
			logger.Error("seed competition failed", "code", code, "error", err)
			failed++
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
	logger.Info("seed finished", "competitions", len(cfg.FootballDataCompetitions))
}

func seedCompetition(
	ctx context.Context,
	client *footballdata.Client,
	leagueRepo league.Repository,
	teamRepo team.Repository,
	code string,
	logger *slog.Logger,
) error {
	comp, err := client.FetchCompetition(ctx, code)
	if err != nil {
		return err
	}

	if err := leagueRepo.Upsert(ctx, league.League{
		ID:          comp.ID,
		Name:        comp.Name,
		Country:     comp.Country,
		Competition: comp.Code,
	}); err != nil {
		return err
	}

	teams, err := client.FetchCompetitionTeams(ctx, code)
	if err != nil {
		return err
	}

	leagueID := comp.ID
	for _, item := range teams {
		err := teamRepo.Upsert(ctx, team.Team{
			ID:       item.ID,
			LeagueID: &leagueID,
			Name:     item.Name,
			LogoURL:  item.LogoURL,
			Stadium:  item.Stadium,
		})
		if err != nil {
			return err
		}
	}

	logger.Info("competition seeded", "code", code, "league_id", comp.ID, "teams", len(teams))
	return nil
}
