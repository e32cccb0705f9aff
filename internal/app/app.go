package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.12.0"

	"github.com/riskibarqy/prediction-league/external/footballdata"
	"github.com/riskibarqy/prediction-league/internal/config"
	"github.com/riskibarqy/prediction-league/internal/domain/favourite"
	"github.com/riskibarqy/prediction-league/internal/domain/league"
	"github.com/riskibarqy/prediction-league/internal/domain/match"
	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
	"github.com/riskibarqy/prediction-league/internal/domain/team"
	"github.com/riskibarqy/prediction-league/internal/domain/user"
	"github.com/riskibarqy/prediction-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/prediction-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/prediction-league/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/prediction-league/internal/platform/id"
	"github.com/riskibarqy/prediction-league/internal/platform/logging"
	"github.com/riskibarqy/prediction-league/internal/platform/resilience"
	"github.com/riskibarqy/prediction-league/internal/usecase"
)

type repositories struct {
	users       user.Repository
	leagues     league.Repository
	teams       team.Repository
	matches     match.Repository
	predictions prediction.Repository
	favourites  favourite.Repository
}

func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	repos, db, err := buildRepositories(cfg)
	if err != nil {
		return nil, err
	}

	authSvc := usecase.NewAuthService(repos.users, cfg.JWTSecret, cfg.JWTTTL, logger)
	leagueSvc := usecase.NewLeagueService(repos.leagues)
	teamSvc := usecase.NewTeamService(repos.teams, repos.matches, repos.favourites, idgen.NewRandomTeamIDAllocator(), logger)
	matchSvc := usecase.NewMatchService(repos.matches, repos.teams, repos.predictions)
	predictionSvc := usecase.NewPredictionService(repos.predictions, repos.matches, repos.users, matchSvc, logger)
	favouriteSvc := usecase.NewFavouriteService(repos.favourites, repos.teams, logger)
	scoringSvc := usecase.NewScoringService(repos.predictions, repos.matches, logger)
	ingestionSvc := usecase.NewIngestionService(
		buildFixtureProvider(cfg),
		repos.teams,
		repos.matches,
		team.NewSubstringMatcher(),
		scoringSvc,
		cfg.SyncMaxWorkers,
		logger,
	)

	handler := httpapi.NewHandler(
		authSvc,
		leagueSvc,
		teamSvc,
		matchSvc,
		predictionSvc,
		favouriteSvc,
		ingestionSvc,
		scoringSvc,
		func(ctx context.Context) (usecase.SyncSummary, error) {
			return ingestionSvc.SyncFavouriteTeams(ctx, repos.favourites)
		},
		logger,
	)
	router := httpapi.NewRouter(handler, authSvc, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	if db != nil {
		server.RegisterOnShutdown(func() { _ = db.Close() })
	}

	return server, nil
}

func buildRepositories(cfg config.Config) (repositories, *sqlx.DB, error) {
	if !cfg.DBEnabled {
		teamRepo := memory.NewTeamRepository(memory.SeedTeams())
		return repositories{
			users:       memory.NewUserRepository(nil),
			leagues:     memory.NewLeagueRepository(memory.SeedLeagues()),
			teams:       teamRepo,
			matches:     memory.NewMatchRepository(memory.SeedMatches(), teamRepo),
			predictions: memory.NewPredictionRepository(nil),
			favourites:  memory.NewFavouriteRepository(),
		}, nil, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, nil, err
	}

	return repositories{
		users:       postgres.NewUserRepository(db),
		leagues:     postgres.NewLeagueRepository(db),
		teams:       postgres.NewTeamRepository(db),
		matches:     postgres.NewMatchRepository(db),
		predictions: postgres.NewPredictionRepository(db),
		favourites:  postgres.NewFavouriteRepository(db),
	}, db, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return db, nil
}

func buildFixtureProvider(cfg config.Config) usecase.FixtureProvider {
	if !cfg.FootballDataEnabled {
		return disabledFixtureProvider{}
	}

	return footballdata.NewClient(footballdata.ClientConfig{
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
}

// disabledFixtureProvider stands in when no provider token is configured.
// Imports then find zero fixtures instead of failing outright.
type disabledFixtureProvider struct{}

func (disabledFixtureProvider) FetchMatchesForTeam(context.Context, int64, string) ([]usecase.ExternalFixture, error) {
	return nil, fmt.Errorf("fixture provider disabled: FOOTBALLDATA_ENABLED=false")
}
