package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mittlag/flaggstats/internal/config"
	"github.com/mittlag/flaggstats/internal/domain/game"
	"github.com/mittlag/flaggstats/internal/domain/schema"
	"github.com/mittlag/flaggstats/internal/domain/team"
	"github.com/mittlag/flaggstats/internal/infrastructure/repository/memory"
	"github.com/mittlag/flaggstats/internal/infrastructure/repository/postgres"
	"github.com/mittlag/flaggstats/internal/interfaces/httpapi"
	"github.com/mittlag/flaggstats/internal/platform/cache"
	"github.com/mittlag/flaggstats/internal/platform/logging"
	"github.com/mittlag/flaggstats/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	var (
		gameRepo   game.Repository
		teamRepo   team.Repository
		schemaRepo schema.Repository
	)

	if cfg.DBURL != "" {
		db, err := openDB(cfg)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		gameRepo = postgres.NewGameRepository(db)
		teamRepo = postgres.NewTeamRepository(db)
		schemaRepo = postgres.NewSchemaRepository(db)
		logger.Info("using postgres repositories", "db", dbNameFromURL(cfg.DBURL))
	} else {
		gameRepo = memory.NewGameRepository()
		teamRepo = memory.NewTeamRepository(memory.SeedTeams())
		schemaRepo = memory.NewSchemaRepository()
		logger.Info("using in-memory repositories", "reason", "DB_URL not set")
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	usecaseLogger := logging.Default()

	handler := httpapi.NewHandler(
		usecase.NewImportService(gameRepo, usecaseLogger),
		usecase.NewGameService(gameRepo, teamRepo, store),
		usecase.NewStandingsService(gameRepo, teamRepo, store),
		usecase.NewDiagnosticsService(schemaRepo),
		logger,
		cfg.MaxUploadBytes,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
