package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	comiccatalog "inkwell/contexts/catalog/comic-catalog-service"
	cataloglocal "inkwell/contexts/catalog/comic-catalog-service/adapters/local"
	catalogpostgres "inkwell/contexts/catalog/comic-catalog-service/adapters/postgres"
	chapteraccess "inkwell/contexts/reader-experience/chapter-access-service"
	accesslocal "inkwell/contexts/reader-experience/chapter-access-service/adapters/local"
	progression "inkwell/contexts/reader-experience/progression-service"
	progressionpostgres "inkwell/contexts/reader-experience/progression-service/adapters/postgres"
	progressionentities "inkwell/contexts/reader-experience/progression-service/domain/entities"
	readinglist "inkwell/contexts/reader-experience/reading-list-service"
	listslocal "inkwell/contexts/reader-experience/reading-list-service/adapters/local"
	listspostgres "inkwell/contexts/reader-experience/reading-list-service/adapters/postgres"
	viewtracking "inkwell/contexts/reader-experience/view-tracking-service"
	viewpostgres "inkwell/contexts/reader-experience/view-tracking-service/adapters/postgres"
	"inkwell/internal/platform/config"
	"inkwell/internal/platform/db"
	"inkwell/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

// defaultAchievements is the dev seed for the in-memory achievement
// directory; production reads the achievements table.
var defaultAchievements = []string{"first-read", "bookworm", "night-owl"}

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	var (
		pg      *db.Postgres
		modules httpserver.Modules
	)
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		logger.Warn("no postgres dsn configured, using in-memory stores",
			"event", "bootstrap_inmemory_fallback",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		modules = buildInMemoryModules(logger)
	} else {
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		modules = buildPostgresModules(pg, logger)
	}

	server := httpserver.New(modules, logger, httpserver.Options{
		Addr:           normalizeAddr(cfg.HTTPPort),
		JWTSecret:      cfg.JWTSecret,
		HistoryCapture: cfg.EnableHistoryCapture,
		SwaggerUI:      cfg.EnableSwaggerUI,
	})
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func buildPostgresModules(pg *db.Postgres, logger *slog.Logger) httpserver.Modules {
	viewsModule := viewtracking.NewModule(viewtracking.Dependencies{
		Repository: viewpostgres.NewRepository(pg.DB, logger),
		Clock:      viewpostgres.SystemClock{},
		Logger:     logger,
	})

	catalogModule := comiccatalog.NewModule(comiccatalog.Dependencies{
		Repository:  catalogpostgres.NewRepository(pg.DB, logger),
		Views:       cataloglocal.ViewTrackingInitializer{Views: viewsModule.Service},
		Clock:       catalogpostgres.SystemClock{},
		IDGenerator: catalogpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	progressionRepo := progressionpostgres.NewRepository(pg.DB, logger)
	progressionModule := progression.NewModule(progression.Dependencies{
		Repository:   progressionRepo,
		Achievements: progressionRepo,
		Levels:       progressionentities.DefaultLevelTable(),
		Clock:        progressionpostgres.SystemClock{},
		Logger:       logger,
	})

	accessModule := chapteraccess.NewModule(chapteraccess.Dependencies{
		Chapters:    accesslocal.CatalogChapterResolver{Catalog: catalogModule.Service},
		Readers:     accesslocal.ProgressionReaderDirectory{Progression: progressionModule.Service},
		Progression: accesslocal.ProgressionGateway{Progression: progressionModule.Service},
		Views:       accesslocal.ViewRecorder{Views: viewsModule.Service},
		Logger:      logger,
	})

	listsModule := readinglist.NewModule(readinglist.Dependencies{
		Repository: listspostgres.NewRepository(pg.DB, logger),
		Chapters:   listslocal.CatalogChapterResolver{Catalog: catalogModule.Service},
		Comics:     listslocal.CatalogLikeCounter{Catalog: catalogModule.Service},
		Clock:      listspostgres.SystemClock{},
		Logger:     logger,
	})

	return httpserver.Modules{
		Catalog:     catalogModule,
		Views:       viewsModule,
		Progression: progressionModule,
		Access:      accessModule,
		Lists:       listsModule,
	}
}

func buildInMemoryModules(logger *slog.Logger) httpserver.Modules {
	viewsModule := viewtracking.NewInMemoryModule(logger)

	catalogModule := comiccatalog.NewInMemoryModule(
		nil,
		nil,
		cataloglocal.ViewTrackingInitializer{Views: viewsModule.Service},
		logger,
	)

	progressionModule := progression.NewInMemoryModule(nil, defaultAchievements, logger)

	accessModule := chapteraccess.NewModule(chapteraccess.Dependencies{
		Chapters:    accesslocal.CatalogChapterResolver{Catalog: catalogModule.Service},
		Readers:     accesslocal.ProgressionReaderDirectory{Progression: progressionModule.Service},
		Progression: accesslocal.ProgressionGateway{Progression: progressionModule.Service},
		Views:       accesslocal.ViewRecorder{Views: viewsModule.Service},
		Logger:      logger,
	})

	listsModule := readinglist.NewInMemoryModule(
		nil,
		listslocal.CatalogChapterResolver{Catalog: catalogModule.Service},
		listslocal.CatalogLikeCounter{Catalog: catalogModule.Service},
		logger,
	)

	return httpserver.Modules{
		Catalog:     catalogModule,
		Views:       viewsModule,
		Progression: progressionModule,
		Access:      accessModule,
		Lists:       listsModule,
	}
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
