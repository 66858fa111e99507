package progressionservice

import (
	"log/slog"

	httpadapter "inkwell/contexts/reader-experience/progression-service/adapters/http"
	"inkwell/contexts/reader-experience/progression-service/adapters/memory"
	"inkwell/contexts/reader-experience/progression-service/application"
	"inkwell/contexts/reader-experience/progression-service/domain/entities"
	"inkwell/contexts/reader-experience/progression-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repository   ports.Repository
	Achievements ports.AchievementDirectory
	Levels       entities.LevelTable
	Clock        ports.Clock
	Logger       *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:         deps.Repository,
		Achievements: deps.Achievements,
		Levels:       deps.Levels,
		Clock:        deps.Clock,
		Logger:       deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(seed []entities.ReaderProgress, achievementIDs []string, logger *slog.Logger) Module {
	store := memory.NewStore(seed, achievementIDs)
	module := NewModule(Dependencies{
		Repository:   store,
		Achievements: store,
		Levels:       entities.DefaultLevelTable(),
		Clock:        store,
		Logger:       logger,
	})
	module.Store = store
	return module
}
