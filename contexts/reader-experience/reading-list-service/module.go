package readinglistservice

import (
	"log/slog"

	httpadapter "inkwell/contexts/reader-experience/reading-list-service/adapters/http"
	"inkwell/contexts/reader-experience/reading-list-service/adapters/memory"
	"inkwell/contexts/reader-experience/reading-list-service/application"
	"inkwell/contexts/reader-experience/reading-list-service/domain/entities"
	"inkwell/contexts/reader-experience/reading-list-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Chapters   ports.ChapterResolver
	Comics     ports.LikeCounter
	Clock      ports.Clock
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:     deps.Repository,
		Chapters: deps.Chapters,
		Comics:   deps.Comics,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(
	seed []entities.ReaderLists,
	chapters ports.ChapterResolver,
	comics ports.LikeCounter,
	logger *slog.Logger,
) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Repository: store,
		Chapters:   chapters,
		Comics:     comics,
		Clock:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
