package viewtrackingservice

import (
	"log/slog"

	httpadapter "inkwell/contexts/reader-experience/view-tracking-service/adapters/http"
	"inkwell/contexts/reader-experience/view-tracking-service/adapters/memory"
	"inkwell/contexts/reader-experience/view-tracking-service/application"
	"inkwell/contexts/reader-experience/view-tracking-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository: store,
		Clock:      store,
		Logger:     logger,
	})
	module.Store = store
	return module
}
