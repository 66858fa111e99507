package comiccatalogservice

import (
	"log/slog"

	httpadapter "inkwell/contexts/catalog/comic-catalog-service/adapters/http"
	"inkwell/contexts/catalog/comic-catalog-service/adapters/memory"
	"inkwell/contexts/catalog/comic-catalog-service/application"
	"inkwell/contexts/catalog/comic-catalog-service/domain/entities"
	"inkwell/contexts/catalog/comic-catalog-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repository  ports.Repository
	Views       ports.ViewInitializer
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repository,
		Views:  deps.Views,
		Clock:  deps.Clock,
		IDGen:  deps.IDGenerator,
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

func NewInMemoryModule(
	seedComics []entities.Comic,
	seedChapters []entities.Chapter,
	views ports.ViewInitializer,
	logger *slog.Logger,
) Module {
	store := memory.NewStore(seedComics, seedChapters)
	module := NewModule(Dependencies{
		Repository:  store,
		Views:       views,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
