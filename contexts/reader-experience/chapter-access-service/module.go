package chapteraccessservice

import (
	"log/slog"

	httpadapter "inkwell/contexts/reader-experience/chapter-access-service/adapters/http"
	"inkwell/contexts/reader-experience/chapter-access-service/adapters/memory"
	"inkwell/contexts/reader-experience/chapter-access-service/application"
	"inkwell/contexts/reader-experience/chapter-access-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
}

type Dependencies struct {
	Chapters    ports.ChapterResolver
	Readers     ports.ReaderDirectory
	Progression ports.ProgressionGateway
	Views       ports.ViewRecorder
	Serializer  ports.UserSerializer

	FreeReadPoints int
	VIPReadPoints  int
	VIPRubyCost    int

	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	serializer := deps.Serializer
	if serializer == nil {
		serializer = memory.NewKeyedLock()
	}
	service := application.Service{
		Chapters:       deps.Chapters,
		Readers:        deps.Readers,
		Progression:    deps.Progression,
		Views:          deps.Views,
		Serializer:     serializer,
		FreeReadPoints: deps.FreeReadPoints,
		VIPReadPoints:  deps.VIPReadPoints,
		VIPRubyCost:    deps.VIPRubyCost,
		Logger:         deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}
