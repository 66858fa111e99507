package ports

import (
	"context"
	"time"

	"inkwell/contexts/reader-experience/view-tracking-service/domain/entities"
)

type Repository interface {
	GetByComic(ctx context.Context, comicID string) (entities.ViewRecord, bool, error)
	Create(ctx context.Context, record entities.ViewRecord) error
	Save(ctx context.Context, record entities.ViewRecord) error
	ListTopViewed(ctx context.Context, limit int) ([]entities.ViewRecord, error)
}

type Clock interface {
	Now() time.Time
}
