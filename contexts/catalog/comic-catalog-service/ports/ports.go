package ports

import (
	"context"
	"time"

	"inkwell/contexts/catalog/comic-catalog-service/domain/entities"
)

type Repository interface {
	GetComic(ctx context.Context, comicID string) (entities.Comic, error)
	GetComicBySlug(ctx context.Context, slug string) (entities.Comic, error)
	SlugTaken(ctx context.Context, slug string) (bool, error)
	CreateComic(ctx context.Context, comic entities.Comic) error
	AdjustLikes(ctx context.Context, comicID string, delta int) (int, error)
	CreateChapter(ctx context.Context, chapter entities.Chapter) error
	GetChapter(ctx context.Context, chapterID string) (entities.Chapter, error)
	ListChaptersByComic(ctx context.Context, comicID string) ([]entities.Chapter, error)
}

// ViewInitializer provisions the zeroed view record when a comic is created.
type ViewInitializer interface {
	CreateViewRecord(ctx context.Context, comicID string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type CreateComicInput struct {
	Slug     string
	Name     string
	Author   string
	Content  string
	Status   string
	ThumbURL string
	VIP      bool
}

type CreateChapterInput struct {
	Name   string
	Path   string
	Images []string
}
