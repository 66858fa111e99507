package localadapter

import (
	"context"
	"errors"

	catalogapplication "inkwell/contexts/catalog/comic-catalog-service/application"
	catalogerrors "inkwell/contexts/catalog/comic-catalog-service/domain/errors"
	domainerrors "inkwell/contexts/reader-experience/reading-list-service/domain/errors"
	"inkwell/contexts/reader-experience/reading-list-service/ports"
)

// In-process adapters bridging the reading-list ports to the catalog module,
// translating catalog errors into the reading-list taxonomy.

type CatalogChapterResolver struct {
	Catalog catalogapplication.Service
}

func (a CatalogChapterResolver) GetChapter(ctx context.Context, chapterID string) (ports.ChapterRef, error) {
	chapter, err := a.Catalog.GetChapter(ctx, chapterID)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrChapterNotFound) || errors.Is(err, catalogerrors.ErrInvalidInput) {
			return ports.ChapterRef{}, domainerrors.ErrChapterNotFound
		}
		return ports.ChapterRef{}, err
	}
	return ports.ChapterRef{
		ChapterID: chapter.ChapterID,
		ComicID:   chapter.ComicID,
	}, nil
}

type CatalogLikeCounter struct {
	Catalog catalogapplication.Service
}

func (a CatalogLikeCounter) AdjustLikes(ctx context.Context, comicID string, delta int) (int, error) {
	likes, err := a.Catalog.AdjustLikes(ctx, comicID, delta)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrComicNotFound) || errors.Is(err, catalogerrors.ErrInvalidInput) {
			return 0, domainerrors.ErrComicNotFound
		}
		return 0, err
	}
	return likes, nil
}

var _ ports.ChapterResolver = CatalogChapterResolver{}
var _ ports.LikeCounter = CatalogLikeCounter{}
