package localadapter

import (
	"context"
	"errors"

	catalogapplication "inkwell/contexts/catalog/comic-catalog-service/application"
	catalogerrors "inkwell/contexts/catalog/comic-catalog-service/domain/errors"
	domainerrors "inkwell/contexts/reader-experience/chapter-access-service/domain/errors"
	"inkwell/contexts/reader-experience/chapter-access-service/ports"
	progressionapplication "inkwell/contexts/reader-experience/progression-service/application"
	progressionerrors "inkwell/contexts/reader-experience/progression-service/domain/errors"
	viewapplication "inkwell/contexts/reader-experience/view-tracking-service/application"
)

// In-process gateway adapters bridging the gate's ports to the sibling
// modules of the monolith, translating their domain errors into the gate's
// own taxonomy.

type CatalogChapterResolver struct {
	Catalog catalogapplication.Service
}

func (a CatalogChapterResolver) GetChapter(ctx context.Context, chapterID string) (ports.ChapterProjection, error) {
	chapter, err := a.Catalog.GetChapter(ctx, chapterID)
	if err != nil {
		if errors.Is(err, catalogerrors.ErrChapterNotFound) || errors.Is(err, catalogerrors.ErrInvalidInput) {
			return ports.ChapterProjection{}, domainerrors.ErrChapterNotFound
		}
		return ports.ChapterProjection{}, err
	}
	comic, err := a.Catalog.GetComic(ctx, chapter.ComicID)
	if err != nil {
		return ports.ChapterProjection{}, err
	}
	return ports.ChapterProjection{
		ChapterID: chapter.ChapterID,
		ComicID:   chapter.ComicID,
		Name:      chapter.Name,
		Path:      chapter.Path,
		Images:    chapter.Images,
		ComicVIP:  comic.VIP,
	}, nil
}

type ProgressionReaderDirectory struct {
	Progression progressionapplication.Service
}

func (a ProgressionReaderDirectory) GetReader(ctx context.Context, userID string) (ports.ReaderProjection, error) {
	progress, err := a.Progression.GetProgress(ctx, userID)
	if err != nil {
		if errors.Is(err, progressionerrors.ErrReaderNotFound) {
			return ports.ReaderProjection{}, domainerrors.ErrReaderNotFound
		}
		return ports.ReaderProjection{}, err
	}
	return ports.ReaderProjection{
		UserID: progress.UserID,
		Role:   string(progress.Role),
		Ruby:   progress.Ruby,
	}, nil
}

type ProgressionGateway struct {
	Progression progressionapplication.Service
}

func (a ProgressionGateway) DebitRuby(ctx context.Context, userID string, amount int) error {
	_, err := a.Progression.DebitRuby(ctx, userID, amount)
	if errors.Is(err, progressionerrors.ErrNotEnoughRuby) {
		return domainerrors.ErrNotEnoughRuby
	}
	if errors.Is(err, progressionerrors.ErrReaderNotFound) {
		return domainerrors.ErrReaderNotFound
	}
	return err
}

func (a ProgressionGateway) AwardPoints(ctx context.Context, userID string, points int) error {
	_, err := a.Progression.AwardPoints(ctx, userID, points)
	if errors.Is(err, progressionerrors.ErrReaderNotFound) {
		return domainerrors.ErrReaderNotFound
	}
	return err
}

type ViewRecorder struct {
	Views viewapplication.Service
}

func (a ViewRecorder) RecordView(ctx context.Context, comicID string) error {
	_, err := a.Views.RecordView(ctx, comicID)
	return err
}

var _ ports.ChapterResolver = CatalogChapterResolver{}
var _ ports.ReaderDirectory = ProgressionReaderDirectory{}
var _ ports.ProgressionGateway = ProgressionGateway{}
var _ ports.ViewRecorder = ViewRecorder{}
