package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"inkwell/contexts/catalog/comic-catalog-service/domain/entities"
	domainerrors "inkwell/contexts/catalog/comic-catalog-service/domain/errors"
	"inkwell/contexts/catalog/comic-catalog-service/ports"
)

type Service struct {
	Repo   ports.Repository
	Views  ports.ViewInitializer
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func (s Service) CreateComic(ctx context.Context, input ports.CreateComicInput) (entities.Comic, error) {
	slug := strings.TrimSpace(input.Slug)
	name := strings.TrimSpace(input.Name)
	if slug == "" || name == "" {
		return entities.Comic{}, domainerrors.ErrInvalidInput
	}
	taken, err := s.Repo.SlugTaken(ctx, slug)
	if err != nil {
		return entities.Comic{}, err
	}
	if taken {
		return entities.Comic{}, domainerrors.ErrSlugTaken
	}

	comicID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Comic{}, err
	}
	now := s.now()
	comic := entities.Comic{
		ComicID:   strings.TrimSpace(comicID),
		Slug:      slug,
		Name:      name,
		Author:    strings.TrimSpace(input.Author),
		Content:   strings.TrimSpace(input.Content),
		Status:    strings.TrimSpace(input.Status),
		ThumbURL:  strings.TrimSpace(input.ThumbURL),
		VIP:       input.VIP,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.CreateComic(ctx, comic); err != nil {
		return entities.Comic{}, err
	}
	if err := s.Views.CreateViewRecord(ctx, comic.ComicID); err != nil {
		return entities.Comic{}, err
	}

	resolveLogger(s.Logger).Info("comic created",
		"event", "catalog_comic_created",
		"module", "catalog/comic-catalog-service",
		"layer", "application",
		"comic_id", comic.ComicID,
		"slug", comic.Slug,
		"vip", comic.VIP,
	)
	return comic, nil
}

// GetComic accepts either a comic id or a slug, matching the public comic
// detail route.
func (s Service) GetComic(ctx context.Context, idOrSlug string) (entities.Comic, error) {
	idOrSlug = strings.TrimSpace(idOrSlug)
	if idOrSlug == "" {
		return entities.Comic{}, domainerrors.ErrInvalidInput
	}
	comic, err := s.Repo.GetComic(ctx, idOrSlug)
	if err == nil {
		return comic, nil
	}
	if !errors.Is(err, domainerrors.ErrComicNotFound) {
		return entities.Comic{}, err
	}
	return s.Repo.GetComicBySlug(ctx, idOrSlug)
}

func (s Service) AdjustLikes(ctx context.Context, comicID string, delta int) (int, error) {
	comicID = strings.TrimSpace(comicID)
	if comicID == "" {
		return 0, domainerrors.ErrInvalidInput
	}
	return s.Repo.AdjustLikes(ctx, comicID, delta)
}

func (s Service) CreateChapter(ctx context.Context, comicID string, input ports.CreateChapterInput) (entities.Chapter, error) {
	comicID = strings.TrimSpace(comicID)
	name := strings.TrimSpace(input.Name)
	if comicID == "" || name == "" {
		return entities.Chapter{}, domainerrors.ErrInvalidInput
	}
	if _, err := s.Repo.GetComic(ctx, comicID); err != nil {
		return entities.Chapter{}, err
	}

	chapterID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Chapter{}, err
	}
	chapter := entities.Chapter{
		ChapterID: strings.TrimSpace(chapterID),
		ComicID:   comicID,
		Name:      name,
		Path:      strings.TrimSpace(input.Path),
		Images:    append([]string(nil), input.Images...),
		CreatedAt: s.now(),
	}
	if err := s.Repo.CreateChapter(ctx, chapter); err != nil {
		return entities.Chapter{}, err
	}
	return chapter, nil
}

func (s Service) GetChapter(ctx context.Context, chapterID string) (entities.Chapter, error) {
	chapterID = strings.TrimSpace(chapterID)
	if chapterID == "" {
		return entities.Chapter{}, domainerrors.ErrInvalidInput
	}
	return s.Repo.GetChapter(ctx, chapterID)
}

func (s Service) ListChaptersByComic(ctx context.Context, comicID string) ([]entities.Chapter, error) {
	comicID = strings.TrimSpace(comicID)
	if comicID == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	if _, err := s.Repo.GetComic(ctx, comicID); err != nil {
		return nil, err
	}
	return s.Repo.ListChaptersByComic(ctx, comicID)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
