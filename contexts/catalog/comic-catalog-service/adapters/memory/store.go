package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"inkwell/contexts/catalog/comic-catalog-service/domain/entities"
	domainerrors "inkwell/contexts/catalog/comic-catalog-service/domain/errors"

	"github.com/google/uuid"
)

type Store struct {
	mu sync.RWMutex

	comics   map[string]entities.Comic
	slugs    map[string]string
	chapters map[string]entities.Chapter
}

func NewStore(seedComics []entities.Comic, seedChapters []entities.Chapter) *Store {
	comics := make(map[string]entities.Comic, len(seedComics))
	slugs := make(map[string]string, len(seedComics))
	for _, comic := range seedComics {
		comics[strings.TrimSpace(comic.ComicID)] = comic
		slugs[strings.TrimSpace(comic.Slug)] = strings.TrimSpace(comic.ComicID)
	}
	chapters := make(map[string]entities.Chapter, len(seedChapters))
	for _, chapter := range seedChapters {
		chapters[strings.TrimSpace(chapter.ChapterID)] = chapter
	}
	return &Store{
		comics:   comics,
		slugs:    slugs,
		chapters: chapters,
	}
}

func (s *Store) SeedComic(comic entities.Comic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comics[strings.TrimSpace(comic.ComicID)] = comic
	s.slugs[strings.TrimSpace(comic.Slug)] = strings.TrimSpace(comic.ComicID)
}

func (s *Store) SeedChapter(chapter entities.Chapter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chapters[strings.TrimSpace(chapter.ChapterID)] = chapter
}

func (s *Store) GetComic(_ context.Context, comicID string) (entities.Comic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comic, ok := s.comics[strings.TrimSpace(comicID)]
	if !ok {
		return entities.Comic{}, domainerrors.ErrComicNotFound
	}
	return comic, nil
}

func (s *Store) GetComicBySlug(_ context.Context, slug string) (entities.Comic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comicID, ok := s.slugs[strings.TrimSpace(slug)]
	if !ok {
		return entities.Comic{}, domainerrors.ErrComicNotFound
	}
	return s.comics[comicID], nil
}

func (s *Store) SlugTaken(_ context.Context, slug string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.slugs[strings.TrimSpace(slug)]
	return ok, nil
}

func (s *Store) CreateComic(_ context.Context, comic entities.Comic) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(comic.ComicID)
	if key == "" {
		return domainerrors.ErrInvalidInput
	}
	if _, ok := s.slugs[strings.TrimSpace(comic.Slug)]; ok {
		return domainerrors.ErrSlugTaken
	}
	s.comics[key] = comic
	s.slugs[strings.TrimSpace(comic.Slug)] = key
	return nil
}

func (s *Store) AdjustLikes(_ context.Context, comicID string, delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(comicID)
	comic, ok := s.comics[key]
	if !ok {
		return 0, domainerrors.ErrComicNotFound
	}
	comic.Likes += delta
	if comic.Likes < 0 {
		comic.Likes = 0
	}
	s.comics[key] = comic
	return comic.Likes, nil
}

func (s *Store) CreateChapter(_ context.Context, chapter entities.Chapter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(chapter.ChapterID)
	if key == "" {
		return domainerrors.ErrInvalidInput
	}
	chapter.Images = append([]string(nil), chapter.Images...)
	s.chapters[key] = chapter
	return nil
}

func (s *Store) GetChapter(_ context.Context, chapterID string) (entities.Chapter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chapter, ok := s.chapters[strings.TrimSpace(chapterID)]
	if !ok {
		return entities.Chapter{}, domainerrors.ErrChapterNotFound
	}
	chapter.Images = append([]string(nil), chapter.Images...)
	return chapter, nil
}

func (s *Store) ListChaptersByComic(_ context.Context, comicID string) ([]entities.Chapter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	comicID = strings.TrimSpace(comicID)
	items := make([]entities.Chapter, 0)
	for _, chapter := range s.chapters {
		if chapter.ComicID == comicID {
			items = append(items, chapter)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
