package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"inkwell/contexts/reader-experience/view-tracking-service/domain/entities"
	domainerrors "inkwell/contexts/reader-experience/view-tracking-service/domain/errors"
)

type Store struct {
	mu sync.RWMutex

	records map[string]entities.ViewRecord
}

func NewStore() *Store {
	return &Store{
		records: make(map[string]entities.ViewRecord),
	}
}

func (s *Store) GetByComic(_ context.Context, comicID string) (entities.ViewRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[strings.TrimSpace(comicID)]
	if !ok {
		return entities.ViewRecord{}, false, nil
	}
	return record.Clone(), true, nil
}

func (s *Store) Create(_ context.Context, record entities.ViewRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(record.ComicID)
	if key == "" {
		return domainerrors.ErrInvalidInput
	}
	if _, ok := s.records[key]; ok {
		return domainerrors.ErrViewRecordExists
	}
	s.records[key] = record.Clone()
	return nil
}

func (s *Store) Save(_ context.Context, record entities.ViewRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(record.ComicID)
	if key == "" {
		return domainerrors.ErrInvalidInput
	}
	s.records[key] = record.Clone()
	return nil
}

func (s *Store) ListTopViewed(_ context.Context, limit int) ([]entities.ViewRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}
	items := make([]entities.ViewRecord, 0, len(s.records))
	for _, record := range s.records {
		items = append(items, record.Clone())
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].TotalViews == items[j].TotalViews {
			return items[i].ComicID < items[j].ComicID
		}
		return items[i].TotalViews > items[j].TotalViews
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}
