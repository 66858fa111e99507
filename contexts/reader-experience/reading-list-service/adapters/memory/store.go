package memory

import (
	"context"
	"sync"
	"time"

	"inkwell/contexts/reader-experience/reading-list-service/domain/entities"
	domainerrors "inkwell/contexts/reader-experience/reading-list-service/domain/errors"
	"inkwell/contexts/reader-experience/reading-list-service/ports"
)

// Store keeps reader lists in process memory. Intended for tests and for
// running the API without Postgres.
type Store struct {
	mu    sync.RWMutex
	lists map[string]entities.ReaderLists
}

func NewStore(seed []entities.ReaderLists) *Store {
	store := &Store{lists: make(map[string]entities.ReaderLists)}
	for _, lists := range seed {
		store.SeedReader(lists)
	}
	return store
}

func (s *Store) SeedReader(lists entities.ReaderLists) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[lists.UserID] = lists.Clone()
}

func (s *Store) GetLists(_ context.Context, userID string) (entities.ReaderLists, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lists, ok := s.lists[userID]
	if !ok {
		return entities.ReaderLists{}, domainerrors.ErrReaderNotFound
	}
	return lists.Clone(), nil
}

func (s *Store) SaveLists(_ context.Context, lists entities.ReaderLists) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists[lists.UserID] = lists.Clone()
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

var (
	_ ports.Repository = (*Store)(nil)
	_ ports.Clock      = (*Store)(nil)
)
