package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"inkwell/contexts/reader-experience/progression-service/domain/entities"
	domainerrors "inkwell/contexts/reader-experience/progression-service/domain/errors"
)

type Store struct {
	mu sync.RWMutex

	progress     map[string]entities.ReaderProgress
	achievements map[string]struct{}
}

func NewStore(seed []entities.ReaderProgress, achievementIDs []string) *Store {
	progress := make(map[string]entities.ReaderProgress, len(seed))
	for _, item := range seed {
		progress[strings.TrimSpace(item.UserID)] = item
	}
	achievements := make(map[string]struct{}, len(achievementIDs))
	for _, id := range achievementIDs {
		achievements[strings.TrimSpace(id)] = struct{}{}
	}
	return &Store{
		progress:     progress,
		achievements: achievements,
	}
}

func (s *Store) SeedReader(item entities.ReaderProgress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress[strings.TrimSpace(item.UserID)] = item
}

func (s *Store) SeedAchievement(achievementID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.achievements[strings.TrimSpace(achievementID)] = struct{}{}
}

func (s *Store) GetProgress(_ context.Context, userID string) (entities.ReaderProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.progress[strings.TrimSpace(userID)]
	if !ok {
		return entities.ReaderProgress{}, domainerrors.ErrReaderNotFound
	}
	item.Achievements = append([]string(nil), item.Achievements...)
	return item, nil
}

func (s *Store) SaveProgress(_ context.Context, progress entities.ReaderProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(progress.UserID)
	if key == "" {
		return domainerrors.ErrInvalidInput
	}
	progress.Achievements = append([]string(nil), progress.Achievements...)
	s.progress[key] = progress
	return nil
}

func (s *Store) AchievementExists(_ context.Context, achievementID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.achievements[strings.TrimSpace(achievementID)]
	return ok, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}
