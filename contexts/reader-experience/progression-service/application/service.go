package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"inkwell/contexts/reader-experience/progression-service/domain/entities"
	domainerrors "inkwell/contexts/reader-experience/progression-service/domain/errors"
	"inkwell/contexts/reader-experience/progression-service/ports"
)

type Service struct {
	Repo         ports.Repository
	Achievements ports.AchievementDirectory
	Levels       entities.LevelTable
	Clock        ports.Clock
	Logger       *slog.Logger
}

// ResolveLevel is a pure lookup against the injected level table.
func (s Service) ResolveLevel(points int) entities.LevelDefinition {
	return s.levels().Resolve(points)
}

func (s Service) GetProgress(ctx context.Context, userID string) (entities.ReaderProgress, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.ReaderProgress{}, domainerrors.ErrInvalidInput
	}
	return s.Repo.GetProgress(ctx, userID)
}

// AwardPoints adds delta to the reader's cumulative points, re-derives level
// and level name from the table, and grants the landed level's ruby bonus
// when the level increased. A multi-threshold jump grants only the final
// level's bonus, once.
func (s Service) AwardPoints(ctx context.Context, userID string, delta int) (entities.ReaderProgress, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.ReaderProgress{}, domainerrors.ErrInvalidInput
	}
	progress, err := s.Repo.GetProgress(ctx, userID)
	if err != nil {
		return entities.ReaderProgress{}, err
	}

	previousLevel := progress.Level
	progress.Points += delta
	if progress.Points < 0 {
		progress.Points = 0
	}
	landed := s.levels().Resolve(progress.Points)
	progress.Level = landed.Level
	progress.LevelName = landed.Name
	if progress.Level > previousLevel {
		progress.Ruby += landed.RubyBonus
	}
	progress.UpdatedAt = s.now()

	if err := s.Repo.SaveProgress(ctx, progress); err != nil {
		return entities.ReaderProgress{}, err
	}

	resolveLogger(s.Logger).Info("reader points awarded",
		"event", "progression_points_awarded",
		"module", "reader-experience/progression-service",
		"layer", "application",
		"user_id", progress.UserID,
		"points_delta", delta,
		"total_points", progress.Points,
		"level", progress.Level,
		"leveled_up", progress.Level > previousLevel,
	)
	return progress, nil
}

// DebitRuby removes amount from the reader's ruby balance. The check and the
// write happen against the same loaded document; callers needing isolation
// across concurrent requests wrap this in a per-user serialization boundary.
func (s Service) DebitRuby(ctx context.Context, userID string, amount int) (entities.ReaderProgress, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" || amount <= 0 {
		return entities.ReaderProgress{}, domainerrors.ErrInvalidInput
	}
	progress, err := s.Repo.GetProgress(ctx, userID)
	if err != nil {
		return entities.ReaderProgress{}, err
	}
	if progress.Ruby < amount {
		return entities.ReaderProgress{}, domainerrors.ErrNotEnoughRuby
	}
	progress.Ruby -= amount
	progress.UpdatedAt = s.now()

	if err := s.Repo.SaveProgress(ctx, progress); err != nil {
		return entities.ReaderProgress{}, err
	}

	resolveLogger(s.Logger).Info("reader ruby debited",
		"event", "progression_ruby_debited",
		"module", "reader-experience/progression-service",
		"layer", "application",
		"user_id", progress.UserID,
		"amount", amount,
		"ruby_balance", progress.Ruby,
	)
	return progress, nil
}

// AddAchievement grants an achievement to the reader. A duplicate grant is an
// error, not a no-op; the asymmetry with the saved/likes mutators is
// deliberate.
func (s Service) AddAchievement(ctx context.Context, userID string, achievementID string) (entities.ReaderProgress, error) {
	userID = strings.TrimSpace(userID)
	achievementID = strings.TrimSpace(achievementID)
	if userID == "" || achievementID == "" {
		return entities.ReaderProgress{}, domainerrors.ErrInvalidInput
	}
	exists, err := s.Achievements.AchievementExists(ctx, achievementID)
	if err != nil {
		return entities.ReaderProgress{}, err
	}
	if !exists {
		return entities.ReaderProgress{}, domainerrors.ErrAchievementNotFound
	}
	progress, err := s.Repo.GetProgress(ctx, userID)
	if err != nil {
		return entities.ReaderProgress{}, err
	}
	if progress.HasAchievement(achievementID) {
		return entities.ReaderProgress{}, domainerrors.ErrAchievementAlreadyOwned
	}
	progress.Achievements = append(progress.Achievements, achievementID)
	progress.UpdatedAt = s.now()

	if err := s.Repo.SaveProgress(ctx, progress); err != nil {
		return entities.ReaderProgress{}, err
	}
	return progress, nil
}

func (s Service) RemoveAchievement(ctx context.Context, userID string, achievementID string) (entities.ReaderProgress, error) {
	userID = strings.TrimSpace(userID)
	achievementID = strings.TrimSpace(achievementID)
	if userID == "" || achievementID == "" {
		return entities.ReaderProgress{}, domainerrors.ErrInvalidInput
	}
	progress, err := s.Repo.GetProgress(ctx, userID)
	if err != nil {
		return entities.ReaderProgress{}, err
	}
	if !progress.HasAchievement(achievementID) {
		return entities.ReaderProgress{}, domainerrors.ErrAchievementNotOwned
	}
	kept := make([]string, 0, len(progress.Achievements)-1)
	for _, owned := range progress.Achievements {
		if owned != achievementID {
			kept = append(kept, owned)
		}
	}
	progress.Achievements = kept
	progress.UpdatedAt = s.now()

	if err := s.Repo.SaveProgress(ctx, progress); err != nil {
		return entities.ReaderProgress{}, err
	}
	return progress, nil
}

func (s Service) levels() entities.LevelTable {
	if s.Levels.IsZero() {
		return entities.DefaultLevelTable()
	}
	return s.Levels
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
