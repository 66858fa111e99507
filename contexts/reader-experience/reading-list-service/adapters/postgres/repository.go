package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"inkwell/contexts/reader-experience/reading-list-service/domain/entities"
	domainerrors "inkwell/contexts/reader-experience/reading-list-service/domain/errors"
	"inkwell/contexts/reader-experience/reading-list-service/ports"

	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) GetLists(ctx context.Context, userID string) (entities.ReaderLists, error) {
	userID = strings.TrimSpace(userID)

	var reader readerModel
	err := r.db.WithContext(ctx).
		Select("user_id").
		Where("user_id = ?", userID).
		First(&reader).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.ReaderLists{}, domainerrors.ErrReaderNotFound
		}
		return entities.ReaderLists{}, r.logError("reading_list_repo_get_reader_failed", err, "user_id", userID)
	}

	lists := entities.ReaderLists{UserID: userID}

	var history []historyEntryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("position ASC").
		Find(&history).Error; err != nil {
		return entities.ReaderLists{}, r.logError("reading_list_repo_list_history_failed", err, "user_id", userID)
	}
	for _, row := range history {
		lists.History = append(lists.History, entities.HistoryEntry{
			ComicID:   row.ComicID,
			ChapterID: row.ChapterID,
			AddedAt:   row.AddedAt.UTC(),
		})
	}

	var saved []savedComicModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at ASC").
		Find(&saved).Error; err != nil {
		return entities.ReaderLists{}, r.logError("reading_list_repo_list_saved_failed", err, "user_id", userID)
	}
	for _, row := range saved {
		lists.Saved = append(lists.Saved, row.ComicID)
	}

	var likes []likedComicModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at ASC").
		Find(&likes).Error; err != nil {
		return entities.ReaderLists{}, r.logError("reading_list_repo_list_likes_failed", err, "user_id", userID)
	}
	for _, row := range likes {
		lists.Likes = append(lists.Likes, row.ComicID)
	}
	return lists, nil
}

// SaveLists replaces the reader's list rows wholesale inside one
// transaction. The lists are small and bounded, so rewrite beats diffing.
func (r *Repository) SaveLists(ctx context.Context, lists entities.ReaderLists) error {
	userID := strings.TrimSpace(lists.UserID)
	now := time.Now().UTC()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&historyEntryModel{}).Error; err != nil {
			return err
		}
		for position, entry := range lists.History {
			addedAt := entry.AddedAt.UTC()
			if addedAt.IsZero() {
				addedAt = now
			}
			row := historyEntryModel{
				UserID:    userID,
				Position:  position,
				ComicID:   strings.TrimSpace(entry.ComicID),
				ChapterID: strings.TrimSpace(entry.ChapterID),
				AddedAt:   addedAt,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", userID).Delete(&savedComicModel{}).Error; err != nil {
			return err
		}
		for position, comicID := range lists.Saved {
			row := savedComicModel{
				UserID:  userID,
				ComicID: strings.TrimSpace(comicID),
				AddedAt: now.Add(time.Duration(position) * time.Microsecond),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", userID).Delete(&likedComicModel{}).Error; err != nil {
			return err
		}
		for position, comicID := range lists.Likes {
			row := likedComicModel{
				UserID:  userID,
				ComicID: strings.TrimSpace(comicID),
				AddedAt: now.Add(time.Duration(position) * time.Microsecond),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return r.logError("reading_list_repo_save_failed", err, "user_id", userID)
	}
	return nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "reader-experience/reading-list-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("reading list repository operation failed", fields...)
	return err
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// readerModel is a read-only projection over the progression table, used to
// tell an unknown reader apart from a reader with empty lists.
type readerModel struct {
	UserID string `gorm:"column:user_id;primaryKey"`
}

func (readerModel) TableName() string {
	return "reader_progress"
}

type historyEntryModel struct {
	UserID    string    `gorm:"column:user_id;primaryKey"`
	Position  int       `gorm:"column:position;primaryKey"`
	ComicID   string    `gorm:"column:comic_id"`
	ChapterID string    `gorm:"column:chapter_id"`
	AddedAt   time.Time `gorm:"column:added_at"`
}

func (historyEntryModel) TableName() string {
	return "reader_history"
}

type savedComicModel struct {
	UserID  string    `gorm:"column:user_id;primaryKey"`
	ComicID string    `gorm:"column:comic_id;primaryKey"`
	AddedAt time.Time `gorm:"column:added_at"`
}

func (savedComicModel) TableName() string {
	return "reader_saved_comics"
}

type likedComicModel struct {
	UserID  string    `gorm:"column:user_id;primaryKey"`
	ComicID string    `gorm:"column:comic_id;primaryKey"`
	AddedAt time.Time `gorm:"column:added_at"`
}

func (likedComicModel) TableName() string {
	return "reader_liked_comics"
}

var _ ports.Repository = (*Repository)(nil)
var _ ports.Clock = SystemClock{}
