package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"inkwell/contexts/reader-experience/progression-service/domain/entities"
	domainerrors "inkwell/contexts/reader-experience/progression-service/domain/errors"
	"inkwell/contexts/reader-experience/progression-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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

func (r *Repository) GetProgress(ctx context.Context, userID string) (entities.ReaderProgress, error) {
	var row readerProgressModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", strings.TrimSpace(userID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.ReaderProgress{}, domainerrors.ErrReaderNotFound
		}
		return entities.ReaderProgress{}, r.logError("progression_repo_get_progress_failed", err,
			"user_id", strings.TrimSpace(userID),
		)
	}

	var grants []achievementGrantModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", row.UserID).
		Order("granted_at ASC").
		Find(&grants).Error; err != nil {
		return entities.ReaderProgress{}, r.logError("progression_repo_list_achievements_failed", err,
			"user_id", row.UserID,
		)
	}
	return row.toEntity(grants), nil
}

func (r *Repository) SaveProgress(ctx context.Context, progress entities.ReaderProgress) error {
	row := progressModelFromEntity(progress)
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"role":       row.Role,
			"points":     row.Points,
			"level":      row.Level,
			"level_name": row.LevelName,
			"ruby":       row.Ruby,
			"updated_at": row.UpdatedAt,
		}),
	}).Create(&row)
	if create.Error != nil {
		if isUniqueViolation(create.Error) {
			return domainerrors.ErrInvalidInput
		}
		return r.logError("progression_repo_save_progress_failed", create.Error,
			"user_id", row.UserID,
		)
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", row.UserID).
		Delete(&achievementGrantModel{}).Error; err != nil {
		return r.logError("progression_repo_clear_achievements_failed", err, "user_id", row.UserID)
	}
	for i, achievementID := range progress.Achievements {
		grant := achievementGrantModel{
			UserID:        row.UserID,
			AchievementID: strings.TrimSpace(achievementID),
			GrantedAt:     progress.UpdatedAt.UTC().Add(time.Duration(i) * time.Microsecond),
		}
		if err := r.db.WithContext(ctx).Create(&grant).Error; err != nil {
			return r.logError("progression_repo_save_achievement_failed", err,
				"user_id", row.UserID,
				"achievement_id", grant.AchievementID,
			)
		}
	}
	return nil
}

func (r *Repository) AchievementExists(ctx context.Context, achievementID string) (bool, error) {
	var row achievementModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(achievementID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, r.logError("progression_repo_get_achievement_failed", err,
			"achievement_id", strings.TrimSpace(achievementID),
		)
	}
	return true, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "reader-experience/progression-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("progression repository operation failed", fields...)
	return err
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type readerProgressModel struct {
	UserID    string    `gorm:"column:user_id;primaryKey"`
	Role      string    `gorm:"column:role"`
	Points    int       `gorm:"column:points"`
	Level     int       `gorm:"column:level"`
	LevelName string    `gorm:"column:level_name"`
	Ruby      int       `gorm:"column:ruby"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (readerProgressModel) TableName() string {
	return "reader_progress"
}

func progressModelFromEntity(progress entities.ReaderProgress) readerProgressModel {
	row := readerProgressModel{
		UserID:    strings.TrimSpace(progress.UserID),
		Role:      string(progress.Role),
		Points:    progress.Points,
		Level:     progress.Level,
		LevelName: progress.LevelName,
		Ruby:      progress.Ruby,
		UpdatedAt: progress.UpdatedAt.UTC(),
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = time.Now().UTC()
	}
	return row
}

func (m readerProgressModel) toEntity(grants []achievementGrantModel) entities.ReaderProgress {
	achievements := make([]string, 0, len(grants))
	for _, grant := range grants {
		achievements = append(achievements, grant.AchievementID)
	}
	return entities.ReaderProgress{
		UserID:       m.UserID,
		Role:         entities.Role(m.Role),
		Points:       m.Points,
		Level:        m.Level,
		LevelName:    m.LevelName,
		Ruby:         m.Ruby,
		Achievements: achievements,
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

type achievementGrantModel struct {
	UserID        string    `gorm:"column:user_id;primaryKey"`
	AchievementID string    `gorm:"column:achievement_id;primaryKey"`
	GrantedAt     time.Time `gorm:"column:granted_at"`
}

func (achievementGrantModel) TableName() string {
	return "reader_achievements"
}

type achievementModel struct {
	ID   string `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (achievementModel) TableName() string {
	return "achievements"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.Repository = (*Repository)(nil)
var _ ports.AchievementDirectory = (*Repository)(nil)
