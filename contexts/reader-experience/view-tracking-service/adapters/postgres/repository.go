package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"inkwell/contexts/reader-experience/view-tracking-service/domain/entities"
	domainerrors "inkwell/contexts/reader-experience/view-tracking-service/domain/errors"
	"inkwell/contexts/reader-experience/view-tracking-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	granularityDay   = "day"
	granularityWeek  = "week"
	granularityMonth = "month"
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

func (r *Repository) GetByComic(ctx context.Context, comicID string) (entities.ViewRecord, bool, error) {
	var row viewRecordModel
	err := r.db.WithContext(ctx).
		Where("comic_id = ?", strings.TrimSpace(comicID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.ViewRecord{}, false, nil
		}
		return entities.ViewRecord{}, false, r.logError("view_repo_get_record_failed", err,
			"comic_id", strings.TrimSpace(comicID),
		)
	}

	var buckets []viewBucketModel
	if err := r.db.WithContext(ctx).
		Where("comic_id = ?", row.ComicID).
		Order("bucket_date ASC").
		Find(&buckets).Error; err != nil {
		return entities.ViewRecord{}, false, r.logError("view_repo_list_buckets_failed", err,
			"comic_id", row.ComicID,
		)
	}
	return row.toEntity(buckets), true, nil
}

func (r *Repository) Create(ctx context.Context, record entities.ViewRecord) error {
	row := recordModelFromEntity(record)
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "comic_id"}},
		DoNothing: true,
	}).Create(&row)
	if create.Error != nil {
		if isUniqueViolation(create.Error) {
			return domainerrors.ErrViewRecordExists
		}
		return r.logError("view_repo_create_record_failed", create.Error, "comic_id", row.ComicID)
	}
	if create.RowsAffected == 0 {
		return domainerrors.ErrViewRecordExists
	}
	return nil
}

func (r *Repository) Save(ctx context.Context, record entities.ViewRecord) error {
	row := recordModelFromEntity(record)
	save := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "comic_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"total_views": row.TotalViews,
			"updated_at":  row.UpdatedAt,
		}),
	}).Create(&row)
	if save.Error != nil {
		return r.logError("view_repo_save_record_failed", save.Error, "comic_id", row.ComicID)
	}

	if err := r.db.WithContext(ctx).
		Where("comic_id = ?", row.ComicID).
		Delete(&viewBucketModel{}).Error; err != nil {
		return r.logError("view_repo_clear_buckets_failed", err, "comic_id", row.ComicID)
	}
	buckets := bucketModelsFromEntity(record)
	for _, bucket := range buckets {
		if err := r.db.WithContext(ctx).Create(&bucket).Error; err != nil {
			return r.logError("view_repo_save_bucket_failed", err,
				"comic_id", row.ComicID,
				"granularity", bucket.Granularity,
			)
		}
	}
	return nil
}

func (r *Repository) ListTopViewed(ctx context.Context, limit int) ([]entities.ViewRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []viewRecordModel
	if err := r.db.WithContext(ctx).
		Order("total_views DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, r.logError("view_repo_list_top_viewed_failed", err, "limit", limit)
	}
	items := make([]entities.ViewRecord, 0, len(rows))
	for _, row := range rows {
		var buckets []viewBucketModel
		if err := r.db.WithContext(ctx).
			Where("comic_id = ?", row.ComicID).
			Order("bucket_date ASC").
			Find(&buckets).Error; err != nil {
			return nil, r.logError("view_repo_list_buckets_failed", err, "comic_id", row.ComicID)
		}
		items = append(items, row.toEntity(buckets))
	}
	return items, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "reader-experience/view-tracking-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("view repository operation failed", fields...)
	return err
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type viewRecordModel struct {
	ComicID    string    `gorm:"column:comic_id;primaryKey"`
	TotalViews int       `gorm:"column:total_views"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (viewRecordModel) TableName() string {
	return "comic_views"
}

func recordModelFromEntity(record entities.ViewRecord) viewRecordModel {
	row := viewRecordModel{
		ComicID:    strings.TrimSpace(record.ComicID),
		TotalViews: record.TotalViews,
		UpdatedAt:  record.UpdatedAt.UTC(),
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = time.Now().UTC()
	}
	return row
}

func (m viewRecordModel) toEntity(buckets []viewBucketModel) entities.ViewRecord {
	record := entities.ViewRecord{
		ComicID:    m.ComicID,
		TotalViews: m.TotalViews,
		UpdatedAt:  m.UpdatedAt.UTC(),
	}
	for _, bucket := range buckets {
		entry := entities.ViewBucket{Date: bucket.BucketDate.UTC(), Views: bucket.Views}
		switch bucket.Granularity {
		case granularityDay:
			record.DailyViews = append(record.DailyViews, entry)
		case granularityWeek:
			record.WeeklyViews = append(record.WeeklyViews, entry)
		case granularityMonth:
			record.MonthlyViews = append(record.MonthlyViews, entry)
		}
	}
	return record
}

type viewBucketModel struct {
	ComicID     string    `gorm:"column:comic_id;primaryKey"`
	Granularity string    `gorm:"column:granularity;primaryKey"`
	BucketDate  time.Time `gorm:"column:bucket_date;primaryKey"`
	Views       int       `gorm:"column:views"`
}

func (viewBucketModel) TableName() string {
	return "comic_view_buckets"
}

func bucketModelsFromEntity(record entities.ViewRecord) []viewBucketModel {
	comicID := strings.TrimSpace(record.ComicID)
	rows := make([]viewBucketModel, 0, len(record.DailyViews)+len(record.WeeklyViews)+len(record.MonthlyViews))
	appendRows := func(granularity string, buckets []entities.ViewBucket) {
		for _, bucket := range buckets {
			rows = append(rows, viewBucketModel{
				ComicID:     comicID,
				Granularity: granularity,
				BucketDate:  bucket.Date.UTC(),
				Views:       bucket.Views,
			})
		}
	}
	appendRows(granularityDay, record.DailyViews)
	appendRows(granularityWeek, record.WeeklyViews)
	appendRows(granularityMonth, record.MonthlyViews)
	return rows
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.Repository = (*Repository)(nil)
