package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"inkwell/contexts/reader-experience/view-tracking-service/domain/entities"
	domainerrors "inkwell/contexts/reader-experience/view-tracking-service/domain/errors"
	"inkwell/contexts/reader-experience/view-tracking-service/ports"
)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	Logger *slog.Logger
}

// CreateViewRecord provisions the zeroed record for a freshly created comic.
// Exactly one record may exist per comic.
func (s Service) CreateViewRecord(ctx context.Context, comicID string) (entities.ViewRecord, error) {
	comicID = strings.TrimSpace(comicID)
	if comicID == "" {
		return entities.ViewRecord{}, domainerrors.ErrInvalidInput
	}
	if _, found, err := s.Repo.GetByComic(ctx, comicID); err != nil {
		return entities.ViewRecord{}, err
	} else if found {
		return entities.ViewRecord{}, domainerrors.ErrViewRecordExists
	}

	record := entities.ViewRecord{
		ComicID:   comicID,
		UpdatedAt: s.now(),
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		return entities.ViewRecord{}, err
	}
	return record, nil
}

// RecordView counts one qualifying read: each granularity's bucket for the
// current calendar period is incremented or opened, and the lifetime total
// grows by one.
func (s Service) RecordView(ctx context.Context, comicID string) (entities.ViewRecord, error) {
	comicID = strings.TrimSpace(comicID)
	if comicID == "" {
		return entities.ViewRecord{}, domainerrors.ErrInvalidInput
	}
	record, found, err := s.Repo.GetByComic(ctx, comicID)
	if err != nil {
		return entities.ViewRecord{}, err
	}
	if !found {
		return entities.ViewRecord{}, domainerrors.ErrViewRecordNotFound
	}

	now := s.now()
	record.DailyViews = bumpBucket(record.DailyViews, now, sameDay)
	record.WeeklyViews = bumpBucket(record.WeeklyViews, now, sameWeek)
	record.MonthlyViews = bumpBucket(record.MonthlyViews, now, sameMonth)
	record.TotalViews++
	record.UpdatedAt = now

	if err := s.Repo.Save(ctx, record); err != nil {
		return entities.ViewRecord{}, err
	}

	resolveLogger(s.Logger).Info("comic view recorded",
		"event", "view_tracking_view_recorded",
		"module", "reader-experience/view-tracking-service",
		"layer", "application",
		"comic_id", record.ComicID,
		"total_views", record.TotalViews,
	)
	return record, nil
}

func (s Service) GetViewsByComic(ctx context.Context, comicID string) (entities.ViewRecord, error) {
	comicID = strings.TrimSpace(comicID)
	if comicID == "" {
		return entities.ViewRecord{}, domainerrors.ErrInvalidInput
	}
	record, found, err := s.Repo.GetByComic(ctx, comicID)
	if err != nil {
		return entities.ViewRecord{}, err
	}
	if !found {
		return entities.ViewRecord{}, domainerrors.ErrViewRecordNotFound
	}
	return record, nil
}

func (s Service) TopViewed(ctx context.Context, limit int) ([]entities.ViewRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.Repo.ListTopViewed(ctx, limit)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

// bumpBucket increments the bucket covering now, or opens a new one stamped
// with now. At most one bucket per calendar period.
func bumpBucket(buckets []entities.ViewBucket, now time.Time, samePeriod func(a, b time.Time) bool) []entities.ViewBucket {
	for i := range buckets {
		if samePeriod(buckets[i].Date, now) {
			buckets[i].Views++
			return buckets
		}
	}
	return append(buckets, entities.ViewBucket{Date: now, Views: 1})
}
