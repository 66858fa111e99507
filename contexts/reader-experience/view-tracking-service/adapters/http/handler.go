package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"inkwell/contexts/reader-experience/view-tracking-service/application"
	"inkwell/contexts/reader-experience/view-tracking-service/domain/entities"
	httptransport "inkwell/contexts/reader-experience/view-tracking-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) GetViewsHandler(ctx context.Context, comicID string) (httptransport.ViewRecordResponse, error) {
	record, err := h.Service.GetViewsByComic(ctx, comicID)
	if err != nil {
		return httptransport.ViewRecordResponse{}, err
	}
	return viewRecordResponse(record), nil
}

func (h Handler) TopViewedHandler(ctx context.Context, limit int) (httptransport.TopViewedResponse, error) {
	records, err := h.Service.TopViewed(ctx, limit)
	if err != nil {
		return httptransport.TopViewedResponse{}, err
	}
	resp := httptransport.TopViewedResponse{
		Status: "success",
		Data:   make([]httptransport.TopViewedEntryDTO, 0, len(records)),
	}
	for i, record := range records {
		resp.Data = append(resp.Data, httptransport.TopViewedEntryDTO{
			Rank:       i + 1,
			ComicID:    record.ComicID,
			TotalViews: record.TotalViews,
		})
	}
	return resp, nil
}

func viewRecordResponse(record entities.ViewRecord) httptransport.ViewRecordResponse {
	resp := httptransport.ViewRecordResponse{Status: "success"}
	resp.Data = httptransport.ViewRecordDTO{
		ComicID:      record.ComicID,
		TotalViews:   record.TotalViews,
		DailyViews:   bucketDTOs(record.DailyViews),
		WeeklyViews:  bucketDTOs(record.WeeklyViews),
		MonthlyViews: bucketDTOs(record.MonthlyViews),
	}
	return resp
}

func bucketDTOs(buckets []entities.ViewBucket) []httptransport.ViewBucketDTO {
	items := make([]httptransport.ViewBucketDTO, 0, len(buckets))
	for _, bucket := range buckets {
		items = append(items, httptransport.ViewBucketDTO{
			Date:  bucket.Date.UTC().Format(time.RFC3339),
			Views: bucket.Views,
		})
	}
	return items
}
