package httpadapter

import (
	"context"
	"log/slog"

	"inkwell/contexts/reader-experience/chapter-access-service/application"
	httptransport "inkwell/contexts/reader-experience/chapter-access-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// ReadChapterHandler serves the gated read. An empty userID means the caller
// is anonymous.
//
// @Summary Read a chapter
// @Description Serves chapter content through the access gate. VIP chapters require authentication and either a VIP subscription or one ruby.
// @Tags chapter-access
// @Produce json
// @Security BearerAuth
// @Param chapter_id path string true "Chapter id"
// @Success 200 {object} httptransport.ReadChapterResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /v1/chapters/{chapter_id} [get]
func (h Handler) ReadChapterHandler(ctx context.Context, userID string, chapterID string) (httptransport.ReadChapterResponse, error) {
	result, err := h.Service.ReadChapter(ctx, userID, chapterID)
	if err != nil {
		return httptransport.ReadChapterResponse{}, err
	}
	resp := httptransport.ReadChapterResponse{Status: "success"}
	resp.Data.ChapterID = result.Chapter.ChapterID
	resp.Data.ComicID = result.Chapter.ComicID
	resp.Data.Name = result.Chapter.Name
	resp.Data.Path = result.Chapter.Path
	resp.Data.Images = append([]string{}, result.Chapter.Images...)
	resp.Data.VIP = result.Chapter.ComicVIP
	resp.Data.PointsAwarded = result.PointsAwarded
	resp.Data.RubyCharged = result.RubyCharged
	return resp, nil
}
