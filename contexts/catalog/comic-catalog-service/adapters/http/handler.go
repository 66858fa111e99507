package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"inkwell/contexts/catalog/comic-catalog-service/application"
	"inkwell/contexts/catalog/comic-catalog-service/domain/entities"
	"inkwell/contexts/catalog/comic-catalog-service/ports"
	httptransport "inkwell/contexts/catalog/comic-catalog-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// @Summary Create a comic
// @Description Registers a comic and provisions its zeroed view record.
// @Tags comic-catalog
// @Accept json
// @Produce json
// @Param request body httptransport.CreateComicRequest true "Comic payload"
// @Success 201 {object} httptransport.ComicResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /v1/comics [post]
func (h Handler) CreateComicHandler(ctx context.Context, req httptransport.CreateComicRequest) (httptransport.ComicResponse, error) {
	comic, err := h.Service.CreateComic(ctx, ports.CreateComicInput{
		Slug:     req.Slug,
		Name:     req.Name,
		Author:   req.Author,
		Content:  req.Content,
		Status:   req.Status,
		ThumbURL: req.ThumbURL,
		VIP:      req.VIP,
	})
	if err != nil {
		return httptransport.ComicResponse{}, err
	}
	return comicResponse(comic), nil
}

// @Summary Get a comic
// @Description Fetches a comic by id, falling back to slug lookup.
// @Tags comic-catalog
// @Produce json
// @Param comic_id path string true "Comic id or slug"
// @Success 200 {object} httptransport.ComicResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /v1/comics/{comic_id} [get]
func (h Handler) GetComicHandler(ctx context.Context, idOrSlug string) (httptransport.ComicResponse, error) {
	comic, err := h.Service.GetComic(ctx, idOrSlug)
	if err != nil {
		return httptransport.ComicResponse{}, err
	}
	return comicResponse(comic), nil
}

func (h Handler) CreateChapterHandler(
	ctx context.Context,
	comicID string,
	req httptransport.CreateChapterRequest,
) (httptransport.ChapterResponse, error) {
	chapter, err := h.Service.CreateChapter(ctx, comicID, ports.CreateChapterInput{
		Name:   req.Name,
		Path:   req.Path,
		Images: req.Images,
	})
	if err != nil {
		return httptransport.ChapterResponse{}, err
	}
	return httptransport.ChapterResponse{
		Status: "success",
		Data:   chapterDTO(chapter),
	}, nil
}

func (h Handler) ListChaptersHandler(ctx context.Context, comicID string) (httptransport.ChapterListResponse, error) {
	chapters, err := h.Service.ListChaptersByComic(ctx, comicID)
	if err != nil {
		return httptransport.ChapterListResponse{}, err
	}
	resp := httptransport.ChapterListResponse{
		Status: "success",
		Data:   make([]httptransport.ChapterDTO, 0, len(chapters)),
	}
	for _, chapter := range chapters {
		resp.Data = append(resp.Data, chapterDTO(chapter))
	}
	return resp, nil
}

func comicResponse(comic entities.Comic) httptransport.ComicResponse {
	return httptransport.ComicResponse{
		Status: "success",
		Data: httptransport.ComicDTO{
			ComicID:   comic.ComicID,
			Slug:      comic.Slug,
			Name:      comic.Name,
			Author:    comic.Author,
			Content:   comic.Content,
			Status:    comic.Status,
			ThumbURL:  comic.ThumbURL,
			VIP:       comic.VIP,
			Likes:     comic.Likes,
			CreatedAt: comic.CreatedAt.UTC().Format(time.RFC3339),
		},
	}
}

func chapterDTO(chapter entities.Chapter) httptransport.ChapterDTO {
	return httptransport.ChapterDTO{
		ChapterID: chapter.ChapterID,
		ComicID:   chapter.ComicID,
		Name:      chapter.Name,
		Path:      chapter.Path,
		Images:    append([]string{}, chapter.Images...),
		CreatedAt: chapter.CreatedAt.UTC().Format(time.RFC3339),
	}
}
