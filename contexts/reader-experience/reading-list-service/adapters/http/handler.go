package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"inkwell/contexts/reader-experience/reading-list-service/application"
	"inkwell/contexts/reader-experience/reading-list-service/domain/entities"
	httptransport "inkwell/contexts/reader-experience/reading-list-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) GetListsHandler(ctx context.Context, userID string) (httptransport.ListsResponse, error) {
	lists, err := h.Service.GetLists(ctx, userID)
	if err != nil {
		return httptransport.ListsResponse{}, err
	}
	return listsResponse(lists), nil
}

func (h Handler) GetHistoryHandler(ctx context.Context, userID string) (httptransport.HistoryResponse, error) {
	lists, err := h.Service.GetLists(ctx, userID)
	if err != nil {
		return httptransport.HistoryResponse{}, err
	}
	resp := httptransport.HistoryResponse{
		Status: "success",
		Data:   make([]httptransport.HistoryEntryDTO, 0, len(lists.History)),
	}
	for _, entry := range lists.History {
		resp.Data = append(resp.Data, httptransport.HistoryEntryDTO{
			ComicID:   entry.ComicID,
			ChapterID: entry.ChapterID,
			AddedAt:   entry.AddedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp, nil
}

func (h Handler) GetSavedHandler(ctx context.Context, userID string) (httptransport.ComicListResponse, error) {
	lists, err := h.Service.GetLists(ctx, userID)
	if err != nil {
		return httptransport.ComicListResponse{}, err
	}
	return httptransport.ComicListResponse{
		Status: "success",
		Data:   append([]string{}, lists.Saved...),
	}, nil
}

func (h Handler) GetLikesHandler(ctx context.Context, userID string) (httptransport.ComicListResponse, error) {
	lists, err := h.Service.GetLists(ctx, userID)
	if err != nil {
		return httptransport.ComicListResponse{}, err
	}
	return httptransport.ComicListResponse{
		Status: "success",
		Data:   append([]string{}, lists.Likes...),
	}, nil
}

func (h Handler) AddHistoryHandler(
	ctx context.Context,
	userID string,
	req httptransport.AddHistoryRequest,
) (httptransport.ListsResponse, error) {
	lists, err := h.Service.AddToHistory(ctx, userID, req.ChapterID)
	if err != nil {
		return httptransport.ListsResponse{}, err
	}
	return listsResponse(lists), nil
}

func (h Handler) RemoveHistoryHandler(
	ctx context.Context,
	userID string,
	chapterID string,
) (httptransport.ListsResponse, error) {
	lists, err := h.Service.RemoveFromHistory(ctx, userID, chapterID)
	if err != nil {
		return httptransport.ListsResponse{}, err
	}
	return listsResponse(lists), nil
}

func (h Handler) AddSavedHandler(
	ctx context.Context,
	userID string,
	req httptransport.AddComicRequest,
) (httptransport.ListsResponse, error) {
	lists, err := h.Service.AddToSaved(ctx, userID, req.ComicID)
	if err != nil {
		return httptransport.ListsResponse{}, err
	}
	return listsResponse(lists), nil
}

func (h Handler) RemoveSavedHandler(
	ctx context.Context,
	userID string,
	comicID string,
) (httptransport.ListsResponse, error) {
	lists, err := h.Service.RemoveFromSaved(ctx, userID, comicID)
	if err != nil {
		return httptransport.ListsResponse{}, err
	}
	return listsResponse(lists), nil
}

func (h Handler) AddLikeHandler(
	ctx context.Context,
	userID string,
	req httptransport.AddComicRequest,
) (httptransport.ListsResponse, error) {
	lists, err := h.Service.AddToLikes(ctx, userID, req.ComicID)
	if err != nil {
		return httptransport.ListsResponse{}, err
	}
	return listsResponse(lists), nil
}

func (h Handler) RemoveLikeHandler(
	ctx context.Context,
	userID string,
	comicID string,
) (httptransport.ListsResponse, error) {
	lists, err := h.Service.RemoveFromLikes(ctx, userID, comicID)
	if err != nil {
		return httptransport.ListsResponse{}, err
	}
	return listsResponse(lists), nil
}

func listsResponse(lists entities.ReaderLists) httptransport.ListsResponse {
	resp := httptransport.ListsResponse{Status: "success"}
	resp.Data = httptransport.ListsDTO{
		UserID:  lists.UserID,
		History: make([]httptransport.HistoryEntryDTO, 0, len(lists.History)),
		Saved:   append([]string{}, lists.Saved...),
		Likes:   append([]string{}, lists.Likes...),
	}
	for _, entry := range lists.History {
		resp.Data.History = append(resp.Data.History, httptransport.HistoryEntryDTO{
			ComicID:   entry.ComicID,
			ChapterID: entry.ChapterID,
			AddedAt:   entry.AddedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp
}
