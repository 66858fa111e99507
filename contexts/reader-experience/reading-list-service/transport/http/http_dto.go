package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AddHistoryRequest struct {
	ChapterID string `json:"chapter_id"`
}

type AddComicRequest struct {
	ComicID string `json:"comic_id"`
}

type HistoryEntryDTO struct {
	ComicID   string `json:"comic_id"`
	ChapterID string `json:"chapter_id"`
	AddedAt   string `json:"added_at"`
}

type ListsDTO struct {
	UserID  string            `json:"user_id"`
	History []HistoryEntryDTO `json:"history"`
	Saved   []string          `json:"saved"`
	Likes   []string          `json:"likes"`
}

type ListsResponse struct {
	Status string   `json:"status"`
	Data   ListsDTO `json:"data"`
}

type HistoryResponse struct {
	Status string            `json:"status"`
	Data   []HistoryEntryDTO `json:"data"`
}

type ComicListResponse struct {
	Status string   `json:"status"`
	Data   []string `json:"data"`
}
