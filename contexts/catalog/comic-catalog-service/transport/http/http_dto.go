package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateComicRequest struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Author   string `json:"author,omitempty"`
	Content  string `json:"content,omitempty"`
	Status   string `json:"status,omitempty"`
	ThumbURL string `json:"thumb_url,omitempty"`
	VIP      bool   `json:"vip"`
}

type ComicDTO struct {
	ComicID   string `json:"comic_id"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Author    string `json:"author,omitempty"`
	Content   string `json:"content,omitempty"`
	Status    string `json:"status,omitempty"`
	ThumbURL  string `json:"thumb_url,omitempty"`
	VIP       bool   `json:"vip"`
	Likes     int    `json:"likes"`
	CreatedAt string `json:"created_at"`
}

type ComicResponse struct {
	Status string   `json:"status"`
	Data   ComicDTO `json:"data"`
}

type CreateChapterRequest struct {
	Name   string   `json:"name"`
	Path   string   `json:"path,omitempty"`
	Images []string `json:"images,omitempty"`
}

type ChapterDTO struct {
	ChapterID string   `json:"chapter_id"`
	ComicID   string   `json:"comic_id"`
	Name      string   `json:"name"`
	Path      string   `json:"path,omitempty"`
	Images    []string `json:"images,omitempty"`
	CreatedAt string   `json:"created_at"`
}

type ChapterResponse struct {
	Status string     `json:"status"`
	Data   ChapterDTO `json:"data"`
}

type ChapterListResponse struct {
	Status string       `json:"status"`
	Data   []ChapterDTO `json:"data"`
}
