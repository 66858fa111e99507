package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ReadChapterResponse struct {
	Status string `json:"status"`
	Data   struct {
		ChapterID     string   `json:"chapter_id"`
		ComicID       string   `json:"comic_id"`
		Name          string   `json:"name"`
		Path          string   `json:"path,omitempty"`
		Images        []string `json:"images,omitempty"`
		VIP           bool     `json:"vip"`
		PointsAwarded int      `json:"points_awarded"`
		RubyCharged   int      `json:"ruby_charged"`
	} `json:"data"`
}
