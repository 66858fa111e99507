package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ViewBucketDTO struct {
	Date  string `json:"date"`
	Views int    `json:"views"`
}

type ViewRecordDTO struct {
	ComicID      string          `json:"comic_id"`
	TotalViews   int             `json:"total_views"`
	DailyViews   []ViewBucketDTO `json:"daily_views"`
	WeeklyViews  []ViewBucketDTO `json:"weekly_views"`
	MonthlyViews []ViewBucketDTO `json:"monthly_views"`
}

type ViewRecordResponse struct {
	Status string        `json:"status"`
	Data   ViewRecordDTO `json:"data"`
}

type TopViewedEntryDTO struct {
	Rank       int    `json:"rank"`
	ComicID    string `json:"comic_id"`
	TotalViews int    `json:"total_views"`
}

type TopViewedResponse struct {
	Status string              `json:"status"`
	Data   []TopViewedEntryDTO `json:"data"`
}
