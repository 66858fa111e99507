package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AwardPointsRequest struct {
	Points int `json:"points"`
}

type ProgressDTO struct {
	UserID       string   `json:"user_id"`
	Role         string   `json:"role"`
	Points       int      `json:"points"`
	Level        int      `json:"level"`
	LevelName    string   `json:"level_name"`
	Ruby         int      `json:"ruby"`
	Achievements []string `json:"achievements"`
	UpdatedAt    string   `json:"updated_at"`
}

type ProgressResponse struct {
	Status string      `json:"status"`
	Data   ProgressDTO `json:"data"`
}

type AddAchievementRequest struct {
	AchievementID string `json:"achievement_id"`
}

type LevelDTO struct {
	Level           int    `json:"level"`
	LevelName       string `json:"level_name"`
	PointsThreshold int    `json:"points_threshold"`
	RubyBonus       int    `json:"ruby_bonus"`
}

type ResolveLevelResponse struct {
	Status string   `json:"status"`
	Data   LevelDTO `json:"data"`
}
