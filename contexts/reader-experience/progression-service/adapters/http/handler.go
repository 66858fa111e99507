package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"inkwell/contexts/reader-experience/progression-service/application"
	"inkwell/contexts/reader-experience/progression-service/domain/entities"
	httptransport "inkwell/contexts/reader-experience/progression-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// @Summary Award reading points
// @Description Adds points to the reader and applies the level-up ruby bonus when a threshold is crossed.
// @Tags progression
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "User id"
// @Param request body httptransport.AwardPointsRequest true "Points payload"
// @Success 200 {object} httptransport.ProgressResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /v1/users/{user_id}/points [post]
func (h Handler) AwardPointsHandler(
	ctx context.Context,
	userID string,
	req httptransport.AwardPointsRequest,
) (httptransport.ProgressResponse, error) {
	progress, err := h.Service.AwardPoints(ctx, userID, req.Points)
	if err != nil {
		return httptransport.ProgressResponse{}, err
	}
	return progressResponse(progress), nil
}

// @Summary Get reader progress
// @Tags progression
// @Produce json
// @Param user_id path string true "User id"
// @Success 200 {object} httptransport.ProgressResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /v1/users/{user_id}/progress [get]
func (h Handler) GetProgressHandler(ctx context.Context, userID string) (httptransport.ProgressResponse, error) {
	progress, err := h.Service.GetProgress(ctx, userID)
	if err != nil {
		return httptransport.ProgressResponse{}, err
	}
	return progressResponse(progress), nil
}

func (h Handler) AddAchievementHandler(
	ctx context.Context,
	userID string,
	req httptransport.AddAchievementRequest,
) (httptransport.ProgressResponse, error) {
	progress, err := h.Service.AddAchievement(ctx, userID, req.AchievementID)
	if err != nil {
		return httptransport.ProgressResponse{}, err
	}
	return progressResponse(progress), nil
}

func (h Handler) RemoveAchievementHandler(
	ctx context.Context,
	userID string,
	achievementID string,
) (httptransport.ProgressResponse, error) {
	progress, err := h.Service.RemoveAchievement(ctx, userID, achievementID)
	if err != nil {
		return httptransport.ProgressResponse{}, err
	}
	return progressResponse(progress), nil
}

func (h Handler) ResolveLevelHandler(_ context.Context, points int) httptransport.ResolveLevelResponse {
	def := h.Service.ResolveLevel(points)
	resp := httptransport.ResolveLevelResponse{Status: "success"}
	resp.Data = httptransport.LevelDTO{
		Level:           def.Level,
		LevelName:       def.Name,
		PointsThreshold: def.PointsThreshold,
		RubyBonus:       def.RubyBonus,
	}
	return resp
}

func progressResponse(progress entities.ReaderProgress) httptransport.ProgressResponse {
	resp := httptransport.ProgressResponse{Status: "success"}
	resp.Data = httptransport.ProgressDTO{
		UserID:       progress.UserID,
		Role:         string(progress.Role),
		Points:       progress.Points,
		Level:        progress.Level,
		LevelName:    progress.LevelName,
		Ruby:         progress.Ruby,
		Achievements: append([]string{}, progress.Achievements...),
		UpdatedAt:    progress.UpdatedAt.UTC().Format(time.RFC3339),
	}
	return resp
}
