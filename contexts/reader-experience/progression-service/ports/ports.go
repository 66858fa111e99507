package ports

import (
	"context"
	"time"

	"inkwell/contexts/reader-experience/progression-service/domain/entities"
)

type Repository interface {
	GetProgress(ctx context.Context, userID string) (entities.ReaderProgress, error)
	SaveProgress(ctx context.Context, progress entities.ReaderProgress) error
}

// AchievementDirectory answers whether an achievement definition exists in
// the platform catalog. Grants are rejected for unknown achievements.
type AchievementDirectory interface {
	AchievementExists(ctx context.Context, achievementID string) (bool, error)
}

type Clock interface {
	Now() time.Time
}
