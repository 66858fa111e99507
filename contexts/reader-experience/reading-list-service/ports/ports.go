package ports

import (
	"context"
	"time"

	"inkwell/contexts/reader-experience/reading-list-service/domain/entities"
)

type Repository interface {
	GetLists(ctx context.Context, userID string) (entities.ReaderLists, error)
	SaveLists(ctx context.Context, lists entities.ReaderLists) error
}

type ChapterRef struct {
	ChapterID string
	ComicID   string
}

type ChapterResolver interface {
	GetChapter(ctx context.Context, chapterID string) (ChapterRef, error)
}

// LikeCounter moves the comic's denormalized like counter together with the
// reader's likes-set membership.
type LikeCounter interface {
	AdjustLikes(ctx context.Context, comicID string, delta int) (int, error)
}

type Clock interface {
	Now() time.Time
}
