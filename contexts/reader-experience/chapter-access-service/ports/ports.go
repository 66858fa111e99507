package ports

import "context"

// ChapterProjection is the slice of catalog state the gate needs: the chapter
// itself plus the parent comic's vip flag.
type ChapterProjection struct {
	ChapterID string
	ComicID   string
	Name      string
	Path      string
	Images    []string
	ComicVIP  bool
}

type ReaderProjection struct {
	UserID string
	Role   string
	Ruby   int
}

type ChapterResolver interface {
	GetChapter(ctx context.Context, chapterID string) (ChapterProjection, error)
}

type ReaderDirectory interface {
	GetReader(ctx context.Context, userID string) (ReaderProjection, error)
}

type ProgressionGateway interface {
	DebitRuby(ctx context.Context, userID string, amount int) error
	AwardPoints(ctx context.Context, userID string, points int) error
}

type ViewRecorder interface {
	RecordView(ctx context.Context, comicID string) error
}

// UserSerializer runs fn under a per-user exclusion boundary. The gate wraps
// its debit, award and view-recording sequence in it so concurrent reads for
// the same user observe each other's writes.
type UserSerializer interface {
	WithUserLock(ctx context.Context, userID string, fn func(ctx context.Context) error) error
}
