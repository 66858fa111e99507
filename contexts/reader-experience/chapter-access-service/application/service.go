package application

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "inkwell/contexts/reader-experience/chapter-access-service/domain/errors"
	"inkwell/contexts/reader-experience/chapter-access-service/ports"
)

const roleUserVIP = "USERVIP"

type Service struct {
	Chapters    ports.ChapterResolver
	Readers     ports.ReaderDirectory
	Progression ports.ProgressionGateway
	Views       ports.ViewRecorder
	Serializer  ports.UserSerializer

	// Zero values fall back to the platform defaults: 1 point per free
	// read, 2 points per VIP read, 1 ruby per charged VIP read.
	FreeReadPoints int
	VIPReadPoints  int
	VIPRubyCost    int

	Logger *slog.Logger
}

type ReadResult struct {
	Chapter       ports.ChapterProjection
	PointsAwarded int
	RubyCharged   int
}

// ReadChapter decides whether the read is allowed, what it costs and what it
// rewards, then applies the outcome in order: ruby debit, point award, view
// recording. A failed debit leaves points, ruby and view counts untouched.
func (s Service) ReadChapter(ctx context.Context, userID string, chapterID string) (ReadResult, error) {
	chapterID = strings.TrimSpace(chapterID)
	if chapterID == "" {
		return ReadResult{}, domainerrors.ErrInvalidInput
	}
	chapter, err := s.Chapters.GetChapter(ctx, chapterID)
	if err != nil {
		return ReadResult{}, err
	}

	userID = strings.TrimSpace(userID)
	anonymous := userID == ""

	if !chapter.ComicVIP {
		return s.serveFreeRead(ctx, userID, anonymous, chapter)
	}

	if anonymous {
		return ReadResult{}, domainerrors.ErrAuthenticationRequired
	}
	reader, err := s.Readers.GetReader(ctx, userID)
	if err != nil {
		return ReadResult{}, err
	}
	if reader.Role == roleUserVIP {
		return s.serveVIPSubscriberRead(ctx, userID, chapter)
	}
	return s.serveChargedVIPRead(ctx, userID, chapter)
}

func (s Service) serveFreeRead(
	ctx context.Context,
	userID string,
	anonymous bool,
	chapter ports.ChapterProjection,
) (ReadResult, error) {
	if anonymous {
		if err := s.Views.RecordView(ctx, chapter.ComicID); err != nil {
			return ReadResult{}, err
		}
		s.logServed(chapter, "", 0, 0)
		return ReadResult{Chapter: chapter}, nil
	}

	points := s.freeReadPoints()
	err := s.withUserLock(ctx, userID, func(ctx context.Context) error {
		if err := s.Progression.AwardPoints(ctx, userID, points); err != nil {
			return err
		}
		return s.Views.RecordView(ctx, chapter.ComicID)
	})
	if err != nil {
		return ReadResult{}, err
	}
	s.logServed(chapter, userID, points, 0)
	return ReadResult{Chapter: chapter, PointsAwarded: points}, nil
}

func (s Service) serveVIPSubscriberRead(
	ctx context.Context,
	userID string,
	chapter ports.ChapterProjection,
) (ReadResult, error) {
	points := s.vipReadPoints()
	err := s.withUserLock(ctx, userID, func(ctx context.Context) error {
		if err := s.Progression.AwardPoints(ctx, userID, points); err != nil {
			return err
		}
		return s.Views.RecordView(ctx, chapter.ComicID)
	})
	if err != nil {
		return ReadResult{}, err
	}
	s.logServed(chapter, userID, points, 0)
	return ReadResult{Chapter: chapter, PointsAwarded: points}, nil
}

func (s Service) serveChargedVIPRead(
	ctx context.Context,
	userID string,
	chapter ports.ChapterProjection,
) (ReadResult, error) {
	points := s.vipReadPoints()
	cost := s.vipRubyCost()
	err := s.withUserLock(ctx, userID, func(ctx context.Context) error {
		if err := s.Progression.DebitRuby(ctx, userID, cost); err != nil {
			return err
		}
		if err := s.Progression.AwardPoints(ctx, userID, points); err != nil {
			return err
		}
		return s.Views.RecordView(ctx, chapter.ComicID)
	})
	if err != nil {
		return ReadResult{}, err
	}
	s.logServed(chapter, userID, points, cost)
	return ReadResult{Chapter: chapter, PointsAwarded: points, RubyCharged: cost}, nil
}

func (s Service) withUserLock(ctx context.Context, userID string, fn func(ctx context.Context) error) error {
	if s.Serializer == nil {
		return fn(ctx)
	}
	return s.Serializer.WithUserLock(ctx, userID, fn)
}

func (s Service) freeReadPoints() int {
	if s.FreeReadPoints <= 0 {
		return 1
	}
	return s.FreeReadPoints
}

func (s Service) vipReadPoints() int {
	if s.VIPReadPoints <= 0 {
		return 2
	}
	return s.VIPReadPoints
}

func (s Service) vipRubyCost() int {
	if s.VIPRubyCost <= 0 {
		return 1
	}
	return s.VIPRubyCost
}

func (s Service) logServed(chapter ports.ChapterProjection, userID string, points int, ruby int) {
	resolveLogger(s.Logger).Info("chapter served",
		"event", "chapter_access_served",
		"module", "reader-experience/chapter-access-service",
		"layer", "application",
		"chapter_id", chapter.ChapterID,
		"comic_id", chapter.ComicID,
		"vip", chapter.ComicVIP,
		"user_id", userID,
		"points_awarded", points,
		"ruby_charged", ruby,
	)
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
