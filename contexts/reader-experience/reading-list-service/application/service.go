package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"inkwell/contexts/reader-experience/reading-list-service/domain/entities"
	domainerrors "inkwell/contexts/reader-experience/reading-list-service/domain/errors"
	"inkwell/contexts/reader-experience/reading-list-service/ports"
)

// historyCap bounds the recency history per reader. Adding past the cap
// evicts the oldest entry.
const historyCap = 10

type Service struct {
	Repo     ports.Repository
	Chapters ports.ChapterResolver
	Comics   ports.LikeCounter
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (s Service) GetLists(ctx context.Context, userID string) (entities.ReaderLists, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.ReaderLists{}, domainerrors.ErrInvalidInput
	}
	lists, err := s.Repo.GetLists(ctx, userID)
	if err != nil {
		return entities.ReaderLists{}, s.logError(ctx, "reading_list_get_failed", userID, err)
	}
	return lists, nil
}

// AddToHistory records a read chapter. A chapter already present anywhere in
// the history leaves it untouched; a different chapter of a comic already in
// the history replaces that comic's entry rather than sitting next to it.
func (s Service) AddToHistory(ctx context.Context, userID string, chapterID string) (entities.ReaderLists, error) {
	userID = strings.TrimSpace(userID)
	chapterID = strings.TrimSpace(chapterID)
	if userID == "" || chapterID == "" {
		return entities.ReaderLists{}, domainerrors.ErrInvalidInput
	}

	ref, err := s.Chapters.GetChapter(ctx, chapterID)
	if err != nil {
		return entities.ReaderLists{}, s.logError(ctx, "history_chapter_lookup_failed", userID, err)
	}

	lists, err := s.Repo.GetLists(ctx, userID)
	if err != nil {
		return entities.ReaderLists{}, s.logError(ctx, "history_add_failed", userID, err)
	}
	if lists.HasChapterInHistory(chapterID) {
		return lists, nil
	}

	history := make([]entities.HistoryEntry, 0, len(lists.History)+1)
	for _, entry := range lists.History {
		if entry.ComicID == ref.ComicID {
			continue
		}
		history = append(history, entry)
	}
	history = append(history, entities.HistoryEntry{
		ComicID:   ref.ComicID,
		ChapterID: chapterID,
		AddedAt:   s.now(),
	})
	if len(history) > historyCap {
		history = history[len(history)-historyCap:]
	}
	lists.History = history

	if err := s.Repo.SaveLists(ctx, lists); err != nil {
		return entities.ReaderLists{}, s.logError(ctx, "history_add_failed", userID, err)
	}
	s.logMutation(ctx, "history_entry_added", userID, slog.String("chapter_id", chapterID))
	return lists, nil
}

// RemoveFromHistory drops the entry for the given chapter. Removing a
// chapter that is not in the history is a no-op.
func (s Service) RemoveFromHistory(ctx context.Context, userID string, chapterID string) (entities.ReaderLists, error) {
	userID = strings.TrimSpace(userID)
	chapterID = strings.TrimSpace(chapterID)
	if userID == "" || chapterID == "" {
		return entities.ReaderLists{}, domainerrors.ErrInvalidInput
	}

	lists, err := s.Repo.GetLists(ctx, userID)
	if err != nil {
		return entities.ReaderLists{}, s.logError(ctx, "history_remove_failed", userID, err)
	}
	if !lists.HasChapterInHistory(chapterID) {
		return lists, nil
	}

	history := make([]entities.HistoryEntry, 0, len(lists.History))
	for _, entry := range lists.History {
		if entry.ChapterID == chapterID {
			continue
		}
		history = append(history, entry)
	}
	lists.History = history

	if err := s.Repo.SaveLists(ctx, lists); err != nil {
		return entities.ReaderLists{}, s.logError(ctx, "history_remove_failed", userID, err)
	}
	s.logMutation(ctx, "history_entry_removed", userID, slog.String("chapter_id", chapterID))
	return lists, nil
}

// AddToSaved puts the comic on the reader's saved list. Saving an already
// saved comic is a no-op.
func (s Service) AddToSaved(ctx context.Context, userID string, comicID string) (entities.ReaderLists, error) {
	userID = strings.TrimSpace(userID)
	comicID = strings.TrimSpace(comicID)
	if userID == "" || comicID == "" {
		return entities.ReaderLists{}, domainerrors.ErrInvalidInput
	}

	lists, err := s.Repo.GetLists(ctx, userID)
	if err != nil {
		return entities.ReaderLists{}, s.logError(ctx, "saved_add_failed", userID, err)
	}
	if lists.HasSaved(comicID) {
		return lists, nil
	}
	lists.Saved = append(lists.Saved, comicID)

	if err := s.Repo.SaveLists(ctx, lists); err != nil {
		return entities.ReaderLists{}, s.logError(ctx, "saved_add_failed", userID, err)
	}
	s.logMutation(ctx, "saved_comic_added", userID, slog.String("comic_id", comicID))
	return lists, nil
}

// RemoveFromSaved takes the comic off the saved list; absent comics are a
// no-op.
func (s Service) RemoveFromSaved(ctx context.Context, userID string, comicID string) (entities.ReaderLists, error) {
	userID = strings.TrimSpace(userID)
	comicID = strings.TrimSpace(comicID)
	if userID == "" || comicID == "" {
		return entities.ReaderLists{}, domainerrors.ErrInvalidInput
	}

	lists, err := s.Repo.GetLists(ctx, userID)
	if err != nil {
		return entities.ReaderLists{}, s.logError(ctx, "saved_remove_failed", userID, err)
	}
	if !lists.HasSaved(comicID) {
		return lists, nil
	}
	lists.Saved = removeString(lists.Saved, comicID)

	if err := s.Repo.SaveLists(ctx, lists); err != nil {
		return entities.ReaderLists{}, s.logError(ctx, "saved_remove_failed", userID, err)
	}
	s.logMutation(ctx, "saved_comic_removed", userID, slog.String("comic_id", comicID))
	return lists, nil
}

// AddToLikes puts the comic on the reader's likes list and bumps the comic's
// like counter in the same operation. Liking an already liked comic changes
// neither the list nor the counter.
func (s Service) AddToLikes(ctx context.Context, userID string, comicID string) (entities.ReaderLists, error) {
	userID = strings.TrimSpace(userID)
	comicID = strings.TrimSpace(comicID)
	if userID == "" || comicID == "" {
		return entities.ReaderLists{}, domainerrors.ErrInvalidInput
	}

	lists, err := s.Repo.GetLists(ctx, userID)
	if err != nil {
		return entities.ReaderLists{}, s.logError(ctx, "likes_add_failed", userID, err)
	}
	if lists.HasLiked(comicID) {
		return lists, nil
	}

	if _, err := s.Comics.AdjustLikes(ctx, comicID, 1); err != nil {
		return entities.ReaderLists{}, s.logError(ctx, "likes_counter_adjust_failed", userID, err)
	}
	lists.Likes = append(lists.Likes, comicID)

	if err := s.Repo.SaveLists(ctx, lists); err != nil {
		return entities.ReaderLists{}, s.logError(ctx, "likes_add_failed", userID, err)
	}
	s.logMutation(ctx, "liked_comic_added", userID, slog.String("comic_id", comicID))
	return lists, nil
}

// RemoveFromLikes takes the comic off the likes list and decrements the
// comic's like counter. Unliking a comic that is not on the list is a no-op.
func (s Service) RemoveFromLikes(ctx context.Context, userID string, comicID string) (entities.ReaderLists, error) {
	userID = strings.TrimSpace(userID)
	comicID = strings.TrimSpace(comicID)
	if userID == "" || comicID == "" {
		return entities.ReaderLists{}, domainerrors.ErrInvalidInput
	}

	lists, err := s.Repo.GetLists(ctx, userID)
	if err != nil {
		return entities.ReaderLists{}, s.logError(ctx, "likes_remove_failed", userID, err)
	}
	if !lists.HasLiked(comicID) {
		return lists, nil
	}

	if _, err := s.Comics.AdjustLikes(ctx, comicID, -1); err != nil {
		return entities.ReaderLists{}, s.logError(ctx, "likes_counter_adjust_failed", userID, err)
	}
	lists.Likes = removeString(lists.Likes, comicID)

	if err := s.Repo.SaveLists(ctx, lists); err != nil {
		return entities.ReaderLists{}, s.logError(ctx, "likes_remove_failed", userID, err)
	}
	s.logMutation(ctx, "liked_comic_removed", userID, slog.String("comic_id", comicID))
	return lists, nil
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now()
	}
	return time.Now().UTC()
}

func (s Service) logMutation(ctx context.Context, event string, userID string, attrs ...any) {
	logger := resolveLogger(s.Logger)
	args := append([]any{
		slog.String("event", event),
		slog.String("module", "reading-list-service"),
		slog.String("layer", "application"),
		slog.String("user_id", userID),
	}, attrs...)
	logger.InfoContext(ctx, "reading list updated", args...)
}

func (s Service) logError(ctx context.Context, event string, userID string, err error) error {
	resolveLogger(s.Logger).ErrorContext(ctx, "reading list operation failed",
		slog.String("event", event),
		slog.String("module", "reading-list-service"),
		slog.String("layer", "application"),
		slog.String("user_id", userID),
		slog.String("error", err.Error()),
	)
	return err
}

func removeString(items []string, value string) []string {
	filtered := make([]string, 0, len(items))
	for _, item := range items {
		if item == value {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
