package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"inkwell/contexts/reader-experience/reading-list-service/adapters/memory"
	"inkwell/contexts/reader-experience/reading-list-service/domain/entities"
	domainerrors "inkwell/contexts/reader-experience/reading-list-service/domain/errors"
	"inkwell/contexts/reader-experience/reading-list-service/ports"
)

type fakeChapters map[string]ports.ChapterRef

func (f fakeChapters) GetChapter(_ context.Context, chapterID string) (ports.ChapterRef, error) {
	ref, ok := f[chapterID]
	if !ok {
		return ports.ChapterRef{}, domainerrors.ErrChapterNotFound
	}
	return ref, nil
}

type fakeLikeCounter struct {
	counts map[string]int
	known  map[string]bool
}

func newFakeLikeCounter(comics ...string) *fakeLikeCounter {
	counter := &fakeLikeCounter{counts: map[string]int{}, known: map[string]bool{}}
	for _, comic := range comics {
		counter.known[comic] = true
	}
	return counter
}

func (f *fakeLikeCounter) AdjustLikes(_ context.Context, comicID string, delta int) (int, error) {
	if !f.known[comicID] {
		return 0, domainerrors.ErrComicNotFound
	}
	f.counts[comicID] += delta
	if f.counts[comicID] < 0 {
		f.counts[comicID] = 0
	}
	return f.counts[comicID], nil
}

func newListService(chapters fakeChapters, comics *fakeLikeCounter) (Service, *memory.Store) {
	store := memory.NewStore([]entities.ReaderLists{{UserID: "reader-1"}})
	return Service{
		Repo:     store,
		Chapters: chapters,
		Comics:   comics,
		Clock:    store,
	}, store
}

func chapterFixtures() fakeChapters {
	chapters := fakeChapters{}
	for comic := 1; comic <= 12; comic++ {
		for chapter := 1; chapter <= 3; chapter++ {
			id := fmt.Sprintf("comic-%d-ch-%d", comic, chapter)
			chapters[id] = ports.ChapterRef{ChapterID: id, ComicID: fmt.Sprintf("comic-%d", comic)}
		}
	}
	return chapters
}

func TestAddToHistoryUnknownReader(t *testing.T) {
	service, _ := newListService(chapterFixtures(), newFakeLikeCounter())
	if _, err := service.AddToHistory(context.Background(), "ghost", "comic-1-ch-1"); !errors.Is(err, domainerrors.ErrReaderNotFound) {
		t.Fatalf("expected ErrReaderNotFound, got %v", err)
	}
}

func TestAddToHistoryUnknownChapter(t *testing.T) {
	service, _ := newListService(chapterFixtures(), newFakeLikeCounter())
	if _, err := service.AddToHistory(context.Background(), "reader-1", "ghost"); !errors.Is(err, domainerrors.ErrChapterNotFound) {
		t.Fatalf("expected ErrChapterNotFound, got %v", err)
	}
}

func TestAddToHistoryExactChapterIsNoOp(t *testing.T) {
	service, _ := newListService(chapterFixtures(), newFakeLikeCounter())
	ctx := context.Background()

	if _, err := service.AddToHistory(ctx, "reader-1", "comic-1-ch-1"); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if _, err := service.AddToHistory(ctx, "reader-1", "comic-2-ch-1"); err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	lists, err := service.AddToHistory(ctx, "reader-1", "comic-1-ch-1")
	if err != nil {
		t.Fatalf("repeat add failed: %v", err)
	}
	if len(lists.History) != 2 {
		t.Fatalf("expected history unchanged at 2 entries, got %d", len(lists.History))
	}
	// The repeat must not reorder: comic-1 stays the oldest entry.
	if lists.History[0].ComicID != "comic-1" {
		t.Fatalf("expected comic-1 to remain oldest, got %s", lists.History[0].ComicID)
	}
}

func TestAddToHistorySameComicDifferentChapterReplaces(t *testing.T) {
	service, _ := newListService(chapterFixtures(), newFakeLikeCounter())
	ctx := context.Background()

	if _, err := service.AddToHistory(ctx, "reader-1", "comic-1-ch-1"); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if _, err := service.AddToHistory(ctx, "reader-1", "comic-2-ch-1"); err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	lists, err := service.AddToHistory(ctx, "reader-1", "comic-1-ch-2")
	if err != nil {
		t.Fatalf("replacement add failed: %v", err)
	}
	if len(lists.History) != 2 {
		t.Fatalf("expected one entry per comic, got %d entries", len(lists.History))
	}
	last := lists.History[len(lists.History)-1]
	if last.ComicID != "comic-1" || last.ChapterID != "comic-1-ch-2" {
		t.Fatalf("expected comic-1 entry replaced and moved to most recent, got %+v", last)
	}
}

func TestAddToHistoryEvictsOldestPastCap(t *testing.T) {
	service, _ := newListService(chapterFixtures(), newFakeLikeCounter())
	ctx := context.Background()

	for comic := 1; comic <= 11; comic++ {
		if _, err := service.AddToHistory(ctx, "reader-1", fmt.Sprintf("comic-%d-ch-1", comic)); err != nil {
			t.Fatalf("add comic-%d failed: %v", comic, err)
		}
	}
	lists, err := service.GetLists(ctx, "reader-1")
	if err != nil {
		t.Fatalf("get lists failed: %v", err)
	}
	if len(lists.History) != 10 {
		t.Fatalf("expected history capped at 10, got %d", len(lists.History))
	}
	if lists.History[0].ComicID != "comic-2" {
		t.Fatalf("expected comic-1 evicted, oldest is %s", lists.History[0].ComicID)
	}
	if lists.History[9].ComicID != "comic-11" {
		t.Fatalf("expected comic-11 most recent, got %s", lists.History[9].ComicID)
	}
}

func TestRemoveFromHistoryAbsentIsNoOp(t *testing.T) {
	service, _ := newListService(chapterFixtures(), newFakeLikeCounter())
	ctx := context.Background()

	if _, err := service.AddToHistory(ctx, "reader-1", "comic-1-ch-1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	lists, err := service.RemoveFromHistory(ctx, "reader-1", "comic-9-ch-1")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(lists.History) != 1 {
		t.Fatalf("expected history unchanged, got %d entries", len(lists.History))
	}

	lists, err = service.RemoveFromHistory(ctx, "reader-1", "comic-1-ch-1")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(lists.History) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(lists.History))
	}
}

func TestSavedSetSemantics(t *testing.T) {
	service, _ := newListService(chapterFixtures(), newFakeLikeCounter())
	ctx := context.Background()

	if _, err := service.AddToSaved(ctx, "reader-1", "comic-1"); err != nil {
		t.Fatalf("add saved failed: %v", err)
	}
	lists, err := service.AddToSaved(ctx, "reader-1", "comic-1")
	if err != nil {
		t.Fatalf("duplicate add saved failed: %v", err)
	}
	if len(lists.Saved) != 1 {
		t.Fatalf("expected duplicate save to be a no-op, got %v", lists.Saved)
	}

	lists, err = service.RemoveFromSaved(ctx, "reader-1", "comic-2")
	if err != nil {
		t.Fatalf("remove absent saved failed: %v", err)
	}
	if len(lists.Saved) != 1 {
		t.Fatalf("expected absent remove to be a no-op, got %v", lists.Saved)
	}

	lists, err = service.RemoveFromSaved(ctx, "reader-1", "comic-1")
	if err != nil {
		t.Fatalf("remove saved failed: %v", err)
	}
	if len(lists.Saved) != 0 {
		t.Fatalf("expected empty saved list, got %v", lists.Saved)
	}
}

func TestLikesKeepCounterInSync(t *testing.T) {
	counter := newFakeLikeCounter("comic-1")
	service, _ := newListService(chapterFixtures(), counter)
	ctx := context.Background()

	if _, err := service.AddToLikes(ctx, "reader-1", "comic-1"); err != nil {
		t.Fatalf("add like failed: %v", err)
	}
	if counter.counts["comic-1"] != 1 {
		t.Fatalf("expected counter at 1, got %d", counter.counts["comic-1"])
	}

	lists, err := service.AddToLikes(ctx, "reader-1", "comic-1")
	if err != nil {
		t.Fatalf("duplicate like failed: %v", err)
	}
	if counter.counts["comic-1"] != 1 {
		t.Fatalf("duplicate like must not bump the counter, got %d", counter.counts["comic-1"])
	}
	if len(lists.Likes) != 1 {
		t.Fatalf("expected one liked comic, got %v", lists.Likes)
	}

	if _, err := service.RemoveFromLikes(ctx, "reader-1", "comic-1"); err != nil {
		t.Fatalf("remove like failed: %v", err)
	}
	if counter.counts["comic-1"] != 0 {
		t.Fatalf("expected counter back at 0, got %d", counter.counts["comic-1"])
	}

	if _, err := service.RemoveFromLikes(ctx, "reader-1", "comic-1"); err != nil {
		t.Fatalf("absent unlike failed: %v", err)
	}
	if counter.counts["comic-1"] != 0 {
		t.Fatalf("absent unlike must not touch the counter, got %d", counter.counts["comic-1"])
	}
}

func TestLikeUnknownComicLeavesListUntouched(t *testing.T) {
	counter := newFakeLikeCounter("comic-1")
	service, _ := newListService(chapterFixtures(), counter)
	ctx := context.Background()

	if _, err := service.AddToLikes(ctx, "reader-1", "comic-404"); !errors.Is(err, domainerrors.ErrComicNotFound) {
		t.Fatalf("expected ErrComicNotFound, got %v", err)
	}
	lists, err := service.GetLists(ctx, "reader-1")
	if err != nil {
		t.Fatalf("get lists failed: %v", err)
	}
	if len(lists.Likes) != 0 {
		t.Fatalf("expected likes untouched, got %v", lists.Likes)
	}
}
