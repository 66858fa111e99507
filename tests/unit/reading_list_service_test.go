package unit

import (
	"context"
	"fmt"
	"testing"

	comiccatalog "inkwell/contexts/catalog/comic-catalog-service"
	cataloglocal "inkwell/contexts/catalog/comic-catalog-service/adapters/local"
	catalogentities "inkwell/contexts/catalog/comic-catalog-service/domain/entities"
	readinglistservice "inkwell/contexts/reader-experience/reading-list-service"
	listslocal "inkwell/contexts/reader-experience/reading-list-service/adapters/local"
	listsentities "inkwell/contexts/reader-experience/reading-list-service/domain/entities"
	httptransport "inkwell/contexts/reader-experience/reading-list-service/transport/http"
	viewtracking "inkwell/contexts/reader-experience/view-tracking-service"
)

func newReadingListFixture(t *testing.T) (readinglistservice.Module, comiccatalog.Module) {
	t.Helper()

	viewsModule := viewtracking.NewInMemoryModule(nil)

	comics := make([]catalogentities.Comic, 0, 12)
	chapters := make([]catalogentities.Chapter, 0, 24)
	for i := 1; i <= 12; i++ {
		comicID := fmt.Sprintf("comic-%d", i)
		comics = append(comics, catalogentities.Comic{
			ComicID: comicID,
			Slug:    fmt.Sprintf("comic-%d-slug", i),
			Name:    fmt.Sprintf("Comic %d", i),
		})
		for j := 1; j <= 2; j++ {
			chapters = append(chapters, catalogentities.Chapter{
				ChapterID: fmt.Sprintf("comic-%d-ch-%d", i, j),
				ComicID:   comicID,
				Name:      fmt.Sprintf("Chapter %d", j),
			})
		}
	}
	catalogModule := comiccatalog.NewInMemoryModule(
		comics,
		chapters,
		cataloglocal.ViewTrackingInitializer{Views: viewsModule.Service},
		nil,
	)

	listsModule := readinglistservice.NewInMemoryModule(
		[]listsentities.ReaderLists{{UserID: "reader-rl-1"}},
		listslocal.CatalogChapterResolver{Catalog: catalogModule.Service},
		listslocal.CatalogLikeCounter{Catalog: catalogModule.Service},
		nil,
	)
	return listsModule, catalogModule
}

func TestReadingListHistoryCapAndReplacement(t *testing.T) {
	module, _ := newReadingListFixture(t)
	ctx := context.Background()

	for i := 1; i <= 11; i++ {
		if _, err := module.Handler.AddHistoryHandler(ctx, "reader-rl-1", httptransport.AddHistoryRequest{
			ChapterID: fmt.Sprintf("comic-%d-ch-1", i),
		}); err != nil {
			t.Fatalf("add comic-%d to history failed: %v", i, err)
		}
	}

	resp, err := module.Handler.GetHistoryHandler(ctx, "reader-rl-1")
	if err != nil {
		t.Fatalf("get history failed: %v", err)
	}
	if len(resp.Data) != 10 {
		t.Fatalf("expected history capped at 10, got %d", len(resp.Data))
	}
	if resp.Data[0].ComicID != "comic-2" {
		t.Fatalf("expected comic-1 evicted, oldest entry is %s", resp.Data[0].ComicID)
	}

	// Reading another chapter of comic-5 replaces its entry and makes it the
	// most recent.
	if _, err := module.Handler.AddHistoryHandler(ctx, "reader-rl-1", httptransport.AddHistoryRequest{
		ChapterID: "comic-5-ch-2",
	}); err != nil {
		t.Fatalf("replacement add failed: %v", err)
	}
	resp, err = module.Handler.GetHistoryHandler(ctx, "reader-rl-1")
	if err != nil {
		t.Fatalf("get history failed: %v", err)
	}
	if len(resp.Data) != 10 {
		t.Fatalf("replacement must not grow the history, got %d entries", len(resp.Data))
	}
	last := resp.Data[len(resp.Data)-1]
	if last.ComicID != "comic-5" || last.ChapterID != "comic-5-ch-2" {
		t.Fatalf("expected comic-5 ch-2 most recent, got %+v", last)
	}
}

func TestReadingListSavedIsIdempotent(t *testing.T) {
	module, _ := newReadingListFixture(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := module.Handler.AddSavedHandler(ctx, "reader-rl-1", httptransport.AddComicRequest{
			ComicID: "comic-3",
		}); err != nil {
			t.Fatalf("add saved failed: %v", err)
		}
	}
	resp, err := module.Handler.GetSavedHandler(ctx, "reader-rl-1")
	if err != nil {
		t.Fatalf("get saved failed: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0] != "comic-3" {
		t.Fatalf("expected single saved comic-3, got %v", resp.Data)
	}
}

func TestReadingListLikesSyncComicCounter(t *testing.T) {
	module, catalog := newReadingListFixture(t)
	ctx := context.Background()

	if _, err := module.Handler.AddLikeHandler(ctx, "reader-rl-1", httptransport.AddComicRequest{
		ComicID: "comic-4",
	}); err != nil {
		t.Fatalf("add like failed: %v", err)
	}
	comic, err := catalog.Service.GetComic(ctx, "comic-4")
	if err != nil {
		t.Fatalf("get comic failed: %v", err)
	}
	if comic.Likes != 1 {
		t.Fatalf("expected comic counter at 1, got %d", comic.Likes)
	}

	if _, err := module.Handler.RemoveLikeHandler(ctx, "reader-rl-1", "comic-4"); err != nil {
		t.Fatalf("remove like failed: %v", err)
	}
	comic, err = catalog.Service.GetComic(ctx, "comic-4")
	if err != nil {
		t.Fatalf("get comic failed: %v", err)
	}
	if comic.Likes != 0 {
		t.Fatalf("expected comic counter back at 0, got %d", comic.Likes)
	}
}
