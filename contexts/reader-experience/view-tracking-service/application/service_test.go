package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"inkwell/contexts/reader-experience/view-tracking-service/adapters/memory"
	domainerrors "inkwell/contexts/reader-experience/view-tracking-service/domain/errors"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func newViewService(start time.Time) (Service, *fakeClock) {
	clock := &fakeClock{now: start}
	return Service{
		Repo:  memory.NewStore(),
		Clock: clock,
	}, clock
}

func TestCreateViewRecordRejectsDuplicate(t *testing.T) {
	service, _ := newViewService(date(2025, time.June, 2))
	ctx := context.Background()

	if _, err := service.CreateViewRecord(ctx, "comic-1"); err != nil {
		t.Fatalf("create view record failed: %v", err)
	}
	if _, err := service.CreateViewRecord(ctx, "comic-1"); !errors.Is(err, domainerrors.ErrViewRecordExists) {
		t.Fatalf("expected ErrViewRecordExists, got %v", err)
	}
}

func TestRecordViewUnknownComic(t *testing.T) {
	service, _ := newViewService(date(2025, time.June, 2))
	if _, err := service.RecordView(context.Background(), "ghost"); !errors.Is(err, domainerrors.ErrViewRecordNotFound) {
		t.Fatalf("expected ErrViewRecordNotFound, got %v", err)
	}
}

func TestRecordViewAccumulatesWithinSameDay(t *testing.T) {
	service, _ := newViewService(date(2025, time.June, 2))
	ctx := context.Background()

	if _, err := service.CreateViewRecord(ctx, "comic-1"); err != nil {
		t.Fatalf("create view record failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		if _, err := service.RecordView(ctx, "comic-1"); err != nil {
			t.Fatalf("record view %d failed: %v", i, err)
		}
	}

	record, err := service.GetViewsByComic(ctx, "comic-1")
	if err != nil {
		t.Fatalf("get views failed: %v", err)
	}
	if record.TotalViews != 5 {
		t.Fatalf("expected total views 5, got %d", record.TotalViews)
	}
	if len(record.DailyViews) != 1 || record.DailyViews[0].Views != 5 {
		t.Fatalf("expected a single daily bucket with 5 views, got %+v", record.DailyViews)
	}
	if len(record.WeeklyViews) != 1 || record.WeeklyViews[0].Views != 5 {
		t.Fatalf("expected a single weekly bucket with 5 views, got %+v", record.WeeklyViews)
	}
	if len(record.MonthlyViews) != 1 || record.MonthlyViews[0].Views != 5 {
		t.Fatalf("expected a single monthly bucket with 5 views, got %+v", record.MonthlyViews)
	}
}

func TestRecordViewOpensNewDailyBucketNextDay(t *testing.T) {
	// Monday June 2nd and Tuesday June 3rd share week and month.
	service, clock := newViewService(date(2025, time.June, 2))
	ctx := context.Background()

	if _, err := service.CreateViewRecord(ctx, "comic-1"); err != nil {
		t.Fatalf("create view record failed: %v", err)
	}
	if _, err := service.RecordView(ctx, "comic-1"); err != nil {
		t.Fatalf("record view failed: %v", err)
	}
	clock.now = date(2025, time.June, 3)
	record, err := service.RecordView(ctx, "comic-1")
	if err != nil {
		t.Fatalf("record view failed: %v", err)
	}

	if len(record.DailyViews) != 2 {
		t.Fatalf("expected two daily buckets, got %+v", record.DailyViews)
	}
	if len(record.WeeklyViews) != 1 || record.WeeklyViews[0].Views != 2 {
		t.Fatalf("expected one weekly bucket with 2 views, got %+v", record.WeeklyViews)
	}
	if len(record.MonthlyViews) != 1 || record.MonthlyViews[0].Views != 2 {
		t.Fatalf("expected one monthly bucket with 2 views, got %+v", record.MonthlyViews)
	}
	if record.TotalViews != 2 {
		t.Fatalf("expected total views 2, got %d", record.TotalViews)
	}
}

func TestRecordViewOpensNewBucketsAcrossMonthBoundary(t *testing.T) {
	service, clock := newViewService(date(2025, time.June, 30))
	ctx := context.Background()

	if _, err := service.CreateViewRecord(ctx, "comic-1"); err != nil {
		t.Fatalf("create view record failed: %v", err)
	}
	if _, err := service.RecordView(ctx, "comic-1"); err != nil {
		t.Fatalf("record view failed: %v", err)
	}
	clock.now = date(2025, time.July, 1)
	record, err := service.RecordView(ctx, "comic-1")
	if err != nil {
		t.Fatalf("record view failed: %v", err)
	}

	if len(record.MonthlyViews) != 2 {
		t.Fatalf("expected two monthly buckets, got %+v", record.MonthlyViews)
	}
	if len(record.DailyViews) != 2 {
		t.Fatalf("expected two daily buckets, got %+v", record.DailyViews)
	}
}

func TestTopViewedOrdersByTotal(t *testing.T) {
	service, _ := newViewService(date(2025, time.June, 2))
	ctx := context.Background()

	for _, comic := range []string{"comic-a", "comic-b", "comic-c"} {
		if _, err := service.CreateViewRecord(ctx, comic); err != nil {
			t.Fatalf("create %s failed: %v", comic, err)
		}
	}
	bump := func(comic string, times int) {
		for i := 0; i < times; i++ {
			if _, err := service.RecordView(ctx, comic); err != nil {
				t.Fatalf("record view on %s failed: %v", comic, err)
			}
		}
	}
	bump("comic-a", 1)
	bump("comic-b", 4)
	bump("comic-c", 2)

	top, err := service.TopViewed(ctx, 2)
	if err != nil {
		t.Fatalf("top viewed failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].ComicID != "comic-b" || top[1].ComicID != "comic-c" {
		t.Fatalf("unexpected ranking: %s then %s", top[0].ComicID, top[1].ComicID)
	}
}
