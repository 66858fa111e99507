package application

import (
	"context"
	"errors"
	"testing"

	"inkwell/contexts/reader-experience/progression-service/adapters/memory"
	"inkwell/contexts/reader-experience/progression-service/domain/entities"
	domainerrors "inkwell/contexts/reader-experience/progression-service/domain/errors"
)

func newTestService(seed []entities.ReaderProgress, achievementIDs []string) (Service, *memory.Store) {
	store := memory.NewStore(seed, achievementIDs)
	return Service{
		Repo:         store,
		Achievements: store,
		Levels:       entities.DefaultLevelTable(),
		Clock:        store,
	}, store
}

func TestResolveLevelBoundaries(t *testing.T) {
	service, _ := newTestService(nil, nil)

	cases := []struct {
		points    int
		wantLevel int
		wantName  string
	}{
		{0, 0, "Newbie"},
		{9, 0, "Newbie"},
		{10, 1, "Beginner"},
		{99, 1, "Beginner"},
		{100, 2, "Intermediate"},
		{499, 2, "Intermediate"},
		{500, 3, "Advanced"},
		{100000, 3, "Advanced"},
	}
	for _, tc := range cases {
		def := service.ResolveLevel(tc.points)
		if def.Level != tc.wantLevel || def.Name != tc.wantName {
			t.Fatalf("resolve %d points: got level %d (%s), want %d (%s)",
				tc.points, def.Level, def.Name, tc.wantLevel, tc.wantName)
		}
	}
}

func TestAwardPointsGrantsBonusOnLevelUp(t *testing.T) {
	service, _ := newTestService([]entities.ReaderProgress{
		{UserID: "reader-1", Role: entities.RoleUser, Points: 9, Level: 0, LevelName: "Newbie", Ruby: 3},
	}, nil)
	ctx := context.Background()

	progress, err := service.AwardPoints(ctx, "reader-1", 1)
	if err != nil {
		t.Fatalf("award points failed: %v", err)
	}
	if progress.Points != 10 || progress.Level != 1 {
		t.Fatalf("expected 10 points at level 1, got %d points at level %d", progress.Points, progress.Level)
	}
	if progress.Ruby != 53 {
		t.Fatalf("expected ruby 3+50=53 after level-up bonus, got %d", progress.Ruby)
	}
	if progress.LevelName != "Beginner" {
		t.Fatalf("expected level name Beginner, got %q", progress.LevelName)
	}
}

func TestAwardPointsMultiLevelJumpGrantsSingleBonus(t *testing.T) {
	service, _ := newTestService([]entities.ReaderProgress{
		{UserID: "reader-2", Role: entities.RoleUser, Points: 0, Level: 0, LevelName: "Newbie", Ruby: 0},
	}, nil)

	progress, err := service.AwardPoints(context.Background(), "reader-2", 600)
	if err != nil {
		t.Fatalf("award points failed: %v", err)
	}
	if progress.Level != 3 {
		t.Fatalf("expected to land on level 3, got %d", progress.Level)
	}
	if progress.Ruby != 300 {
		t.Fatalf("expected only the landed level's 300 ruby bonus, got %d", progress.Ruby)
	}
}

func TestAwardPointsWithinLevelGrantsNoBonus(t *testing.T) {
	service, _ := newTestService([]entities.ReaderProgress{
		{UserID: "reader-3", Role: entities.RoleUser, Points: 20, Level: 1, LevelName: "Beginner", Ruby: 7},
	}, nil)

	progress, err := service.AwardPoints(context.Background(), "reader-3", 5)
	if err != nil {
		t.Fatalf("award points failed: %v", err)
	}
	if progress.Ruby != 7 {
		t.Fatalf("expected ruby unchanged at 7, got %d", progress.Ruby)
	}
	if progress.Level != 1 {
		t.Fatalf("expected level unchanged at 1, got %d", progress.Level)
	}
}

func TestAwardPointsClampsNegativeTotal(t *testing.T) {
	service, _ := newTestService([]entities.ReaderProgress{
		{UserID: "reader-4", Role: entities.RoleUser, Points: 5, Level: 0, LevelName: "Newbie"},
	}, nil)

	progress, err := service.AwardPoints(context.Background(), "reader-4", -50)
	if err != nil {
		t.Fatalf("award points failed: %v", err)
	}
	if progress.Points != 0 {
		t.Fatalf("expected points clamped to 0, got %d", progress.Points)
	}
}

func TestAwardPointsUnknownReader(t *testing.T) {
	service, _ := newTestService(nil, nil)
	if _, err := service.AwardPoints(context.Background(), "ghost", 1); !errors.Is(err, domainerrors.ErrReaderNotFound) {
		t.Fatalf("expected ErrReaderNotFound, got %v", err)
	}
}

func TestDebitRubyInsufficientBalance(t *testing.T) {
	service, store := newTestService([]entities.ReaderProgress{
		{UserID: "reader-5", Role: entities.RoleUser, Ruby: 0},
	}, nil)
	ctx := context.Background()

	if _, err := service.DebitRuby(ctx, "reader-5", 1); !errors.Is(err, domainerrors.ErrNotEnoughRuby) {
		t.Fatalf("expected ErrNotEnoughRuby, got %v", err)
	}
	progress, err := store.GetProgress(ctx, "reader-5")
	if err != nil {
		t.Fatalf("get progress failed: %v", err)
	}
	if progress.Ruby != 0 {
		t.Fatalf("expected balance untouched at 0, got %d", progress.Ruby)
	}
}

func TestDebitRubySucceeds(t *testing.T) {
	service, _ := newTestService([]entities.ReaderProgress{
		{UserID: "reader-6", Role: entities.RoleUser, Ruby: 2},
	}, nil)

	progress, err := service.DebitRuby(context.Background(), "reader-6", 1)
	if err != nil {
		t.Fatalf("debit ruby failed: %v", err)
	}
	if progress.Ruby != 1 {
		t.Fatalf("expected balance 1 after debit, got %d", progress.Ruby)
	}
}

func TestAddAchievementDuplicateIsError(t *testing.T) {
	service, _ := newTestService([]entities.ReaderProgress{
		{UserID: "reader-7", Role: entities.RoleUser},
	}, []string{"first-read"})
	ctx := context.Background()

	if _, err := service.AddAchievement(ctx, "reader-7", "first-read"); err != nil {
		t.Fatalf("first grant failed: %v", err)
	}
	if _, err := service.AddAchievement(ctx, "reader-7", "first-read"); !errors.Is(err, domainerrors.ErrAchievementAlreadyOwned) {
		t.Fatalf("expected ErrAchievementAlreadyOwned, got %v", err)
	}
}

func TestAddAchievementUnknownID(t *testing.T) {
	service, _ := newTestService([]entities.ReaderProgress{
		{UserID: "reader-8", Role: entities.RoleUser},
	}, []string{"first-read"})

	if _, err := service.AddAchievement(context.Background(), "reader-8", "nonexistent"); !errors.Is(err, domainerrors.ErrAchievementNotFound) {
		t.Fatalf("expected ErrAchievementNotFound, got %v", err)
	}
}

func TestRemoveAchievementNotOwnedIsError(t *testing.T) {
	service, _ := newTestService([]entities.ReaderProgress{
		{UserID: "reader-9", Role: entities.RoleUser},
	}, []string{"first-read"})

	if _, err := service.RemoveAchievement(context.Background(), "reader-9", "first-read"); !errors.Is(err, domainerrors.ErrAchievementNotOwned) {
		t.Fatalf("expected ErrAchievementNotOwned, got %v", err)
	}
}

func TestRemoveAchievementKeepsOthers(t *testing.T) {
	service, _ := newTestService([]entities.ReaderProgress{
		{UserID: "reader-10", Role: entities.RoleUser, Achievements: []string{"first-read", "bookworm"}},
	}, []string{"first-read", "bookworm"})

	progress, err := service.RemoveAchievement(context.Background(), "reader-10", "first-read")
	if err != nil {
		t.Fatalf("remove achievement failed: %v", err)
	}
	if len(progress.Achievements) != 1 || progress.Achievements[0] != "bookworm" {
		t.Fatalf("expected only bookworm to remain, got %v", progress.Achievements)
	}
}
