package unit

import (
	"context"
	"testing"

	progressionservice "inkwell/contexts/reader-experience/progression-service"
	"inkwell/contexts/reader-experience/progression-service/domain/entities"
	httptransport "inkwell/contexts/reader-experience/progression-service/transport/http"
)

func TestProgressionLevelUpGrantsBonusOnce(t *testing.T) {
	module := progressionservice.NewInMemoryModule([]entities.ReaderProgress{
		{UserID: "reader-prog-1", Role: entities.RoleUser, Points: 9, LevelName: "Newbie"},
	}, nil, nil)
	ctx := context.Background()

	resp, err := module.Handler.AwardPointsHandler(ctx, "reader-prog-1", httptransport.AwardPointsRequest{Points: 1})
	if err != nil {
		t.Fatalf("award points failed: %v", err)
	}
	if resp.Data.Level != 1 || resp.Data.Ruby != 50 {
		t.Fatalf("expected level 1 with 50 ruby, got level %d ruby %d", resp.Data.Level, resp.Data.Ruby)
	}

	// Points within the same level must not grant the bonus again.
	resp, err = module.Handler.AwardPointsHandler(ctx, "reader-prog-1", httptransport.AwardPointsRequest{Points: 1})
	if err != nil {
		t.Fatalf("award points failed: %v", err)
	}
	if resp.Data.Ruby != 50 {
		t.Fatalf("expected ruby unchanged at 50, got %d", resp.Data.Ruby)
	}
}

func TestProgressionResolveLevelHandler(t *testing.T) {
	module := progressionservice.NewInMemoryModule(nil, nil, nil)

	resp := module.Handler.ResolveLevelHandler(context.Background(), 500)
	if resp.Data.Level != 3 || resp.Data.LevelName != "Advanced" {
		t.Fatalf("expected level 3 Advanced at 500 points, got %+v", resp.Data)
	}
	if resp.Data.RubyBonus != 300 {
		t.Fatalf("expected 300 ruby bonus on Advanced, got %d", resp.Data.RubyBonus)
	}
}

func TestProgressionAchievementLifecycle(t *testing.T) {
	module := progressionservice.NewInMemoryModule([]entities.ReaderProgress{
		{UserID: "reader-prog-2", Role: entities.RoleUser},
	}, []string{"night-owl"}, nil)
	ctx := context.Background()

	if _, err := module.Handler.AddAchievementHandler(ctx, "reader-prog-2", httptransport.AddAchievementRequest{
		AchievementID: "night-owl",
	}); err != nil {
		t.Fatalf("grant failed: %v", err)
	}
	if _, err := module.Handler.AddAchievementHandler(ctx, "reader-prog-2", httptransport.AddAchievementRequest{
		AchievementID: "night-owl",
	}); err == nil {
		t.Fatalf("expected duplicate grant to fail")
	}
	resp, err := module.Handler.RemoveAchievementHandler(ctx, "reader-prog-2", "night-owl")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(resp.Data.Achievements) != 0 {
		t.Fatalf("expected empty achievements, got %v", resp.Data.Achievements)
	}
	if _, err := module.Handler.RemoveAchievementHandler(ctx, "reader-prog-2", "night-owl"); err == nil {
		t.Fatalf("expected removing an unowned achievement to fail")
	}
}
