package achievement

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/pomolit/internal/models"
	"github.com/julianstephens/pomolit/internal/storage/sqlite"
)

func setupEngine(t *testing.T, clock *time.Time) (*Engine, *sqlite.Store) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return New(store, func() time.Time { return *clock }), store
}

func addWorkSessions(t *testing.T, store *sqlite.Store, n int, completed bool) {
	t.Helper()
	for i := 0; i < n; i++ {
		s := models.Session{
			ID:        uuid.New().String(),
			Duration:  25,
			Type:      models.SessionWork,
			StartedAt: time.Now(),
			Completed: completed,
		}
		if err := store.AddSession(context.Background(), s); err != nil {
			t.Fatalf("AddSession failed: %v", err)
		}
	}
}

func TestEnsureSeededIsIdempotent(t *testing.T) {
	clock := time.Now()
	engine, _ := setupEngine(t, &clock)
	ctx := context.Background()

	seeded, err := engine.EnsureSeeded(ctx)
	if err != nil || !seeded {
		t.Fatalf("first EnsureSeeded = %v, %v", seeded, err)
	}
	seeded, err = engine.EnsureSeeded(ctx)
	if err != nil || seeded {
		t.Fatalf("second EnsureSeeded = %v, %v", seeded, err)
	}

	list, err := engine.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 6 {
		t.Fatalf("achievements = %d, want 6", len(list))
	}
	for i, a := range list {
		if a.Name != Catalog[i].Name {
			t.Errorf("position %d = %s, want %s", i, a.Name, Catalog[i].Name)
		}
		if a.Unlocked() {
			t.Errorf("%s unlocked on seed", a.Name)
		}
	}
}

func TestFirstStepUnlocksOnce(t *testing.T) {
	clock := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	engine, store := setupEngine(t, &clock)
	ctx := context.Background()

	if _, err := engine.EnsureSeeded(ctx); err != nil {
		t.Fatalf("EnsureSeeded failed: %v", err)
	}

	// Uncompleted sessions do not count.
	addWorkSessions(t, store, 3, false)
	unlocked, err := engine.Evaluate(ctx)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if len(unlocked) != 0 {
		t.Fatalf("unexpected unlocks: %+v", unlocked)
	}

	addWorkSessions(t, store, 1, true)
	unlocked, err = engine.Evaluate(ctx)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if len(unlocked) != 1 || unlocked[0].Name != "初めの一歩" {
		t.Fatalf("unlocked = %+v, want only 初めの一歩", unlocked)
	}
	firstUnlock := clock

	clock = clock.Add(48 * time.Hour)
	unlocked, err = engine.Evaluate(ctx)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if len(unlocked) != 0 {
		t.Errorf("re-evaluation unlocked again: %+v", unlocked)
	}

	list, _ := engine.List(ctx)
	if list[0].UnlockedAt == nil || !list[0].UnlockedAt.Equal(firstUnlock) {
		t.Errorf("unlockedAt changed: %v", list[0].UnlockedAt)
	}
}

func TestThresholdsAndStreakBadges(t *testing.T) {
	clock := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	engine, store := setupEngine(t, &clock)
	ctx := context.Background()

	if _, err := engine.EnsureSeeded(ctx); err != nil {
		t.Fatalf("EnsureSeeded failed: %v", err)
	}

	addWorkSessions(t, store, 10, true)
	for i := 0; i < 50; i++ {
		done := clock
		task := models.Task{
			ID: uuid.New().String(), Title: "t", Priority: models.PriorityLow,
			Status: models.TaskCompleted, EstimatedPomodoros: 1, CreatedAt: clock, CompletedAt: &done,
		}
		if err := store.AddTask(ctx, task); err != nil {
			t.Fatalf("AddTask failed: %v", err)
		}
	}

	unlocked, err := engine.Evaluate(ctx)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	got := map[string]bool{}
	for _, a := range unlocked {
		got[a.Name] = true
	}
	for _, name := range []string{"初めの一歩", "ポモドーロ初心者", "タスクハンター"} {
		if !got[name] {
			t.Errorf("%s should be unlocked", name)
		}
	}
	for _, name := range []string{"ポモドーロマスター", "習慣の力", "継続は力なり"} {
		if got[name] {
			t.Errorf("%s should stay locked", name)
		}
	}
}

func TestEvaluateWithoutCatalog(t *testing.T) {
	clock := time.Now()
	engine, store := setupEngine(t, &clock)
	addWorkSessions(t, store, 1, true)

	unlocked, err := engine.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if len(unlocked) != 0 {
		t.Errorf("nothing to unlock without a catalog, got %+v", unlocked)
	}
}
