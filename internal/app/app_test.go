package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/pomolit/internal/constants"
	"github.com/julianstephens/pomolit/internal/models"
	"github.com/julianstephens/pomolit/internal/storage/sqlite"
)

func TestNewSeedsAndLoads(t *testing.T) {
	ctx := context.Background()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(ctx); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	defer store.Close()

	clock := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	a, err := New(ctx, store, Options{Now: func() time.Time { return clock }})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if got := a.Settings.Current().WorkDuration; got != constants.DefaultWorkDuration {
		t.Errorf("WorkDuration = %d, want default", got)
	}
	if a.Location() != time.UTC || !a.Now().Equal(clock) {
		t.Error("options not applied")
	}

	// A second App over the same store must not reseed.
	if _, err := New(ctx, store, Options{}); err != nil {
		t.Fatalf("second New failed: %v", err)
	}
	list, err := a.Achievements.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 6 {
		t.Errorf("achievements = %d, want 6", len(list))
	}
}

func TestServicesShareStore(t *testing.T) {
	ctx := context.Background()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(ctx); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	defer store.Close()

	a, err := New(ctx, store, Options{GuardDoubleCompletion: true})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	sess, err := a.Pomodoro.Start(ctx, models.SessionWork, nil)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := a.Pomodoro.Complete(ctx, sess.ID); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	unlocked, err := a.Achievements.Evaluate(ctx)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if len(unlocked) != 1 {
		t.Errorf("unlocked = %d, want 1", len(unlocked))
	}

	snap, err := a.Reports.Today(ctx, a.Now())
	if err != nil {
		t.Fatalf("Today failed: %v", err)
	}
	if snap.Sessions != 1 {
		t.Errorf("Sessions = %d, want 1", snap.Sessions)
	}
}
