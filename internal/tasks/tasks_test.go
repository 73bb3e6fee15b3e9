package tasks

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/pomolit/internal/errors"
	"github.com/julianstephens/pomolit/internal/models"
	"github.com/julianstephens/pomolit/internal/storage/sqlite"
)

var now = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

func setupService(t *testing.T) *Service {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return New(store, time.UTC, func() time.Time { return now })
}

func TestCreate(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	tests := []struct {
		name         string
		in           Input
		wantPriority models.Priority
		wantEstimate int
		wantDue      bool
	}{
		{"defaults", Input{Title: "Plan"}, models.PriorityMedium, 1, false},
		{"explicit", Input{Title: "Ship", Priority: "high", EstimatedPomodoros: "4", DueDate: "2026-04-03"}, models.PriorityHigh, 4, true},
		{"bad priority", Input{Title: "Tidy", Priority: "urgent"}, models.PriorityMedium, 1, false},
		{"estimate too large", Input{Title: "Big", EstimatedPomodoros: "25"}, models.PriorityMedium, 1, false},
		{"estimate garbage", Input{Title: "Odd", EstimatedPomodoros: "many"}, models.PriorityMedium, 1, false},
		{"bad due date", Input{Title: "Later", DueDate: "next week"}, models.PriorityMedium, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := svc.Create(ctx, tt.in)
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if task.Priority != tt.wantPriority {
				t.Errorf("Priority = %s, want %s", task.Priority, tt.wantPriority)
			}
			if task.EstimatedPomodoros != tt.wantEstimate {
				t.Errorf("EstimatedPomodoros = %d, want %d", task.EstimatedPomodoros, tt.wantEstimate)
			}
			if (task.DueDate != nil) != tt.wantDue {
				t.Errorf("DueDate = %v, want set=%v", task.DueDate, tt.wantDue)
			}
			if task.Status != models.TaskTodo || task.CompletedPomodoros != 0 {
				t.Errorf("new task state = %s/%d", task.Status, task.CompletedPomodoros)
			}
		})
	}

	if _, err := svc.Create(ctx, Input{Title: "  "}); !errors.IsValidation(err) {
		t.Errorf("blank title: expected validation error, got %v", err)
	}
}

func TestComplete(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	task, err := svc.Create(ctx, Input{Title: "Finish"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	done, err := svc.Complete(ctx, task.ID)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if done.Status != models.TaskCompleted || done.CompletedAt == nil || !done.CompletedAt.Equal(now) {
		t.Errorf("completed task = %+v", done)
	}

	open, err := svc.Open(ctx)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if len(open) != 0 {
		t.Errorf("completed task still open: %+v", open)
	}

	if _, err := svc.Complete(ctx, "missing"); !errors.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}
