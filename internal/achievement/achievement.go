// Package achievement seeds the badge catalog and unlocks badges whose
// thresholds have been reached. Unlocking is one-way: once unlocked_at is
// set it never changes.
package achievement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/pomolit/internal/logger"
	"github.com/julianstephens/pomolit/internal/models"
	"github.com/julianstephens/pomolit/internal/storage"
	"github.com/julianstephens/pomolit/internal/utils"
)

// Engine seeds the badge catalog and unlocks badges from stored totals.
type Engine struct {
	store storage.Provider
	now   func() time.Time
}

// New returns an Engine stamping unlocks with now.
func New(store storage.Provider, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{store: store, now: now}
}

// EnsureSeeded inserts the catalog when the store holds no achievements. The
// emptiness check and the inserts share a transaction. It reports whether
// anything was inserted.
func (e *Engine) EnsureSeeded(ctx context.Context) (bool, error) {
	seeded := false
	err := e.store.WithTx(ctx, func(tx storage.Provider) error {
		count, err := tx.CountAchievements(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for i, a := range Catalog {
			a.ID = uuid.New().String()
			a.Position = i
			if err := tx.AddAchievement(ctx, a); err != nil {
				return err
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed achievements: %w", err)
	}

	if seeded {
		logger.Info("Seeded achievement catalog", "count", len(Catalog))
	}
	return seeded, nil
}

// Totals are the cumulative counters badge requirements are compared with.
type Totals struct {
	Pomodoros int
	Tasks     int
}

func (e *Engine) totals(ctx context.Context, p storage.Provider) (Totals, error) {
	pomodoros, err := p.CountSessions(ctx, storage.SessionFilter{Type: models.SessionWork, CompletedOnly: true})
	if err != nil {
		return Totals{}, err
	}
	tasks, err := p.CountCompletedTasks(ctx, utils.Window{})
	if err != nil {
		return Totals{}, err
	}
	return Totals{Pomodoros: pomodoros, Tasks: tasks}, nil
}

// Evaluate unlocks every locked pomodoro and task badge whose requirement is
// met and returns the badges unlocked by this call. Streak badges are listed
// but not evaluated here.
func (e *Engine) Evaluate(ctx context.Context) ([]models.Achievement, error) {
	var unlocked []models.Achievement

	err := e.store.WithTx(ctx, func(tx storage.Provider) error {
		totals, err := e.totals(ctx, tx)
		if err != nil {
			return err
		}

		all, err := tx.ListAchievements(ctx)
		if err != nil {
			return err
		}

		now := e.now().UTC()
		for _, a := range all {
			if a.Unlocked() || !reached(a, totals) {
				continue
			}
			changed, err := tx.UnlockAchievement(ctx, a.ID, now)
			if err != nil {
				return err
			}
			if changed {
				a.UnlockedAt = &now
				unlocked = append(unlocked, a)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate achievements: %w", err)
	}

	for _, a := range unlocked {
		logger.Info("Achievement unlocked", "name", a.Name, "requirement", a.Requirement)
	}
	return unlocked, nil
}

func reached(a models.Achievement, t Totals) bool {
	switch a.BadgeType {
	case models.BadgePomodoro:
		return t.Pomodoros >= a.Requirement
	case models.BadgeTask:
		return t.Tasks >= a.Requirement
	default:
		return false
	}
}

// List returns all achievements in catalog order.
func (e *Engine) List(ctx context.Context) ([]models.Achievement, error) {
	return e.store.ListAchievements(ctx)
}
