// Package pomodoro implements the session lifecycle: starting timed work and
// break sessions and completing them, crediting the linked task for work.
package pomodoro

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/pomolit/internal/logger"
	"github.com/julianstephens/pomolit/internal/models"
	"github.com/julianstephens/pomolit/internal/storage"
	"github.com/julianstephens/pomolit/internal/utils"
)

// SettingsSource supplies the durations in effect at the time of a call.
type SettingsSource interface {
	Current() models.Settings
}

// Options tunes an Engine.
type Options struct {
	// GuardDoubleCompletion makes completing an already completed session a
	// no-op. When false a repeated completion credits the linked task again.
	GuardDoubleCompletion bool
	// Now overrides the clock, mainly for tests.
	Now func() time.Time
}

// Engine starts and completes pomodoro sessions.
type Engine struct {
	store    storage.Provider
	settings SettingsSource
	guard    bool
	now      func() time.Time
}

// New returns an Engine reading durations from settings at each Start.
func New(store storage.Provider, settings SettingsSource, opts Options) *Engine {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Engine{
		store:    store,
		settings: settings,
		guard:    opts.GuardDoubleCompletion,
		now:      now,
	}
}

// Start creates an open session whose duration comes from the current
// settings. An empty type means work. taskID is stored as given; an empty
// string is treated as no task.
func (e *Engine) Start(ctx context.Context, sessionType models.SessionType, taskID *string) (models.Session, error) {
	if sessionType == "" {
		sessionType = models.SessionWork
	}
	if taskID != nil && *taskID == "" {
		taskID = nil
	}

	sess := models.Session{
		ID:        uuid.New().String(),
		Duration:  e.settings.Current().DurationFor(sessionType),
		Type:      sessionType,
		StartedAt: e.now().UTC(),
		TaskID:    taskID,
	}

	if err := e.store.AddSession(ctx, sess); err != nil {
		return models.Session{}, err
	}

	logger.Debug("Session started", "id", sess.ID, "type", sess.Type, "duration", sess.Duration)
	return sess, nil
}

// Complete marks a session completed. A completed work session linked to a
// task adds one pomodoro to the task and moves it out of todo, all in one
// transaction. A linked task that no longer exists is ignored.
func (e *Engine) Complete(ctx context.Context, id string) (models.Session, error) {
	var result models.Session

	err := e.store.WithTx(ctx, func(tx storage.Provider) error {
		sess, err := tx.GetSession(ctx, id)
		if err != nil {
			return err
		}

		now := e.now().UTC()
		changed, err := tx.MarkSessionCompleted(ctx, id, now)
		if err != nil {
			return err
		}

		sess.Completed = true
		if sess.CompletedAt == nil {
			sess.CompletedAt = &now
		}
		result = sess

		if !changed && e.guard {
			logger.Debug("Session already completed", "id", id)
			return nil
		}

		if !sess.CountsTowardTask() {
			return nil
		}

		found, err := tx.IncrementTaskPomodoros(ctx, *sess.TaskID)
		if err != nil {
			return err
		}
		if !found {
			logger.Debug("Linked task not found, skipping credit", "session", id, "task", *sess.TaskID)
		}
		return nil
	})
	if err != nil {
		return models.Session{}, err
	}

	logger.Debug("Session completed", "id", id, "type", result.Type)
	return result, nil
}

// Get returns one session.
func (e *Engine) Get(ctx context.Context, id string) (models.Session, error) {
	return e.store.GetSession(ctx, id)
}

// List returns the sessions started within window, newest first.
func (e *Engine) List(ctx context.Context, window utils.Window) ([]models.Session, error) {
	return e.store.ListSessions(ctx, storage.SessionFilter{Window: window})
}
