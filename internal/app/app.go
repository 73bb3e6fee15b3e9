// Package app assembles the pomolit services around one store. The CLI and
// the HTTP server both start from an App.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/pomolit/internal/achievement"
	"github.com/julianstephens/pomolit/internal/habits"
	"github.com/julianstephens/pomolit/internal/pomodoro"
	"github.com/julianstephens/pomolit/internal/reminder"
	"github.com/julianstephens/pomolit/internal/report"
	"github.com/julianstephens/pomolit/internal/settings"
	"github.com/julianstephens/pomolit/internal/storage"
	"github.com/julianstephens/pomolit/internal/tasks"
)

type Options struct {
	Location              *time.Location
	GuardDoubleCompletion bool
	Now                   func() time.Time
}

type App struct {
	Store        storage.Provider
	Settings     *settings.Provider
	Pomodoro     *pomodoro.Engine
	Tasks        *tasks.Service
	Habits       *habits.Service
	Achievements *achievement.Engine
	Reports      *report.Reporter
	Reminders    *reminder.Detector

	loc *time.Location
	now func() time.Time
}

// New loads settings and seeds the achievement catalog, then wires every
// service to store. The store must already be initialized or loaded.
func New(ctx context.Context, store storage.Provider, opts Options) (*App, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	prov := settings.New(store)
	if err := prov.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	a := &App{
		Store:        store,
		Settings:     prov,
		Pomodoro:     pomodoro.New(store, prov, pomodoro.Options{GuardDoubleCompletion: opts.GuardDoubleCompletion, Now: now}),
		Tasks:        tasks.New(store, loc, now),
		Habits:       habits.New(store, loc, now),
		Achievements: achievement.New(store, now),
		Reports:      report.New(store, loc),
		Reminders:    reminder.New(store, loc, now),
		loc:          loc,
		now:          now,
	}

	if _, err := a.Achievements.EnsureSeeded(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) Now() time.Time {
	return a.now()
}

func (a *App) Location() *time.Location {
	return a.loc
}
