// Package report derives dashboard, statistics and rollup aggregates from
// stored sessions and tasks. Every window is computed in the reporter's
// location.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/pomolit/internal/constants"
	"github.com/julianstephens/pomolit/internal/models"
	"github.com/julianstephens/pomolit/internal/storage"
	"github.com/julianstephens/pomolit/internal/utils"
)

// Reporter aggregates completed sessions and tasks over time windows.
type Reporter struct {
	store storage.Provider
	loc   *time.Location
}

func New(store storage.Provider, loc *time.Location) *Reporter {
	if loc == nil {
		loc = time.UTC
	}
	return &Reporter{store: store, loc: loc}
}

// SessionCount counts completed sessions of the given type started inside
// window. An empty type counts every type.
func (r *Reporter) SessionCount(ctx context.Context, window utils.Window, sessionType models.SessionType) (int, error) {
	return r.store.CountSessions(ctx, storage.SessionFilter{Window: window, Type: sessionType, CompletedOnly: true})
}

// SessionMinutes sums the planned minutes of completed sessions of the given
// type started inside window.
func (r *Reporter) SessionMinutes(ctx context.Context, window utils.Window, sessionType models.SessionType) (int, error) {
	return r.store.SumSessionMinutes(ctx, storage.SessionFilter{Window: window, Type: sessionType, CompletedOnly: true})
}

func (r *Reporter) CompletedTaskCount(ctx context.Context, window utils.Window) (int, error) {
	return r.store.CountCompletedTasks(ctx, window)
}

// Today builds the dashboard snapshot for now's calendar day.
func (r *Reporter) Today(ctx context.Context, now time.Time) (models.Snapshot, error) {
	day := utils.DayWindow(now, r.loc)
	snap := models.Snapshot{Date: utils.FormatDay(now, r.loc)}

	var err error
	if snap.Sessions, err = r.SessionCount(ctx, day, models.SessionWork); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to count today's sessions: %w", err)
	}
	if snap.Minutes, err = r.SessionMinutes(ctx, day, models.SessionWork); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to sum today's minutes: %w", err)
	}
	if snap.CompletedTasks, err = r.CompletedTaskCount(ctx, day); err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to count today's tasks: %w", err)
	}

	snap.ActiveTasks, err = r.store.ListTasks(ctx, storage.TaskFilter{Statuses: []models.TaskStatus{models.TaskInProgress}})
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to list active tasks: %w", err)
	}
	snap.PendingTasks, err = r.store.ListTasks(ctx, storage.TaskFilter{
		Statuses: []models.TaskStatus{models.TaskTodo},
		Limit:    constants.DashboardPending,
	})
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("failed to list pending tasks: %w", err)
	}

	if snap.ActiveTasks == nil {
		snap.ActiveTasks = []models.Task{}
	}
	if snap.PendingTasks == nil {
		snap.PendingTasks = []models.Task{}
	}
	return snap, nil
}

// Daily returns one entry per day for the last `days` days ending with now's
// day, oldest first, along with all-time totals.
func (r *Reporter) Daily(ctx context.Context, now time.Time, days int) (models.Statistics, error) {
	if days <= 0 {
		days = constants.StatisticsDays
	}

	stats := models.Statistics{Daily: make([]models.DayStat, 0, days)}
	for _, w := range utils.DailyWindows(now, days, r.loc) {
		rollup, err := r.rollup(ctx, w)
		if err != nil {
			return models.Statistics{}, err
		}
		stats.Daily = append(stats.Daily, models.DayStat{
			Date:     utils.FormatDay(w.Start, r.loc),
			Sessions: rollup.Pomodoros,
			Minutes:  rollup.Minutes,
			Tasks:    rollup.Tasks,
		})
	}

	all, err := r.rollup(ctx, utils.Window{})
	if err != nil {
		return models.Statistics{}, err
	}
	stats.Totals = models.Totals{Sessions: all.Pomodoros, Minutes: all.Minutes, Tasks: all.Tasks}
	return stats, nil
}

// Rollups summarizes the trailing 7 and 30 days.
func (r *Reporter) Rollups(ctx context.Context, now time.Time) (models.Report, error) {
	return r.report(ctx,
		utils.TrailingWindow(now, constants.ReportWeekDays, r.loc),
		utils.TrailingWindow(now, constants.ReportMonthDays, r.loc))
}

// CalendarRollups summarizes the current calendar week (Monday first) and
// calendar month.
func (r *Reporter) CalendarRollups(ctx context.Context, now time.Time) (models.Report, error) {
	return r.report(ctx, utils.WeekWindow(now, r.loc), utils.MonthWindow(now, r.loc))
}

func (r *Reporter) report(ctx context.Context, week, month utils.Window) (models.Report, error) {
	w, err := r.rollup(ctx, week)
	if err != nil {
		return models.Report{}, err
	}
	m, err := r.rollup(ctx, month)
	if err != nil {
		return models.Report{}, err
	}
	return models.Report{Week: w, Month: m}, nil
}

func (r *Reporter) rollup(ctx context.Context, w utils.Window) (models.Rollup, error) {
	out := models.Rollup{Start: w.Start, End: w.End}

	var err error
	if out.Pomodoros, err = r.SessionCount(ctx, w, models.SessionWork); err != nil {
		return models.Rollup{}, fmt.Errorf("failed to count sessions: %w", err)
	}
	if out.Minutes, err = r.SessionMinutes(ctx, w, models.SessionWork); err != nil {
		return models.Rollup{}, fmt.Errorf("failed to sum session minutes: %w", err)
	}
	if out.Tasks, err = r.CompletedTaskCount(ctx, w); err != nil {
		return models.Rollup{}, fmt.Errorf("failed to count completed tasks: %w", err)
	}
	return out, nil
}
