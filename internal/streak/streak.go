// Package streak derives habit streaks from completion logs. A streak is the
// number of consecutive days, ending at a reference day, that carry a
// completed log.
package streak

import (
	"context"
	"iter"
	"time"

	"github.com/julianstephens/pomolit/internal/constants"
	"github.com/julianstephens/pomolit/internal/models"
)

// LogSource is the storage the calculator reads from.
type LogSource interface {
	GetHabitLogs(ctx context.Context, habitID, startDay, endDay string) ([]models.HabitLog, error)
}

type Calculator struct {
	logs     LogSource
	loc      *time.Location
	pageDays int
}

func New(logs LogSource, loc *time.Location) *Calculator {
	if loc == nil {
		loc = time.UTC
	}
	return &Calculator{logs: logs, loc: loc, pageDays: constants.StreakPageDays}
}

func (c *Calculator) day(t time.Time) time.Time {
	t = t.In(c.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}

func (c *Calculator) format(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Walk yields the days of the streak ending at asOf, newest first, and stops
// at the first day without a completed log. Logs are fetched one page of
// days at a time, so the cost grows with the streak length only.
func (c *Calculator) Walk(ctx context.Context, habitID string, asOf time.Time) iter.Seq2[time.Time, error] {
	return func(yield func(time.Time, error) bool) {
		cursor := c.day(asOf)

		for {
			pageStart := cursor.AddDate(0, 0, -(c.pageDays - 1))
			logs, err := c.logs.GetHabitLogs(ctx, habitID, c.format(pageStart), c.format(cursor))
			if err != nil {
				yield(time.Time{}, err)
				return
			}

			done := make(map[string]bool, len(logs))
			for _, l := range logs {
				if l.Completed {
					done[l.Day] = true
				}
			}

			for d := cursor; !d.Before(pageStart); d = d.AddDate(0, 0, -1) {
				if !done[c.format(d)] {
					return
				}
				if !yield(d, nil) {
					return
				}
			}

			if err := ctx.Err(); err != nil {
				yield(time.Time{}, err)
				return
			}
			cursor = pageStart.AddDate(0, 0, -1)
		}
	}
}

// Current returns the streak length ending at asOf. It is 0 when asOf itself
// has no completed log, even if the previous day ended a long run.
func (c *Calculator) Current(ctx context.Context, habitID string, asOf time.Time) (int, error) {
	count := 0
	for _, err := range c.Walk(ctx, habitID, asOf) {
		if err != nil {
			return 0, err
		}
		count++
	}
	return count, nil
}

// Status reports the streak and whether any log exists for asOf. The latter
// ignores the log's completed flag.
func (c *Calculator) Status(ctx context.Context, habit models.Habit, asOf time.Time) (models.HabitStatus, error) {
	streak, err := c.Current(ctx, habit.ID, asOf)
	if err != nil {
		return models.HabitStatus{}, err
	}

	logs, err := c.logs.GetHabitLogs(ctx, habit.ID, c.format(c.day(asOf)), c.format(c.day(asOf)))
	if err != nil {
		return models.HabitStatus{}, err
	}

	return models.HabitStatus{
		Habit:          habit,
		Streak:         streak,
		CompletedToday: len(logs) > 0,
	}, nil
}
