// Package reminder records calendar events and detects the ones about to
// start. Delivery of the resulting reminders is left to the caller.
package reminder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/pomolit/internal/constants"
	"github.com/julianstephens/pomolit/internal/errors"
	"github.com/julianstephens/pomolit/internal/logger"
	"github.com/julianstephens/pomolit/internal/models"
	"github.com/julianstephens/pomolit/internal/storage"
	"github.com/julianstephens/pomolit/internal/utils"
)

// EventInput is a calendar event as submitted by a client. Dates are
// YYYY-MM-DD and times HH:MM in the detector's location.
type EventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	StartTime   string `json:"start_time"`
	EndDate     string `json:"end_date"`
	EndTime     string `json:"end_time"`
}

// Detector stores calendar events and finds those entering the reminder window.
type Detector struct {
	store storage.Provider
	loc   *time.Location
	now   func() time.Time
}

func New(store storage.Provider, loc *time.Location, now func() time.Time) *Detector {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Detector{store: store, loc: loc, now: now}
}

// Event returns one stored event.
func (d *Detector) Event(ctx context.Context, id string) (models.CalendarEvent, error) {
	return d.store.GetEvent(ctx, id)
}

// AddEvent validates and stores a calendar event. The start is mandatory; an
// end that does not parse is dropped, an end before the start is rejected.
func (d *Detector) AddEvent(ctx context.Context, in EventInput) (models.CalendarEvent, error) {
	title := utils.TrimAndTruncate(in.Title, constants.MaxTitleLength)
	if title == "" {
		return models.CalendarEvent{}, errors.Validationf("event title is required")
	}

	start, err := utils.CombineDateAndTime(strings.TrimSpace(in.StartDate), strings.TrimSpace(in.StartTime), d.loc)
	if err != nil {
		return models.CalendarEvent{}, errors.Validationf("invalid start date or time")
	}

	var end *time.Time
	if in.EndDate != "" && in.EndTime != "" {
		if t, err := utils.CombineDateAndTime(strings.TrimSpace(in.EndDate), strings.TrimSpace(in.EndTime), d.loc); err == nil {
			if t.Before(start) {
				return models.CalendarEvent{}, errors.Validationf("end time must not be before start time")
			}
			t = t.UTC()
			end = &t
		}
	}

	category := models.EventCategory(in.Category)
	if !models.ValidCategory(category) {
		category = models.CategoryOther
	}

	event := models.CalendarEvent{
		ID:          uuid.New().String(),
		Title:       title,
		Description: utils.TrimAndTruncate(in.Description, constants.MaxDescriptionLength),
		Category:    category,
		StartTime:   start.UTC(),
		EndTime:     end,
		Location:    utils.TrimAndTruncate(in.Location, constants.MaxLocationLength),
		CreatedAt:   d.now().UTC(),
	}
	if err := d.store.AddEvent(ctx, event); err != nil {
		return models.CalendarEvent{}, fmt.Errorf("failed to add event: %w", err)
	}

	logger.Debug("Calendar event added", "id", event.ID, "start", event.StartTime)
	return event, nil
}

// Window returns the start-time range checked by Due.
func Window(now time.Time) (from, to time.Time) {
	at := now.Add(constants.ReminderLead)
	return at.Add(-constants.ReminderTolerance), at.Add(constants.ReminderTolerance)
}

// Due returns the events starting within the reminder window around
// now+30m that have not been reminded yet, and marks them reminded in the
// same transaction so each event is reported once.
func (d *Detector) Due(ctx context.Context, now time.Time) ([]models.Reminder, error) {
	from, to := Window(now)
	reminders := []models.Reminder{}

	err := d.store.WithTx(ctx, func(tx storage.Provider) error {
		events, err := tx.ListUnremindedEvents(ctx, from, to)
		if err != nil {
			return err
		}
		for _, ev := range events {
			if err := tx.MarkReminderSent(ctx, ev.ID); err != nil {
				return err
			}
			reminders = append(reminders, models.Reminder{
				ID:        ev.ID,
				Title:     ev.Title,
				StartTime: ev.StartTime.In(d.loc).Format(constants.TimeFormat),
				Category:  ev.Category,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check reminders: %w", err)
	}

	if len(reminders) > 0 {
		logger.Info("Reminders due", "count", len(reminders))
	}
	return reminders, nil
}
