package sqlite

import (
	"context"
	"database/sql"
	goerrors "errors"
	"fmt"
	"time"

	"github.com/julianstephens/pomolit/internal/errors"
	"github.com/julianstephens/pomolit/internal/models"
)

const eventColumns = "id, title, description, category, start_time, end_time, location, reminder_sent, created_at"

func scanEvent(row scanner) (models.CalendarEvent, error) {
	var e models.CalendarEvent
	var category, startTime, createdAt string
	var endTime sql.NullString

	err := row.Scan(&e.ID, &e.Title, &e.Description, &category, &startTime, &endTime, &e.Location, &e.ReminderSent, &createdAt)
	if err != nil {
		return models.CalendarEvent{}, err
	}
	e.Category = models.EventCategory(category)

	if e.StartTime, err = parseTime("start_time", startTime); err != nil {
		return models.CalendarEvent{}, err
	}
	if e.EndTime, err = parseNullTime("end_time", endTime); err != nil {
		return models.CalendarEvent{}, err
	}
	if e.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return models.CalendarEvent{}, err
	}
	return e, nil
}

func (s *Store) AddEvent(ctx context.Context, event models.CalendarEvent) error {
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO calendar_events (`+eventColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.Title, event.Description, string(event.Category), formatTime(event.StartTime),
		nullTime(event.EndTime), event.Location, event.ReminderSent, formatTime(event.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

func (s *Store) GetEvent(ctx context.Context, id string) (models.CalendarEvent, error) {
	row := s.q.QueryRowContext(ctx, "SELECT "+eventColumns+" FROM calendar_events WHERE id = ?", id)
	e, err := scanEvent(row)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return models.CalendarEvent{}, errors.NotFoundf("event %s", id)
		}
		return models.CalendarEvent{}, err
	}
	return e, nil
}

func (s *Store) ListUnremindedEvents(ctx context.Context, from, to time.Time) ([]models.CalendarEvent, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT `+eventColumns+` FROM calendar_events
		WHERE start_time >= ? AND start_time <= ? AND reminder_sent = 0
		ORDER BY start_time`, formatTime(from), formatTime(to))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.CalendarEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *Store) MarkReminderSent(ctx context.Context, id string) error {
	res, err := s.q.ExecContext(ctx, "UPDATE calendar_events SET reminder_sent = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}
	found, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if !found {
		return errors.NotFoundf("event %s", id)
	}
	return nil
}
