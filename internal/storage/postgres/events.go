package postgres

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
	var category string
	var endTime sql.NullTime

	err := row.Scan(&e.ID, &e.Title, &e.Description, &category, &e.StartTime, &endTime, &e.Location, &e.ReminderSent, &e.CreatedAt)
	if err != nil {
		return models.CalendarEvent{}, err
	}
	e.Category = models.EventCategory(category)
	e.StartTime = e.StartTime.UTC()
	e.EndTime = timePtr(endTime)
	e.CreatedAt = e.CreatedAt.UTC()
	return e, nil
}

func (s *Store) AddEvent(ctx context.Context, event models.CalendarEvent) error {
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO calendar_events (`+eventColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		event.ID, event.Title, event.Description, string(event.Category), event.StartTime.UTC(),
		nullTime(event.EndTime), event.Location, event.ReminderSent, event.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

func (s *Store) GetEvent(ctx context.Context, id string) (models.CalendarEvent, error) {
	row := s.q.QueryRowContext(ctx, "SELECT "+eventColumns+" FROM calendar_events WHERE id = $1", id)
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
		WHERE start_time >= $1 AND start_time <= $2 AND NOT reminder_sent
		ORDER BY start_time`, from.UTC(), to.UTC())
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
	res, err := s.q.ExecContext(ctx, "UPDATE calendar_events SET reminder_sent = TRUE WHERE id = $1", id)
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
