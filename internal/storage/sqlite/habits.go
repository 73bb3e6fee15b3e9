package sqlite

import (
	"context"
	"database/sql"
	goerrors "errors"
	"fmt"

	"github.com/julianstephens/pomolit/internal/errors"
	"github.com/julianstephens/pomolit/internal/models"
)

func scanHabit(row scanner) (models.Habit, error) {
	var h models.Habit
	var frequency, createdAt string

	if err := row.Scan(&h.ID, &h.Name, &h.Description, &frequency, &h.Color, &createdAt); err != nil {
		return models.Habit{}, err
	}
	h.Frequency = models.HabitFrequency(frequency)

	var err error
	if h.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return models.Habit{}, fmt.Errorf("habit %s: %w", h.ID, err)
	}
	return h, nil
}

func (s *Store) AddHabit(ctx context.Context, habit models.Habit) error {
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO habits (id, name, description, frequency, color, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		habit.ID, habit.Name, habit.Description, string(habit.Frequency), habit.Color, formatTime(habit.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert habit: %w", err)
	}
	return nil
}

func (s *Store) GetHabit(ctx context.Context, id string) (models.Habit, error) {
	row := s.q.QueryRowContext(ctx, `
		SELECT id, name, description, frequency, color, created_at
		FROM habits WHERE id = ?`, id)
	h, err := scanHabit(row)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, errors.NotFoundf("habit %s", id)
		}
		return models.Habit{}, err
	}
	return h, nil
}

func (s *Store) ListHabits(ctx context.Context) ([]models.Habit, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT id, name, description, frequency, color, created_at
		FROM habits ORDER BY created_at, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func scanHabitLog(row scanner) (models.HabitLog, error) {
	var l models.HabitLog
	var createdAt string

	if err := row.Scan(&l.ID, &l.HabitID, &l.Day, &l.Completed, &l.Note, &createdAt); err != nil {
		return models.HabitLog{}, err
	}

	var err error
	if l.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return models.HabitLog{}, fmt.Errorf("habit log %s: %w", l.ID, err)
	}
	return l, nil
}

func (s *Store) AddHabitLog(ctx context.Context, log models.HabitLog) error {
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO habit_logs (id, habit_id, day, completed, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		log.ID, log.HabitID, log.Day, log.Completed, log.Note, formatTime(log.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert habit log: %w", err)
	}
	return nil
}

func (s *Store) GetHabitLog(ctx context.Context, habitID, day string) (models.HabitLog, error) {
	row := s.q.QueryRowContext(ctx, `
		SELECT id, habit_id, day, completed, note, created_at
		FROM habit_logs WHERE habit_id = ? AND day = ?`, habitID, day)
	l, err := scanHabitLog(row)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return models.HabitLog{}, errors.NotFoundf("habit log %s/%s", habitID, day)
		}
		return models.HabitLog{}, err
	}
	return l, nil
}

func (s *Store) DeleteHabitLog(ctx context.Context, id string) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM habit_logs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete habit log: %w", err)
	}
	found, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if !found {
		return errors.NotFoundf("habit log %s", id)
	}
	return nil
}

func (s *Store) GetHabitLogs(ctx context.Context, habitID, startDay, endDay string) ([]models.HabitLog, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT id, habit_id, day, completed, note, created_at
		FROM habit_logs
		WHERE habit_id = ? AND day >= ? AND day <= ?
		ORDER BY day DESC`, habitID, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.HabitLog
	for rows.Next() {
		l, err := scanHabitLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
