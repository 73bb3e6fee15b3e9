package postgres

import (
	"context"
	"database/sql"
	goerrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/pomolit/internal/constants"
	"github.com/julianstephens/pomolit/internal/errors"
	"github.com/julianstephens/pomolit/internal/models"
	"github.com/julianstephens/pomolit/internal/storage"
	"github.com/julianstephens/pomolit/internal/utils"
)

const taskColumns = `id, title, description, priority, status, estimated_pomodoros,
	completed_pomodoros, to_char(due_date, 'YYYY-MM-DD'), created_at, completed_at`

const taskInsertColumns = `id, title, description, priority, status, estimated_pomodoros,
	completed_pomodoros, due_date, created_at, completed_at`

const taskOrder = ` ORDER BY CASE priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 WHEN 'low' THEN 1 ELSE 0 END DESC,
	due_date ASC NULLS LAST, created_at`

func scanTask(row scanner) (models.Task, error) {
	var t models.Task
	var priority, status string
	var dueDate sql.NullString
	var completedAt sql.NullTime

	err := row.Scan(&t.ID, &t.Title, &t.Description, &priority, &status, &t.EstimatedPomodoros,
		&t.CompletedPomodoros, &dueDate, &t.CreatedAt, &completedAt)
	if err != nil {
		return models.Task{}, err
	}

	t.Priority = models.Priority(priority)
	t.Status = models.TaskStatus(status)
	t.CreatedAt = t.CreatedAt.UTC()
	t.CompletedAt = timePtr(completedAt)

	if dueDate.Valid {
		d, err := time.Parse(constants.DateFormat, dueDate.String)
		if err != nil {
			return models.Task{}, fmt.Errorf("failed to parse due_date for task %s: %w", t.ID, err)
		}
		t.DueDate = &d
	}
	return t, nil
}

func (s *Store) AddTask(ctx context.Context, task models.Task) error {
	var dueDate sql.NullString
	if task.DueDate != nil {
		dueDate = sql.NullString{String: task.DueDate.Format(constants.DateFormat), Valid: true}
	}

	_, err := s.q.ExecContext(ctx, `
		INSERT INTO tasks (`+taskInsertColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		task.ID, task.Title, task.Description, string(task.Priority), string(task.Status),
		task.EstimatedPomodoros, task.CompletedPomodoros, dueDate,
		task.CreatedAt.UTC(), nullTime(task.CompletedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

func (s *Store) GetTask(ctx context.Context, id string) (models.Task, error) {
	row := s.q.QueryRowContext(ctx, "SELECT "+taskColumns+" FROM tasks WHERE id = $1", id)
	t, err := scanTask(row)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return models.Task{}, errors.NotFoundf("task %s", id)
		}
		return models.Task{}, err
	}
	return t, nil
}

func (s *Store) ListTasks(ctx context.Context, filter storage.TaskFilter) ([]models.Task, error) {
	query := "SELECT " + taskColumns + " FROM tasks"
	var a args

	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			placeholders[i] = a.add(string(status))
		}
		query += " WHERE status IN (" + strings.Join(placeholders, ", ") + ")"
	}
	query += taskOrder
	if filter.Limit > 0 {
		query += " LIMIT " + a.add(filter.Limit)
	}

	rows, err := s.q.QueryContext(ctx, query, a...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) IncrementTaskPomodoros(ctx context.Context, id string) (bool, error) {
	res, err := s.q.ExecContext(ctx, `
		UPDATE tasks
		SET completed_pomodoros = completed_pomodoros + 1,
		    status = CASE WHEN status = 'todo' THEN 'in_progress' ELSE status END
		WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to increment task pomodoros: %w", err)
	}
	return rowsAffected(res)
}

func (s *Store) CompleteTask(ctx context.Context, id string, at time.Time) error {
	res, err := s.q.ExecContext(ctx, `
		UPDATE tasks SET status = 'completed', completed_at = $1
		WHERE id = $2`, at.UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}
	found, err := rowsAffected(res)
	if err != nil {
		return err
	}
	if !found {
		return errors.NotFoundf("task %s", id)
	}
	return nil
}

func (s *Store) CountCompletedTasks(ctx context.Context, window utils.Window) (int, error) {
	query := "SELECT COUNT(*) FROM tasks WHERE status = 'completed'"
	var a args
	if !window.Start.IsZero() {
		query += " AND completed_at >= " + a.add(window.Start.UTC())
	}
	if !window.End.IsZero() {
		query += " AND completed_at < " + a.add(window.End.UTC())
	}

	var count int
	if err := s.q.QueryRowContext(ctx, query, a...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count completed tasks: %w", err)
	}
	return count, nil
}
