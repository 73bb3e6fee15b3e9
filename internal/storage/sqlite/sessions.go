package sqlite

import (
	"context"
	"database/sql"
	goerrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/pomolit/internal/errors"
	"github.com/julianstephens/pomolit/internal/models"
	"github.com/julianstephens/pomolit/internal/storage"
)

const sessionColumns = "id, duration, session_type, started_at, completed, completed_at, task_id"

func scanSession(row scanner) (models.Session, error) {
	var sess models.Session
	var sessionType, startedAt string
	var completedAt, taskID sql.NullString

	if err := row.Scan(&sess.ID, &sess.Duration, &sessionType, &startedAt, &sess.Completed, &completedAt, &taskID); err != nil {
		return models.Session{}, err
	}

	sess.Type = models.SessionType(sessionType)

	var err error
	if sess.StartedAt, err = parseTime("started_at", startedAt); err != nil {
		return models.Session{}, err
	}
	if sess.CompletedAt, err = parseNullTime("completed_at", completedAt); err != nil {
		return models.Session{}, err
	}
	if taskID.Valid {
		sess.TaskID = &taskID.String
	}
	return sess, nil
}

func (s *Store) AddSession(ctx context.Context, session models.Session) error {
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO sessions (`+sessionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		session.ID, session.Duration, string(session.Type), formatTime(session.StartedAt),
		session.Completed, nullTime(session.CompletedAt), nullString(session.TaskID),
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (s *Store) GetSession(ctx context.Context, id string) (models.Session, error) {
	row := s.q.QueryRowContext(ctx, "SELECT "+sessionColumns+" FROM sessions WHERE id = ?", id)
	sess, err := scanSession(row)
	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return models.Session{}, errors.NotFoundf("session %s", id)
		}
		return models.Session{}, err
	}
	return sess, nil
}

func (s *Store) MarkSessionCompleted(ctx context.Context, id string, at time.Time) (bool, error) {
	res, err := s.q.ExecContext(ctx, `
		UPDATE sessions SET completed = 1, completed_at = COALESCE(completed_at, ?)
		WHERE id = ? AND completed = 0`, formatTime(at), id)
	if err != nil {
		return false, fmt.Errorf("failed to complete session: %w", err)
	}
	changed, err := rowsAffected(res)
	if err != nil || changed {
		return changed, err
	}

	var exists int
	err = s.q.QueryRowContext(ctx, "SELECT 1 FROM sessions WHERE id = ?", id).Scan(&exists)
	if goerrors.Is(err, sql.ErrNoRows) {
		return false, errors.NotFoundf("session %s", id)
	}
	return false, err
}

func sessionWhere(filter storage.SessionFilter) (string, []any) {
	var clauses []string
	var args []any

	if !filter.Window.Start.IsZero() {
		clauses = append(clauses, "started_at >= ?")
		args = append(args, formatTime(filter.Window.Start))
	}
	if !filter.Window.End.IsZero() {
		clauses = append(clauses, "started_at < ?")
		args = append(args, formatTime(filter.Window.End))
	}
	if filter.Type != "" {
		clauses = append(clauses, "session_type = ?")
		args = append(args, string(filter.Type))
	}
	if filter.CompletedOnly {
		clauses = append(clauses, "completed = 1")
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (s *Store) ListSessions(ctx context.Context, filter storage.SessionFilter) ([]models.Session, error) {
	where, args := sessionWhere(filter)
	rows, err := s.q.QueryContext(ctx, "SELECT "+sessionColumns+" FROM sessions"+where+" ORDER BY started_at DESC", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

func (s *Store) CountSessions(ctx context.Context, filter storage.SessionFilter) (int, error) {
	where, args := sessionWhere(filter)
	var count int
	if err := s.q.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions"+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}

func (s *Store) SumSessionMinutes(ctx context.Context, filter storage.SessionFilter) (int, error) {
	where, args := sessionWhere(filter)
	var total int
	if err := s.q.QueryRowContext(ctx, "SELECT COALESCE(SUM(duration), 0) FROM sessions"+where, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum session minutes: %w", err)
	}
	return total, nil
}
