package postgres

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
	var sessionType string
	var completedAt sql.NullTime
	var taskID sql.NullString

	if err := row.Scan(&sess.ID, &sess.Duration, &sessionType, &sess.StartedAt, &sess.Completed, &completedAt, &taskID); err != nil {
		return models.Session{}, err
	}
	sess.Type = models.SessionType(sessionType)
	sess.StartedAt = sess.StartedAt.UTC()
	sess.CompletedAt = timePtr(completedAt)
	if taskID.Valid {
		sess.TaskID = &taskID.String
	}
	return sess, nil
}

func (s *Store) AddSession(ctx context.Context, session models.Session) error {
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO sessions (`+sessionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		session.ID, session.Duration, string(session.Type), session.StartedAt.UTC(),
		session.Completed, nullTime(session.CompletedAt), nullString(session.TaskID),
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (s *Store) GetSession(ctx context.Context, id string) (models.Session, error) {
	row := s.q.QueryRowContext(ctx, "SELECT "+sessionColumns+" FROM sessions WHERE id = $1", id)
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
		UPDATE sessions SET completed = TRUE, completed_at = COALESCE(completed_at, $1)
		WHERE id = $2 AND NOT completed`, at.UTC(), id)
	if err != nil {
		return false, fmt.Errorf("failed to complete session: %w", err)
	}
	changed, err := rowsAffected(res)
	if err != nil || changed {
		return changed, err
	}

	var exists int
	err = s.q.QueryRowContext(ctx, "SELECT 1 FROM sessions WHERE id = $1", id).Scan(&exists)
	if goerrors.Is(err, sql.ErrNoRows) {
		return false, errors.NotFoundf("session %s", id)
	}
	return false, err
}

// args collects positional parameters and hands out $n placeholders.
type args []any

func (a *args) add(v any) string {
	*a = append(*a, v)
	return fmt.Sprintf("$%d", len(*a))
}

func sessionWhere(filter storage.SessionFilter) (string, args) {
	var clauses []string
	var a args

	if !filter.Window.Start.IsZero() {
		clauses = append(clauses, "started_at >= "+a.add(filter.Window.Start.UTC()))
	}
	if !filter.Window.End.IsZero() {
		clauses = append(clauses, "started_at < "+a.add(filter.Window.End.UTC()))
	}
	if filter.Type != "" {
		clauses = append(clauses, "session_type = "+a.add(string(filter.Type)))
	}
	if filter.CompletedOnly {
		clauses = append(clauses, "completed")
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), a
}

func (s *Store) ListSessions(ctx context.Context, filter storage.SessionFilter) ([]models.Session, error) {
	where, a := sessionWhere(filter)
	rows, err := s.q.QueryContext(ctx, "SELECT "+sessionColumns+" FROM sessions"+where+" ORDER BY started_at DESC", a...)
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
	where, a := sessionWhere(filter)
	var count int
	if err := s.q.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions"+where, a...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}

func (s *Store) SumSessionMinutes(ctx context.Context, filter storage.SessionFilter) (int, error) {
	where, a := sessionWhere(filter)
	var total int
	if err := s.q.QueryRowContext(ctx, "SELECT COALESCE(SUM(duration), 0) FROM sessions"+where, a...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum session minutes: %w", err)
	}
	return total, nil
}
