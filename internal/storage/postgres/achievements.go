package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/julianstephens/pomolit/internal/models"
)

func (s *Store) CountAchievements(ctx context.Context) (int, error) {
	var count int
	if err := s.q.QueryRowContext(ctx, "SELECT COUNT(*) FROM achievements").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count achievements: %w", err)
	}
	return count, nil
}

func (s *Store) AddAchievement(ctx context.Context, a models.Achievement) error {
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO achievements (id, name, description, badge_type, requirement, icon, position, unlocked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.Name, a.Description, string(a.BadgeType), a.Requirement, a.Icon, a.Position, nullTime(a.UnlockedAt))
	if err != nil {
		return fmt.Errorf("failed to insert achievement %s: %w", a.Name, err)
	}
	return nil
}

func (s *Store) ListAchievements(ctx context.Context) ([]models.Achievement, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT id, name, description, badge_type, requirement, icon, position, unlocked_at
		FROM achievements ORDER BY position, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []models.Achievement
	for rows.Next() {
		var a models.Achievement
		var badgeType string
		var unlockedAt sql.NullTime

		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &badgeType, &a.Requirement, &a.Icon, &a.Position, &unlockedAt); err != nil {
			return nil, err
		}
		a.BadgeType = models.BadgeType(badgeType)
		a.UnlockedAt = timePtr(unlockedAt)
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

func (s *Store) UnlockAchievement(ctx context.Context, id string, at time.Time) (bool, error) {
	res, err := s.q.ExecContext(ctx,
		"UPDATE achievements SET unlocked_at = $1 WHERE id = $2 AND unlocked_at IS NULL", at.UTC(), id)
	if err != nil {
		return false, fmt.Errorf("failed to unlock achievement: %w", err)
	}
	return rowsAffected(res)
}
