package models

import "time"

type BadgeType string

const (
	BadgePomodoro BadgeType = "pomodoro"
	BadgeStreak   BadgeType = "streak"
	BadgeTask     BadgeType = "task"
)

// Achievement is a one-way unlockable milestone. A nil UnlockedAt means locked.
type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	BadgeType   BadgeType  `json:"badge_type"`
	Requirement int        `json:"requirement"`
	Icon        string     `json:"icon"`
	Position    int        `json:"-"` // catalog order
	UnlockedAt  *time.Time `json:"unlocked_at"`
}

func (a Achievement) Unlocked() bool {
	return a.UnlockedAt != nil
}
