package models

import "time"

type SessionType string

const (
	SessionWork      SessionType = "work"
	SessionBreak     SessionType = "break"
	SessionLongBreak SessionType = "long_break"
)

// Session is one pomodoro timer interval
type Session struct {
	ID          string      `json:"id"`
	Duration    int         `json:"duration"` // minutes, copied from settings at start
	Type        SessionType `json:"session_type"`
	StartedAt   time.Time   `json:"started_at"`
	Completed   bool        `json:"completed"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
	TaskID      *string     `json:"task_id,omitempty"`
}

// CountsTowardTask reports whether completing the session advances its linked task
func (s Session) CountsTowardTask() bool {
	return s.TaskID != nil && s.Type == SessionWork
}
