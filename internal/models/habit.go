package models

import "time"

type HabitFrequency string

const (
	FrequencyDaily  HabitFrequency = "daily"
	FrequencyWeekly HabitFrequency = "weekly"
	FrequencyCustom HabitFrequency = "custom"
)

// Habit represents a recurring practice to track
type Habit struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Frequency   HabitFrequency `json:"frequency"`
	Color       string         `json:"color"`
	CreatedAt   time.Time      `json:"created_at"`
}

// HabitLog represents a single day's record of a habit.
// At most one log exists per (HabitID, Day).
type HabitLog struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	Completed bool      `json:"completed"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}

// HabitStatus is the derived per-habit view: the streak is recomputed on every read
type HabitStatus struct {
	Habit          Habit `json:"habit"`
	Streak         int   `json:"streak"`
	CompletedToday bool  `json:"completed_today"`
}
