package storage

import (
	"context"
	"time"

	"github.com/julianstephens/pomolit/internal/models"
	"github.com/julianstephens/pomolit/internal/utils"
)

// SessionFilter narrows session queries. Zero values mean "any".
type SessionFilter struct {
	Window        utils.Window // matched against started_at; zero window is all time
	Type          models.SessionType
	CompletedOnly bool
}

// TaskFilter narrows task listings. Results are ordered by priority (high
// first) then due date, undated tasks last.
type TaskFilter struct {
	Statuses []models.TaskStatus
	Limit    int
}

type Provider interface {
	// Lifecycle
	Init(ctx context.Context) error
	Load(ctx context.Context) error
	Close() error

	// WithTx runs fn against a Provider bound to a single transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	// Nested calls reuse the outer transaction.
	WithTx(ctx context.Context, fn func(Provider) error) error

	// Settings
	GetSettings(ctx context.Context) (models.Settings, error)
	SaveSettings(ctx context.Context, settings models.Settings) error

	// Sessions
	AddSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context, id string) (models.Session, error)
	// MarkSessionCompleted flags a session completed, keeping the first
	// completion time. It reports whether this call made the transition and
	// returns ErrNotFound for an unknown id.
	MarkSessionCompleted(ctx context.Context, id string, at time.Time) (bool, error)
	ListSessions(ctx context.Context, filter SessionFilter) ([]models.Session, error)
	CountSessions(ctx context.Context, filter SessionFilter) (int, error)
	SumSessionMinutes(ctx context.Context, filter SessionFilter) (int, error)

	// Tasks
	AddTask(ctx context.Context, task models.Task) error
	GetTask(ctx context.Context, id string) (models.Task, error)
	ListTasks(ctx context.Context, filter TaskFilter) ([]models.Task, error)
	// IncrementTaskPomodoros adds one completed pomodoro and moves a todo task
	// to in_progress in a single statement. It reports false when no such task exists.
	IncrementTaskPomodoros(ctx context.Context, id string) (bool, error)
	// CompleteTask marks a task completed at at. Completing again moves completed_at.
	CompleteTask(ctx context.Context, id string, at time.Time) error
	// CountCompletedTasks counts completed tasks whose completed_at falls in
	// window. A zero window counts every completed task.
	CountCompletedTasks(ctx context.Context, window utils.Window) (int, error)

	// Habits
	AddHabit(ctx context.Context, habit models.Habit) error
	GetHabit(ctx context.Context, id string) (models.Habit, error)
	ListHabits(ctx context.Context) ([]models.Habit, error)

	// Habit logs
	AddHabitLog(ctx context.Context, log models.HabitLog) error
	GetHabitLog(ctx context.Context, habitID, day string) (models.HabitLog, error)
	DeleteHabitLog(ctx context.Context, id string) error
	// GetHabitLogs returns the logs of a habit with startDay <= day <= endDay,
	// newest first.
	GetHabitLogs(ctx context.Context, habitID, startDay, endDay string) ([]models.HabitLog, error)

	// Achievements
	CountAchievements(ctx context.Context) (int, error)
	AddAchievement(ctx context.Context, achievement models.Achievement) error
	ListAchievements(ctx context.Context) ([]models.Achievement, error)
	// UnlockAchievement sets unlocked_at only if it is still unset and reports
	// whether this call unlocked it.
	UnlockAchievement(ctx context.Context, id string, at time.Time) (bool, error)

	// Calendar events
	AddEvent(ctx context.Context, event models.CalendarEvent) error
	GetEvent(ctx context.Context, id string) (models.CalendarEvent, error)
	// ListUnremindedEvents returns events with from <= start_time <= to whose
	// reminder has not been sent, earliest first.
	ListUnremindedEvents(ctx context.Context, from, to time.Time) ([]models.CalendarEvent, error)
	MarkReminderSent(ctx context.Context, id string) error

	// Utils
	GetConfigPath() string
}
