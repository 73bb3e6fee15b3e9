package constants

const (
	// Settings keys
	SettingWorkDuration      = "pomodoro_work_duration"
	SettingBreakDuration     = "pomodoro_break_duration"
	SettingLongBreakDuration = "pomodoro_long_break_duration"
	SettingTermsAccepted     = "terms_accepted"
	SettingTermsAcceptedAt   = "terms_accepted_at"

	// Default Settings Values
	DefaultWorkDuration      = 25
	DefaultBreakDuration     = 5
	DefaultLongBreakDuration = 15

	// Allowed ranges (minutes). Out-of-range values clamp to the nearest bound.
	MinWorkDuration      = 5
	MaxWorkDuration      = 60
	MinBreakDuration     = 1
	MaxBreakDuration     = 30
	MinLongBreakDuration = 5
	MaxLongBreakDuration = 60

	// Task intake bounds
	MinEstimatedPomodoros     = 1
	MaxEstimatedPomodoros     = 20
	DefaultEstimatedPomodoros = 1

	// Field length limits
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
	MaxHabitNameLength   = 100
	MaxHabitDescLength   = 500
	MaxLocationLength    = 200
)
