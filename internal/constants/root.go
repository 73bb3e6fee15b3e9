package constants

import "time"

const (
	AppName            = "pomolit"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/pomolit/pomolit.db"
	Version            = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Log file rotation
	LogDirName    = "logs"
	LogFileName   = "pomolit.log"
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 28

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "pomolit-"
	BackupFileSuffix = ".db"

	// Reminder window: events starting ReminderLead from now, plus or minus ReminderTolerance
	ReminderLead      = 30 * time.Minute
	ReminderTolerance = 5 * time.Minute

	// Aggregate windows
	StatisticsDays   = 7
	ReportWeekDays   = 7
	ReportMonthDays  = 30
	DashboardPending = 5

	// StreakPageDays is how many days of habit logs the streak walk loads per lookup
	StreakPageDays = 64
)
