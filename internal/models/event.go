package models

import "time"

type EventCategory string

const (
	CategoryWork     EventCategory = "work"
	CategoryMeeting  EventCategory = "meeting"
	CategoryPersonal EventCategory = "personal"
	CategoryHealth   EventCategory = "health"
	CategoryStudy    EventCategory = "study"
	CategoryOther    EventCategory = "other"
)

// ValidCategory reports whether c is one of the known event categories
func ValidCategory(c EventCategory) bool {
	switch c {
	case CategoryWork, CategoryMeeting, CategoryPersonal, CategoryHealth, CategoryStudy, CategoryOther:
		return true
	}
	return false
}

type CalendarEvent struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Category     EventCategory `json:"category"`
	StartTime    time.Time     `json:"start_time"`
	EndTime      *time.Time    `json:"end_time,omitempty"`
	Location     string        `json:"location"`
	ReminderSent bool          `json:"reminder_sent"`
	CreatedAt    time.Time     `json:"created_at"`
}

// Reminder is the payload produced when an event enters its reminder window
type Reminder struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	StartTime string        `json:"start_time"` // HH:MM
	Category  EventCategory `json:"category"`
}
