package models

import "time"

// Settings represents application-wide settings
type Settings struct {
	WorkDuration      int        `json:"work_duration"`       // minutes per work session
	BreakDuration     int        `json:"break_duration"`      // minutes per short break
	LongBreakDuration int        `json:"long_break_duration"` // minutes per long break
	TermsAccepted     bool       `json:"terms_accepted"`
	TermsAcceptedAt   *time.Time `json:"terms_accepted_at,omitempty"`
}

// DurationFor maps a session type to its configured duration.
// Anything other than work or long_break is treated as a short break.
func (s Settings) DurationFor(t SessionType) int {
	switch t {
	case SessionWork:
		return s.WorkDuration
	case SessionLongBreak:
		return s.LongBreakDuration
	default:
		return s.BreakDuration
	}
}
