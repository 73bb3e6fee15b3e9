package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/pomolit/internal/constants"
)

// Window is a half-open time interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// IsZero reports whether the window is unbounded on both sides.
func (w Window) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

// LoadLocation loads a timezone location from an IANA timezone name.
// An empty name or "UTC" yields UTC; "Local" yields the system timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	switch timezone {
	case "", "UTC":
		return time.UTC, nil
	case "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return loc, nil
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// DayWindow returns [00:00, next 00:00) of t's day in loc.
func DayWindow(t time.Time, loc *time.Location) Window {
	start := StartOfDay(t, loc)
	return Window{Start: start, End: start.AddDate(0, 0, 1)}
}

// WeekWindow returns the calendar week (Monday first) containing t.
func WeekWindow(t time.Time, loc *time.Location) Window {
	day := StartOfDay(t, loc)
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	return Window{Start: start, End: start.AddDate(0, 0, 7)}
}

// MonthWindow returns the calendar month containing t.
func MonthWindow(t time.Time, loc *time.Location) Window {
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

// TrailingWindow returns the window starting at midnight `days` days before t
// and ending at the end of t's day.
func TrailingWindow(t time.Time, days int, loc *time.Location) Window {
	today := DayWindow(t, loc)
	return Window{Start: today.Start.AddDate(0, 0, -days), End: today.End}
}

// DailyWindows returns n consecutive day windows ending with t's day, oldest first.
func DailyWindows(t time.Time, n int, loc *time.Location) []Window {
	if n <= 0 {
		return nil
	}
	today := StartOfDay(t, loc)
	windows := make([]Window, 0, n)
	for i := n - 1; i >= 0; i-- {
		start := today.AddDate(0, 0, -i)
		windows = append(windows, Window{Start: start, End: start.AddDate(0, 0, 1)})
	}
	return windows
}

// FormatDay formats t's calendar day in loc as YYYY-MM-DD.
func FormatDay(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(constants.DateFormat)
}

// ParseDateInLocation parses a date string (YYYY-MM-DD) in the specified timezone.
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// ParseOptionalDate parses a YYYY-MM-DD string, treating empty or invalid input as no date.
func ParseOptionalDate(dateStr string, loc *time.Location) *time.Time {
	if dateStr == "" {
		return nil
	}
	t, err := ParseDateInLocation(dateStr, loc)
	if err != nil {
		return nil
	}
	return &t
}

// CombineDateAndTime combines a date string (YYYY-MM-DD) and time string (HH:MM)
// into a single time.Time in the specified timezone.
func CombineDateAndTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	date, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}

	timeOfDay, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format: %w", err)
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), 0, 0,
		loc,
	), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}
