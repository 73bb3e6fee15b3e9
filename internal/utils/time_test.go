package utils

import (
	"testing"
	"time"

	"github.com/julianstephens/pomolit/internal/constants"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestDayWindow(t *testing.T) {
	at := time.Date(2026, 1, 15, 23, 59, 59, 999_000_000, time.UTC)
	w := DayWindow(at, time.UTC)

	if !w.Start.Equal(mustDate(t, "2026-01-15")) {
		t.Errorf("Start = %v", w.Start)
	}
	if !w.End.Equal(mustDate(t, "2026-01-16")) {
		t.Errorf("End = %v", w.End)
	}
	if !w.Contains(at) {
		t.Error("window should contain 23:59:59.999 of the same day")
	}
	if w.Contains(w.End) {
		t.Error("window end is exclusive")
	}
	if !w.Contains(w.Start) {
		t.Error("window start is inclusive")
	}
}

func TestDayWindowRespectsLocation(t *testing.T) {
	tokyo, err := LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	// 2026-01-15 20:00 UTC is 2026-01-16 05:00 in Tokyo
	at := time.Date(2026, 1, 15, 20, 0, 0, 0, time.UTC)

	if got := FormatDay(DayWindow(at, tokyo).Start, tokyo); got != "2026-01-16" {
		t.Errorf("Tokyo day = %s, want 2026-01-16", got)
	}
	if got := FormatDay(DayWindow(at, time.UTC).Start, time.UTC); got != "2026-01-15" {
		t.Errorf("UTC day = %s, want 2026-01-15", got)
	}
}

func TestWeekWindow(t *testing.T) {
	tests := []struct {
		name string
		at   string
		want string
	}{
		{"monday", "2026-01-12", "2026-01-12"},
		{"wednesday", "2026-01-14", "2026-01-12"},
		{"sunday", "2026-01-18", "2026-01-12"},
		{"across month", "2026-03-01", "2026-02-23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := WeekWindow(mustDate(t, tt.at), time.UTC)
			if !w.Start.Equal(mustDate(t, tt.want)) {
				t.Errorf("Start = %s, want %s", w.Start.Format(constants.DateFormat), tt.want)
			}
			if w.End.Sub(w.Start) != 7*24*time.Hour {
				t.Errorf("week length = %v", w.End.Sub(w.Start))
			}
		})
	}
}

func TestMonthWindow(t *testing.T) {
	w := MonthWindow(time.Date(2026, 12, 31, 12, 0, 0, 0, time.UTC), time.UTC)
	if !w.Start.Equal(mustDate(t, "2026-12-01")) || !w.End.Equal(mustDate(t, "2027-01-01")) {
		t.Errorf("December window = [%v, %v)", w.Start, w.End)
	}

	feb := MonthWindow(mustDate(t, "2028-02-10"), time.UTC)
	if !feb.End.Equal(mustDate(t, "2028-03-01")) {
		t.Errorf("leap February end = %v", feb.End)
	}
}

func TestTrailingWindow(t *testing.T) {
	at := time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC)
	w := TrailingWindow(at, 7, time.UTC)

	if !w.Start.Equal(mustDate(t, "2026-01-24")) {
		t.Errorf("Start = %v, want 2026-01-24", w.Start)
	}
	if !w.End.Equal(mustDate(t, "2026-02-01")) {
		t.Errorf("End = %v, want 2026-02-01", w.End)
	}
}

func TestDailyWindows(t *testing.T) {
	at := time.Date(2026, 1, 3, 8, 0, 0, 0, time.UTC)
	windows := DailyWindows(at, 7, time.UTC)

	if len(windows) != 7 {
		t.Fatalf("len = %d, want 7", len(windows))
	}
	if got := FormatDay(windows[0].Start, time.UTC); got != "2025-12-28" {
		t.Errorf("first day = %s, want 2025-12-28", got)
	}
	if got := FormatDay(windows[6].Start, time.UTC); got != "2026-01-03" {
		t.Errorf("last day = %s, want 2026-01-03", got)
	}
	for i := 1; i < len(windows); i++ {
		if !windows[i].Start.Equal(windows[i-1].End) {
			t.Errorf("window %d does not follow window %d", i, i-1)
		}
	}

	if DailyWindows(at, 0, time.UTC) != nil {
		t.Error("expected nil for n = 0")
	}
}

func TestParseOptionalDate(t *testing.T) {
	if ParseOptionalDate("", time.UTC) != nil {
		t.Error("empty input should be no date")
	}
	if ParseOptionalDate("2026-13-40", time.UTC) != nil {
		t.Error("invalid input should be no date")
	}
	d := ParseOptionalDate("2026-05-04", time.UTC)
	if d == nil || !d.Equal(mustDate(t, "2026-05-04")) {
		t.Errorf("ParseOptionalDate() = %v", d)
	}
}

func TestCombineDateAndTime(t *testing.T) {
	got, err := CombineDateAndTime("2026-05-04", "09:45", time.UTC)
	if err != nil {
		t.Fatalf("CombineDateAndTime() error = %v", err)
	}
	want := time.Date(2026, 5, 4, 9, 45, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := CombineDateAndTime("2026-05-04", "", time.UTC); err == nil {
		t.Error("expected error for missing time")
	}
	if _, err := CombineDateAndTime("", "09:45", time.UTC); err == nil {
		t.Error("expected error for missing date")
	}
}

func TestLoadLocation(t *testing.T) {
	for _, name := range []string{"", "UTC"} {
		loc, err := LoadLocation(name)
		if err != nil || loc != time.UTC {
			t.Errorf("LoadLocation(%q) = %v, %v", name, loc, err)
		}
	}
	if loc, _ := LoadLocation("Local"); loc != time.Local {
		t.Error("LoadLocation(Local) should return time.Local")
	}
	if ValidateTimezone("Not/AZone") {
		t.Error("ValidateTimezone accepted an invalid zone")
	}
}

func TestTrimAndTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"  hello  ", 10, "hello"},
		{"hello world", 5, "hello"},
		{"ポモドーロマスター", 5, "ポモドーロ"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := TrimAndTruncate(tt.in, tt.max); got != tt.want {
			t.Errorf("TrimAndTruncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
