package models

import (
	"testing"
	"time"

	"github.com/julianstephens/pomolit/internal/constants"
)

func TestDurationFor(t *testing.T) {
	s := Settings{WorkDuration: 30, BreakDuration: 7, LongBreakDuration: 20}

	tests := []struct {
		sessionType SessionType
		want        int
	}{
		{SessionWork, 30},
		{SessionBreak, 7},
		{SessionLongBreak, 20},
		{SessionType("nap"), 7},
		{SessionType(""), 7},
	}

	for _, tt := range tests {
		t.Run(string(tt.sessionType), func(t *testing.T) {
			if got := s.DurationFor(tt.sessionType); got != tt.want {
				t.Errorf("DurationFor(%q) = %d, want %d", tt.sessionType, got, tt.want)
			}
		})
	}
}

func TestMapToSettings(t *testing.T) {
	accepted := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	data := SettingsToMap(Settings{
		WorkDuration:      50,
		BreakDuration:     10,
		LongBreakDuration: 30,
		TermsAccepted:     true,
		TermsAcceptedAt:   &accepted,
	})

	settings := MapToSettings(data)
	if settings.WorkDuration != 50 || settings.BreakDuration != 10 || settings.LongBreakDuration != 30 {
		t.Errorf("unexpected durations: %+v", settings)
	}
	if !settings.TermsAccepted || settings.TermsAcceptedAt == nil || !settings.TermsAcceptedAt.Equal(accepted) {
		t.Errorf("terms not restored: %+v", settings)
	}

	garbled := MapToSettings(map[string]string{
		constants.SettingWorkDuration:    "abc",
		constants.SettingTermsAcceptedAt: "yesterday",
	})
	ApplyDefaultSettings(&garbled)
	if garbled.WorkDuration != constants.DefaultWorkDuration {
		t.Errorf("WorkDuration = %d, want default %d", garbled.WorkDuration, constants.DefaultWorkDuration)
	}
	if garbled.TermsAcceptedAt != nil {
		t.Error("unparseable acceptance time should be dropped")
	}
}

func TestApplyDefaultSettings(t *testing.T) {
	s := Settings{WorkDuration: 40}
	ApplyDefaultSettings(&s)

	if s.WorkDuration != 40 {
		t.Errorf("WorkDuration overwritten: %d", s.WorkDuration)
	}
	if s.BreakDuration != constants.DefaultBreakDuration {
		t.Errorf("BreakDuration = %d, want %d", s.BreakDuration, constants.DefaultBreakDuration)
	}
	if s.LongBreakDuration != constants.DefaultLongBreakDuration {
		t.Errorf("LongBreakDuration = %d, want %d", s.LongBreakDuration, constants.DefaultLongBreakDuration)
	}
}

func TestCountsTowardTask(t *testing.T) {
	taskID := "task-1"
	tests := []struct {
		name    string
		session Session
		want    bool
	}{
		{"work with task", Session{Type: SessionWork, TaskID: &taskID}, true},
		{"work without task", Session{Type: SessionWork}, false},
		{"break with task", Session{Type: SessionBreak, TaskID: &taskID}, false},
		{"long break with task", Session{Type: SessionLongBreak, TaskID: &taskID}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.CountsTowardTask(); got != tt.want {
				t.Errorf("CountsTowardTask() = %v, want %v", got, tt.want)
			}
		})
	}
}
