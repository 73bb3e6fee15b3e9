package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/pomolit/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
// Durations that fail to parse are left at zero so ApplyDefaultSettings can fill them.
func MapToSettings(data map[string]string) Settings {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingWorkDuration:
			settings.WorkDuration = parseMinutes(value)
		case constants.SettingBreakDuration:
			settings.BreakDuration = parseMinutes(value)
		case constants.SettingLongBreakDuration:
			settings.LongBreakDuration = parseMinutes(value)
		case constants.SettingTermsAccepted:
			settings.TermsAccepted = value == "true"
		case constants.SettingTermsAcceptedAt:
			if t, err := time.Parse(time.RFC3339, value); err == nil {
				settings.TermsAcceptedAt = &t
			}
		}
	}
	return settings
}

func parseMinutes(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	acceptedAt := ""
	if settings.TermsAcceptedAt != nil {
		acceptedAt = settings.TermsAcceptedAt.UTC().Format(time.RFC3339)
	}
	return map[string]string{
		constants.SettingWorkDuration:      fmt.Sprintf("%d", settings.WorkDuration),
		constants.SettingBreakDuration:     fmt.Sprintf("%d", settings.BreakDuration),
		constants.SettingLongBreakDuration: fmt.Sprintf("%d", settings.LongBreakDuration),
		constants.SettingTermsAccepted:     fmt.Sprintf("%v", settings.TermsAccepted),
		constants.SettingTermsAcceptedAt:   acceptedAt,
	}
}

// DefaultSettings returns the settings a fresh database starts with.
func DefaultSettings() Settings {
	return Settings{
		WorkDuration:      constants.DefaultWorkDuration,
		BreakDuration:     constants.DefaultBreakDuration,
		LongBreakDuration: constants.DefaultLongBreakDuration,
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.WorkDuration == 0 {
		settings.WorkDuration = constants.DefaultWorkDuration
	}
	if settings.BreakDuration == 0 {
		settings.BreakDuration = constants.DefaultBreakDuration
	}
	if settings.LongBreakDuration == 0 {
		settings.LongBreakDuration = constants.DefaultLongBreakDuration
	}
}
