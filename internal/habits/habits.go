// Package habits manages habit definitions and their daily completion toggles.
package habits

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/pomolit/internal/constants"
	"github.com/julianstephens/pomolit/internal/errors"
	"github.com/julianstephens/pomolit/internal/logger"
	"github.com/julianstephens/pomolit/internal/models"
	"github.com/julianstephens/pomolit/internal/storage"
	"github.com/julianstephens/pomolit/internal/streak"
	"github.com/julianstephens/pomolit/internal/utils"
)

const DefaultColor = "primary"

var colors = map[string]bool{
	"primary": true,
	"success": true,
	"danger":  true,
	"warning": true,
	"info":    true,
}

type Input struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Frequency   string `json:"frequency"`
	Color       string `json:"color"`
}

type Service struct {
	store   storage.Provider
	streaks *streak.Calculator
	loc     *time.Location
	now     func() time.Time
}

func New(store storage.Provider, loc *time.Location, now func() time.Time) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Service{
		store:   store,
		streaks: streak.New(store, loc),
		loc:     loc,
		now:     now,
	}
}

// Create validates and stores a new habit. Unknown frequencies fall back to
// daily and unknown colors to the default.
func (s *Service) Create(ctx context.Context, in Input) (models.Habit, error) {
	name := utils.TrimAndTruncate(in.Name, constants.MaxHabitNameLength)
	if name == "" {
		return models.Habit{}, errors.Validationf("habit name is required")
	}

	frequency := models.HabitFrequency(in.Frequency)
	switch frequency {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyCustom:
	default:
		frequency = models.FrequencyDaily
	}

	color := in.Color
	if !colors[color] {
		color = DefaultColor
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        name,
		Description: utils.TrimAndTruncate(in.Description, constants.MaxHabitDescLength),
		Frequency:   frequency,
		Color:       color,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.store.AddHabit(ctx, habit); err != nil {
		return models.Habit{}, err
	}

	logger.Debug("Habit created", "id", habit.ID, "name", habit.Name)
	return habit, nil
}

// List returns every habit with its current streak and today's state.
func (s *Service) List(ctx context.Context) ([]models.HabitStatus, error) {
	habits, err := s.store.ListHabits(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	statuses := make([]models.HabitStatus, 0, len(habits))
	for _, h := range habits {
		st, err := s.streaks.Status(ctx, h, now)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}

// Status returns one habit's streak and today's state.
func (s *Service) Status(ctx context.Context, habitID string) (models.HabitStatus, error) {
	habit, err := s.store.GetHabit(ctx, habitID)
	if err != nil {
		return models.HabitStatus{}, err
	}
	return s.streaks.Status(ctx, habit, s.now())
}

// Toggle flips today's log for the habit.
func (s *Service) Toggle(ctx context.Context, habitID string) (bool, error) {
	return s.ToggleDay(ctx, habitID, s.now())
}

// ToggleDay deletes the habit's log for day when present and creates a
// completed one otherwise. It reports whether a log exists afterwards.
func (s *Service) ToggleDay(ctx context.Context, habitID string, day time.Time) (bool, error) {
	dayStr := utils.FormatDay(day, s.loc)
	var logged bool

	err := s.store.WithTx(ctx, func(tx storage.Provider) error {
		if _, err := tx.GetHabit(ctx, habitID); err != nil {
			return err
		}

		existing, err := tx.GetHabitLog(ctx, habitID, dayStr)
		if err == nil {
			logged = false
			return tx.DeleteHabitLog(ctx, existing.ID)
		}
		if !errors.IsNotFound(err) {
			return err
		}

		logged = true
		return tx.AddHabitLog(ctx, models.HabitLog{
			ID:        uuid.New().String(),
			HabitID:   habitID,
			Day:       dayStr,
			Completed: true,
			CreatedAt: s.now().UTC(),
		})
	})
	if err != nil {
		return false, err
	}

	logger.Debug("Habit toggled", "habit", habitID, "day", dayStr, "logged", logged)
	return logged, nil
}
