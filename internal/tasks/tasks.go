// Package tasks covers the task operations the pomodoro core relies on:
// creating, reading, listing and marking tasks completed.
package tasks

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/pomolit/internal/constants"
	"github.com/julianstephens/pomolit/internal/errors"
	"github.com/julianstephens/pomolit/internal/logger"
	"github.com/julianstephens/pomolit/internal/models"
	"github.com/julianstephens/pomolit/internal/storage"
	"github.com/julianstephens/pomolit/internal/utils"
)

// Input is raw task data as submitted by a client. EstimatedPomodoros and
// DueDate are strings so that unparseable values can fall back quietly.
type Input struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	Priority           string `json:"priority"`
	EstimatedPomodoros string `json:"estimated_pomodoros"`
	DueDate            string `json:"due_date"`
}

type Service struct {
	store storage.Provider
	loc   *time.Location
	now   func() time.Time
}

func New(store storage.Provider, loc *time.Location, now func() time.Time) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, loc: loc, now: now}
}

// Create stores a new todo task. An unknown priority becomes medium, an
// estimate outside 1..20 or not a number becomes 1, and an invalid due date
// is dropped.
func (s *Service) Create(ctx context.Context, in Input) (models.Task, error) {
	title := utils.TrimAndTruncate(in.Title, constants.MaxTitleLength)
	if title == "" {
		return models.Task{}, errors.Validationf("task title is required")
	}

	priority := models.Priority(in.Priority)
	if priority.Rank() == 0 {
		priority = models.PriorityMedium
	}

	task := models.Task{
		ID:                 uuid.New().String(),
		Title:              title,
		Description:        utils.TrimAndTruncate(in.Description, constants.MaxDescriptionLength),
		Priority:           priority,
		Status:             models.TaskTodo,
		EstimatedPomodoros: parseEstimate(in.EstimatedPomodoros),
		DueDate:            utils.ParseOptionalDate(strings.TrimSpace(in.DueDate), s.loc),
		CreatedAt:          s.now().UTC(),
	}

	if err := s.store.AddTask(ctx, task); err != nil {
		return models.Task{}, err
	}

	logger.Debug("Task created", "id", task.ID, "priority", task.Priority)
	return task, nil
}

func parseEstimate(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return constants.DefaultEstimatedPomodoros
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < constants.MinEstimatedPomodoros || n > constants.MaxEstimatedPomodoros {
		return constants.DefaultEstimatedPomodoros
	}
	return n
}

func (s *Service) Get(ctx context.Context, id string) (models.Task, error) {
	return s.store.GetTask(ctx, id)
}

// Open lists todo and in-progress tasks, highest priority first.
func (s *Service) Open(ctx context.Context) ([]models.Task, error) {
	return s.store.ListTasks(ctx, storage.TaskFilter{
		Statuses: []models.TaskStatus{models.TaskTodo, models.TaskInProgress},
	})
}

// Complete marks a task completed. The first completion time is kept.
func (s *Service) Complete(ctx context.Context, id string) (models.Task, error) {
	var task models.Task
	err := s.store.WithTx(ctx, func(tx storage.Provider) error {
		if err := tx.CompleteTask(ctx, id, s.now()); err != nil {
			return err
		}
		var err error
		task, err = tx.GetTask(ctx, id)
		return err
	})
	if err != nil {
		return models.Task{}, err
	}

	logger.Debug("Task completed", "id", id)
	return task, nil
}
