package server

import (
	goerrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/julianstephens/pomolit/internal/constants"
	"github.com/julianstephens/pomolit/internal/errors"
	"github.com/julianstephens/pomolit/internal/habits"
	"github.com/julianstephens/pomolit/internal/logger"
	"github.com/julianstephens/pomolit/internal/models"
	"github.com/julianstephens/pomolit/internal/reminder"
	"github.com/julianstephens/pomolit/internal/settings"
	"github.com/julianstephens/pomolit/internal/tasks"
	"github.com/julianstephens/pomolit/internal/utils"
)

func respondError(c *gin.Context, err error) {
	switch {
	case errors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.IsValidation(err):
		msg := strings.TrimSuffix(err.Error(), ": "+errors.ErrValidation.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
	default:
		requestID, _ := c.Get(requestIDKey)
		logger.Error("Request failed", "request_id", requestID, "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindOptionalJSON decodes the body when there is one.
func bindOptionalJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil && !goerrors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// Terms

func (s *Server) getTerms(c *gin.Context) {
	if err := s.app.Settings.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	cur := s.app.Settings.Current()
	c.JSON(http.StatusOK, gin.H{"accepted": cur.TermsAccepted, "accepted_at": cur.TermsAcceptedAt})
}

func (s *Server) acceptTerms(c *gin.Context) {
	if err := s.app.Settings.AcceptTerms(c.Request.Context(), s.app.Now()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Settings

func durationsOf(st models.Settings) settings.Durations {
	return settings.Durations{Work: st.WorkDuration, Break: st.BreakDuration, LongBreak: st.LongBreakDuration}
}

// settingsRequest accepts each duration as a number or a string. Values that
// are not whole minutes fall back to the default.
type settingsRequest struct {
	Work      any `json:"work_duration"`
	Break     any `json:"break_duration"`
	LongBreak any `json:"long_break_duration"`
}

func (r settingsRequest) durations() settings.Durations {
	return settings.Durations{
		Work:      minutes(r.Work, constants.DefaultWorkDuration),
		Break:     minutes(r.Break, constants.DefaultBreakDuration),
		LongBreak: minutes(r.LongBreak, constants.DefaultLongBreakDuration),
	}
}

func minutes(v any, fallback int) int {
	if v == nil {
		return fallback
	}
	return settings.ParseDuration(fmt.Sprint(v), fallback)
}

// getSettings re-reads the stored row so changes made by the CLI while the
// server runs are picked up.
func (s *Server) getSettings(c *gin.Context) {
	if err := s.app.Settings.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, durationsOf(s.app.Settings.Current()))
}

func (s *Server) updateSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := s.app.Settings.Update(c.Request.Context(), req.durations())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, durationsOf(updated))
}

// Pomodoro

type startRequest struct {
	SessionType models.SessionType `json:"session_type"`
	TaskID      *string            `json:"task_id"`
}

func (s *Server) startSession(c *gin.Context) {
	var req startRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	sess, err := s.app.Pomodoro.Start(c.Request.Context(), req.SessionType, req.TaskID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "session_id": sess.ID, "duration": sess.Duration})
}

func (s *Server) completeSession(c *gin.Context) {
	if _, err := s.app.Pomodoro.Complete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) getSession(c *gin.Context) {
	sess, err := s.app.Pomodoro.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// listSessions returns the sessions started on ?date=YYYY-MM-DD, today by default.
func (s *Server) listSessions(c *gin.Context) {
	day := s.app.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := utils.ParseDateInLocation(raw, s.app.Location())
		if err != nil {
			respondError(c, errors.Validationf("invalid date %q", raw))
			return
		}
		day = parsed
	}
	list, err := s.app.Pomodoro.List(c.Request.Context(), utils.DayWindow(day, s.app.Location()))
	if err != nil {
		respondError(c, err)
		return
	}
	if list == nil {
		list = []models.Session{}
	}
	c.JSON(http.StatusOK, gin.H{"date": utils.FormatDay(day, s.app.Location()), "sessions": list})
}

// Tasks

// taskRequest accepts the estimate as a number or a string.
type taskRequest struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	Priority           string `json:"priority"`
	EstimatedPomodoros any    `json:"estimated_pomodoros"`
	DueDate            string `json:"due_date"`
}

func (r taskRequest) input() tasks.Input {
	in := tasks.Input{Title: r.Title, Description: r.Description, Priority: r.Priority, DueDate: r.DueDate}
	if r.EstimatedPomodoros != nil {
		in.EstimatedPomodoros = fmt.Sprint(r.EstimatedPomodoros)
	}
	return in
}

func (s *Server) createTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	task, err := s.app.Tasks.Create(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (s *Server) getTask(c *gin.Context) {
	task, err := s.app.Tasks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) completeTask(c *gin.Context) {
	task, err := s.app.Tasks.Complete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// Habits

func (s *Server) listHabits(c *gin.Context) {
	list, err := s.app.Habits.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) createHabit(c *gin.Context) {
	var req habits.Input
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	habit, err := s.app.Habits.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, habit)
}

func (s *Server) toggleHabit(c *gin.Context) {
	logged, err := s.app.Habits.Toggle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "completed": logged})
}

func (s *Server) habitStreak(c *gin.Context) {
	st, err := s.app.Habits.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"streak": st.Streak, "completed_today": st.CompletedToday})
}

// Achievements

func (s *Server) listAchievements(c *gin.Context) {
	list, err := s.app.Achievements.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) evaluateAchievements(c *gin.Context) {
	unlocked, err := s.app.Achievements.Evaluate(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if unlocked == nil {
		unlocked = []models.Achievement{}
	}
	c.JSON(http.StatusOK, gin.H{"unlocked": unlocked})
}

// Aggregates

func (s *Server) dashboard(c *gin.Context) {
	snap, err := s.app.Reports.Today(c.Request.Context(), s.app.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) statistics(c *gin.Context) {
	stats, err := s.app.Reports.Daily(c.Request.Context(), s.app.Now(), 0)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// reports returns trailing 7/30 day rollups, or the current calendar week
// and month with ?calendar=true.
func (s *Server) reports(c *gin.Context) {
	rollups := s.app.Reports.Rollups
	if c.Query("calendar") == "true" {
		rollups = s.app.Reports.CalendarRollups
	}
	rep, err := rollups(c.Request.Context(), s.app.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rep)
}

// Calendar

func (s *Server) createEvent(c *gin.Context) {
	var req reminder.EventInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ev, err := s.app.Reminders.AddEvent(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ev)
}

func (s *Server) getEvent(c *gin.Context) {
	ev, err := s.app.Reminders.Event(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

func (s *Server) dueReminders(c *gin.Context) {
	due, err := s.app.Reminders.Due(c.Request.Context(), s.app.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reminders": due})
}
