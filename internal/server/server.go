// Package server exposes the pomolit services as a JSON API over gin.
package server

import (
	"context"
	goerrors "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/julianstephens/pomolit/internal/app"
	"github.com/julianstephens/pomolit/internal/config"
	"github.com/julianstephens/pomolit/internal/constants"
	"github.com/julianstephens/pomolit/internal/logger"
)

type Server struct {
	app    *app.App
	cfg    config.Config
	engine *gin.Engine
}

func New(a *app.App, cfg config.Config) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{app: a, cfg: cfg, engine: gin.New()}
	s.engine.Use(gin.RecoveryWithWriter(logger.Writer()), requestLogger(), securityHeaders())
	if origins := cfg.Origins(); len(origins) > 0 {
		s.engine.Use(corsMiddleware(origins))
	}
	s.routes()
	return s
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() {
	r := s.engine
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.GET("/terms", s.getTerms)
	api.POST("/terms/accept", s.acceptTerms)

	gated := api.Group("")
	gated.Use(termsGate(s.app.Settings))
	{
		gated.GET("/settings", s.getSettings)
		gated.PUT("/settings", s.updateSettings)

		gated.POST("/pomodoro/start", s.startSession)
		gated.POST("/pomodoro/complete/:id", s.completeSession)
		gated.GET("/sessions", s.listSessions)
		gated.GET("/sessions/:id", s.getSession)

		gated.POST("/tasks", s.createTask)
		gated.GET("/tasks/:id", s.getTask)
		gated.POST("/tasks/:id/complete", s.completeTask)

		gated.GET("/habits", s.listHabits)
		gated.POST("/habits", s.createHabit)
		gated.POST("/habits/:id/toggle", s.toggleHabit)
		gated.GET("/habits/:id/streak", s.habitStreak)

		gated.GET("/achievements", s.listAchievements)
		gated.POST("/achievements/evaluate", s.evaluateAchievements)

		gated.GET("/dashboard", s.dashboard)
		gated.GET("/statistics", s.statistics)
		gated.GET("/reports", s.reports)

		gated.POST("/events", s.createEvent)
		gated.GET("/events/:id", s.getEvent)
		gated.GET("/reminders/due", s.dueReminders)
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully. When an
// evaluation interval is configured, achievements are evaluated on a ticker
// for the lifetime of the server.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.cfg.EvaluateInterval > 0 {
		go s.evaluateLoop(ctx, s.cfg.EvaluateInterval)
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening", "addr", s.cfg.Addr, "environment", s.cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !goerrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}

func (s *Server) evaluateLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.app.Achievements.Evaluate(ctx); err != nil && ctx.Err() == nil {
				logger.Error("Periodic achievement evaluation failed", "error", err)
			}
		}
	}
}
