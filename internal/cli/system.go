package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julianstephens/pomolit/internal/constants"
	"github.com/julianstephens/pomolit/internal/server"
	"github.com/julianstephens/pomolit/internal/storage/sqlite"
)

type InitCmd struct {
	Force bool `help:"Delete an existing SQLite database before initializing."`
}

func (c *InitCmd) Run(ctx *Context) error {
	bg := context.Background()
	store, err := ctx.Store()
	if err != nil {
		return err
	}

	if _, isFile := store.(*sqlite.Store); c.Force && isFile {
		path := store.GetConfigPath()
		if _, err := os.Stat(path); err == nil {
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			ctx.printf("Deleted existing database at: %s\n", path)
		}
	}

	if err := store.Init(bg); err != nil {
		return err
	}
	if _, err := ctx.App(bg); err != nil {
		return err
	}
	ctx.printf("Initialized %s storage at: %s\n", constants.AppName, store.GetConfigPath())
	return nil
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *Context) error {
	bg := context.Background()
	store, err := ctx.Load(bg)
	if err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if err := store.Init(bg); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	ctx.println(okStyle.Render("✓"), "Database schema is up to date.")
	return nil
}

type ServeCmd struct {
	Addr     string `help:"Listen address (overrides POMOLIT_ADDR)."`
	Evaluate string `help:"Evaluate achievements on this interval, e.g. 5m; 0 disables (overrides POMOLIT_EVALUATE_INTERVAL)."`
	Guard    bool   `help:"Make repeated session completion a no-op."`
}

func (c *ServeCmd) Run(ctx *Context) error {
	cfg := ctx.Config
	if c.Addr != "" {
		cfg.Addr = c.Addr
	}
	if c.Evaluate != "" {
		d, err := time.ParseDuration(c.Evaluate)
		if err != nil || d < 0 {
			return fmt.Errorf("invalid --evaluate interval %q", c.Evaluate)
		}
		cfg.EvaluateInterval = d
	}
	if c.Guard {
		cfg.GuardDoubleCompletion = true
	}
	ctx.Config = cfg

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := ctx.App(sigCtx)
	if err != nil {
		return err
	}
	return server.New(a, cfg).Run(sigCtx)
}
