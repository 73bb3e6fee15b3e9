package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/pomolit/internal/cli"
	"github.com/julianstephens/pomolit/internal/config"
	"github.com/julianstephens/pomolit/internal/constants"
	"github.com/julianstephens/pomolit/internal/errors"
	"github.com/julianstephens/pomolit/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	DB      string `name:"db" help:"SQLite file path, PostgreSQL connection string, or 'keyring'. PostgreSQL strings must NOT embed a password. Defaults to POMOLIT_DB_CONNECTION or ~/.config/pomolit/pomolit.db."`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize pomolit storage."`
	Migrate cli.MigrateCmd `cmd:"" help:"Apply pending database migrations."`
	Serve   cli.ServeCmd   `cmd:"" help:"Run the HTTP API."`
	Session struct {
		Start    cli.SessionStartCmd    `cmd:"" help:"Start a pomodoro or break."`
		Complete cli.SessionCompleteCmd `cmd:"" help:"Complete a session."`
	} `cmd:"" help:"Manage pomodoro sessions."`
	Task struct {
		Add      cli.TaskAddCmd      `cmd:"" help:"Add a task."`
		Complete cli.TaskCompleteCmd `cmd:"" help:"Mark a task completed."`
		List     cli.TaskListCmd     `cmd:"" help:"List open tasks." default:"1"`
	} `cmd:"" help:"Manage tasks."`
	Habit struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List habits with streaks." default:"1"`
		Toggle cli.HabitToggleCmd `cmd:"" help:"Toggle today's completion."`
	} `cmd:"" help:"Track habits."`
	Achievements struct {
		List     cli.AchievementsListCmd     `cmd:"" help:"List achievements." default:"1"`
		Evaluate cli.AchievementsEvaluateCmd `cmd:"" help:"Unlock achievements whose goals are met."`
	} `cmd:"" help:"Show and evaluate achievements."`
	Stats struct {
		Today  cli.StatsTodayCmd  `cmd:"" help:"Today's dashboard." default:"1"`
		Week   cli.StatsWeekCmd   `cmd:"" help:"Daily series for the last days."`
		Report cli.StatsReportCmd `cmd:"" help:"Weekly and monthly rollups."`
	} `cmd:"" help:"Show statistics."`
	Settings struct {
		Show        cli.SettingsShowCmd        `cmd:"" help:"Show settings." default:"1"`
		Set         cli.SettingsSetCmd         `cmd:"" help:"Change timer lengths."`
		AcceptTerms cli.SettingsAcceptTermsCmd `cmd:"" help:"Accept the terms of use."`
	} `cmd:"" help:"Manage settings."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage SQLite backups."`
	Keyring struct {
		Set    cli.KeyringSetCmd    `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		Delete cli.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
		Status cli.KeyringStatusCmd `cmd:"" help:"Check keyring availability."`
	} `cmd:"" help:"Manage PostgreSQL credentials in the OS keyring."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Pomodoro timer, habit streaks and achievements"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configDir := cli.ConfigDir(CLI.DB)
	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: configDir,
		Console:   kctx.Command() == "serve",
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	cfg, err := config.Load(configDir)
	errors.Fatal(err)

	appCtx := &cli.Context{DB: CLI.DB, Config: cfg}
	err = kctx.Run(appCtx)
	appCtx.Close()
	errors.Fatal(err)
	logger.Close()
}
