package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/pomolit/internal/backup"
	"github.com/julianstephens/pomolit/internal/constants"
	"github.com/julianstephens/pomolit/internal/storage/sqlite"
)

// backupManager returns a manager for the SQLite file. Postgres deployments
// are backed up with pg_dump instead.
func backupManager(ctx *Context) (*backup.Manager, error) {
	store, err := ctx.Store()
	if err != nil {
		return nil, err
	}
	if _, ok := store.(*sqlite.Store); !ok {
		return nil, fmt.Errorf("backups are only supported for SQLite storage, use pg_dump for PostgreSQL")
	}
	return backup.NewManager(store.GetConfigPath()), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	path, err := mgr.Create(context.Background())
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}
	ctx.println(okStyle.Render("✓"), "Backup created:", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		ctx.println("No backups found.")
		ctx.printf("Backups are stored in: %s\n", mgr.Dir())
		return nil
	}

	ctx.println(titleStyle.Render(fmt.Sprintf("Backups (%d, keeping %d)", len(backups), constants.MaxBackups)))
	for _, b := range backups {
		ctx.printf("  %s  %s  %s\n", b.Timestamp.Format("2006-01-02 15:04:05"), filepath.Base(b.Path),
			mutedStyle.Render(fmt.Sprintf("%.1f KB", float64(b.Size)/1024.0)))
	}
	ctx.printf("\nBackup directory: %s\n", mgr.Dir())
	return nil
}

type BackupRestoreCmd struct {
	File string `arg:"" help:"Path or file name of the backup to restore."`
	Yes  bool   `short:"y" help:"Do not ask for confirmation."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr, err := backupManager(ctx)
	if err != nil {
		return err
	}

	path := c.File
	if !filepath.IsAbs(path) {
		if candidate := filepath.Join(mgr.Dir(), path); fileExists(candidate) {
			path = candidate
		}
	}
	if !fileExists(path) {
		return fmt.Errorf("backup file not found: %s", path)
	}

	if !c.Yes {
		ctx.println(warnStyle.Render("This will replace the current database with the backup."))
		ctx.println("A backup of the current database is taken first.")
		ctx.printf("\nRestore from: %s\nContinue? [y/N]: ", filepath.Base(path))

		answer, err := bufio.NewReader(ctx.in()).ReadString('\n')
		if err != nil && answer == "" {
			return err
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			ctx.println("Restore cancelled.")
			return nil
		}
	}

	// The database file is swapped underneath any open handle.
	ctx.Close()

	safety, err := mgr.Restore(context.Background(), path)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	if safety != "" {
		ctx.printf("Saved the previous database as %s\n", filepath.Base(safety))
	}
	ctx.println(okStyle.Render("✓"), "Database restored. Restart any running server to pick it up.")
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
