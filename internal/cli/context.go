package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julianstephens/pomolit/internal/app"
	"github.com/julianstephens/pomolit/internal/config"
	"github.com/julianstephens/pomolit/internal/constants"
	"github.com/julianstephens/pomolit/internal/keyring"
	"github.com/julianstephens/pomolit/internal/logger"
	"github.com/julianstephens/pomolit/internal/storage"
	"github.com/julianstephens/pomolit/internal/storage/postgres"
	"github.com/julianstephens/pomolit/internal/storage/sqlite"
)

// KeyringDB is the --db value that reads the connection string from the OS keyring.
const KeyringDB = "keyring"

// Context is shared by every command. The store is resolved on first use so
// that commands which never touch the database (keyring management) work
// without one.
type Context struct {
	DB     string
	Config config.Config
	Out    io.Writer
	In     io.Reader
	Now    func() time.Time

	store storage.Provider
	app   *app.App
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) in() io.Reader {
	if c.In == nil {
		return os.Stdin
	}
	return c.In
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.out(), format, args...)
}

func (c *Context) println(args ...any) {
	fmt.Fprintln(c.out(), args...)
}

// Store resolves the storage backend without opening it.
func (c *Context) Store() (storage.Provider, error) {
	if c.store != nil {
		return c.store, nil
	}
	store, err := ResolveStore(c.DB, c.Config.DBConnection)
	if err != nil {
		return nil, err
	}
	c.store = store
	return store, nil
}

// Load opens an initialized store.
func (c *Context) Load(ctx context.Context) (storage.Provider, error) {
	store, err := c.Store()
	if err != nil {
		return nil, err
	}
	if err := store.Load(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// App loads the store and assembles the services once.
func (c *Context) App(ctx context.Context) (*app.App, error) {
	if c.app != nil {
		return c.app, nil
	}
	store, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}
	loc, err := c.Config.Location()
	if err != nil {
		return nil, err
	}
	a, err := app.New(ctx, store, app.Options{
		Location:              loc,
		GuardDoubleCompletion: c.Config.GuardDoubleCompletion,
		Now:                   c.Now,
	})
	if err != nil {
		return nil, err
	}
	c.app = a
	return a, nil
}

func (c *Context) Close() {
	if c.store == nil {
		return
	}
	if err := c.store.Close(); err != nil {
		logger.Warn("Failed to close store", "error", err)
	}
	c.store = nil
	c.app = nil
}

// ResolveStore picks the backend for a --db value:
//   - "keyring": Postgres with the connection string stored in the OS keyring
//   - a Postgres URL or keyword DSN: Postgres, which must not embed a password
//   - empty: envConn when set, otherwise the default SQLite file
//   - anything else: a SQLite file path
func ResolveStore(db, envConn string) (storage.Provider, error) {
	switch {
	case db == KeyringDB:
		connStr, err := keyring.Default().Get()
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, fmt.Errorf("no connection string in keyring, run '%s keyring set' first", constants.AppName)
		}
		if err != nil {
			return nil, err
		}
		return postgres.New(connStr), nil
	case keyring.IsPostgres(db):
		if _, err := postgres.ValidateConnString(db); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("%w: use --db keyring, %s or ~/.pgpass instead", err, constants.ConfigDBConnection)
			}
			return nil, err
		}
		return postgres.New(db), nil
	case db == "" && envConn != "":
		return postgres.New(envConn), nil
	case db == "":
		db = constants.DefaultConfigPath
	}
	return sqlite.NewStore(ExpandHome(db)), nil
}

// ConfigDir is where logs and pomolit.env live: next to the SQLite file, or
// the default config directory for Postgres.
func ConfigDir(db string) string {
	if db == "" || db == KeyringDB || keyring.IsPostgres(db) {
		return filepath.Dir(ExpandHome(constants.DefaultConfigPath))
	}
	return filepath.Dir(ExpandHome(db))
}

func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
