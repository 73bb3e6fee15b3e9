package cli

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/julianstephens/pomolit/internal/keyring"
	"github.com/julianstephens/pomolit/internal/storage/postgres"
)

type KeyringSetCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store."`
}

func (c *KeyringSetCmd) Run(ctx *Context) error {
	if _, err := postgres.ValidateConnString(c.ConnectionString); err != nil && !errors.Is(err, postgres.ErrEmbeddedCredentials) {
		return fmt.Errorf("invalid connection string: %w", err)
	}
	if err := keyring.Default().Set(c.ConnectionString); err != nil {
		return err
	}
	ctx.println(okStyle.Render("✓"), "Connection string stored in the OS keyring:", maskPassword(c.ConnectionString))
	ctx.printf("  Use it with --db %s\n", KeyringDB)
	return nil
}

type KeyringDeleteCmd struct{}

func (c *KeyringDeleteCmd) Run(ctx *Context) error {
	if err := keyring.Default().Delete(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return err
	}
	ctx.println(okStyle.Render("✓"), "Connection string deleted from the OS keyring")
	return nil
}

type KeyringStatusCmd struct{}

func (c *KeyringStatusCmd) Run(ctx *Context) error {
	entry := keyring.Default()
	if !entry.Available() {
		return keyring.ErrUnavailable
	}
	ctx.println(okStyle.Render("✓"), "OS keyring is available")

	connStr, err := entry.Get()
	switch {
	case err == nil:
		ctx.println(okStyle.Render("✓"), "Stored connection string:", maskPassword(connStr))
	case errors.Is(err, keyring.ErrNotFound):
		ctx.println(mutedStyle.Render("No connection string stored"))
	default:
		return err
	}
	return nil
}

// maskPassword hides the password of a URL or keyword/value connection string.
func maskPassword(connStr string) string {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil || u.User == nil {
			return connStr
		}
		if _, ok := u.User.Password(); ok {
			u.User = url.UserPassword(u.User.Username(), "****")
		}
		return u.String()
	}

	fields := strings.Fields(connStr)
	for i, f := range fields {
		if strings.HasPrefix(f, "password=") {
			fields[i] = "password=****"
		}
	}
	return strings.Join(fields, " ")
}
