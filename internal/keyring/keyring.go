// Package keyring keeps the Postgres connection string in the OS keyring so
// that passwords never appear in flags, config files or shell history.
package keyring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/pomolit/internal/constants"
)

var (
	// ErrNotFound is returned when nothing is stored under the entry
	ErrNotFound = errors.New("credentials not found in keyring")
	// ErrUnavailable is returned when the OS keyring cannot be reached
	ErrUnavailable = errors.New("OS keyring is not available")
	// ErrNotPostgres is returned when a value does not look like a Postgres connection string
	ErrNotPostgres = errors.New("not a postgres connection string")
)

// Entry is one service/user slot in the OS keyring.
type Entry struct {
	Service string
	User    string
}

// Default is the slot the CLI reads when --db is "keyring".
func Default() Entry {
	return Entry{Service: constants.AppName, User: constants.DefaultKeyringUser}
}

func (e Entry) Get() (string, error) {
	v, err := keyring.Get(e.Service, e.User)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return v, nil
}

// Set stores connStr after checking that it is a Postgres URL or keyword DSN.
func (e Entry) Set(connStr string) error {
	connStr = strings.TrimSpace(connStr)
	if connStr == "" {
		return errors.New("connection string cannot be empty")
	}
	if !IsPostgres(connStr) {
		return ErrNotPostgres
	}
	if err := keyring.Set(e.Service, e.User, connStr); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

func (e Entry) Delete() error {
	err := keyring.Delete(e.Service, e.User)
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// Available probes the keyring with a read. A not-found answer still means
// the backend is reachable.
func (e Entry) Available() bool {
	_, err := keyring.Get(e.Service, "availability-probe")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

// IsPostgres reports whether s is a postgres:// URL or a keyword/value DSN
// naming a host or dbname.
func IsPostgres(s string) bool {
	if strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://") {
		return true
	}
	return strings.Contains(s, "host=") || strings.Contains(s, "dbname=")
}
