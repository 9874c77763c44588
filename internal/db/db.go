package db

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// DB wraps the database connection
type DB struct {
	*sqlx.DB
}

// Open opens (creating if needed) the database at path and initializes the
// schema. Foreign keys are enforced at the connection level so the weak
// references and cascade rules in the schema hold for every writer.
func Open(path string) (*DB, error) {
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?_foreign_keys=on"
	} else {
		dsn += "&_foreign_keys=on"
	}

	conn, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &DB{conn}, nil
}

// DefaultPath returns the default database location under the XDG data
// directory, falling back to ~/.local/share.
func DefaultPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".local", "share")
	}

	appDir := filepath.Join(dataDir, "taskdeck")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, "taskdeck.db"), nil
}

// now returns the current time in UTC. Timestamps are stored in UTC so
// string-encoded DATETIME values compare consistently.
func now() time.Time {
	return time.Now().UTC()
}

// toUTC normalizes an optional caller-supplied timestamp before it is bound
// into a query.
func toUTC(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// optional trims an optional string field and coerces empty to null. One rule
// for every optional string column: color, description, notes.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
