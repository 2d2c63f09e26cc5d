package db

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
)

// ErrNotFound is returned when the places database file does not exist.
var ErrNotFound = errors.New("places database not found")

// OpenOptions controls how a places database is opened.
type OpenOptions struct {
	// Immutable tells SQLite the file cannot change while it is open, which
	// skips locking entirely. Use it when the browser is still running and
	// holds the database lock.
	Immutable bool
}

// DB is a read-only handle on a browser places database.
type DB struct {
	db   *sqlx.DB
	path string
}

// Open opens the places database at path in read-only mode.
func Open(path string, opts OpenOptions) (*DB, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat database: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	dsn := readOnlyDSN(path, opts)
	log.Debugf("Opening places database %s", dsn)

	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", path, err)
	}

	return &DB{db: db, path: path}, nil
}

// readOnlyDSN builds a SQLite URI filename for path. Case sensitive LIKE is
// enabled per connection so prefix filters match the literal text.
func readOnlyDSN(path string, opts OpenOptions) string {
	escaped := strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23").Replace(path)
	params := []string{"mode=ro", "_cslike=1"}
	if opts.Immutable {
		params = append(params, "immutable=1")
	}
	return "file:" + escaped + "?" + strings.Join(params, "&")
}

// Path returns the file the database was opened from.
func (db *DB) Path() string {
	return db.path
}

func (db *DB) Close() error {
	return db.db.Close()
}
