// Package placestest builds small places databases on disk for tests.
package placestest

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// schema is the subset of the Firefox places schema the exporter touches,
// plus enough of the surrounding columns to look like the real thing.
const schema = `
CREATE TABLE moz_places (
	id INTEGER PRIMARY KEY,
	url LONGVARCHAR,
	title LONGVARCHAR,
	rev_host LONGVARCHAR,
	visit_count INTEGER DEFAULT 0,
	hidden INTEGER DEFAULT 0 NOT NULL,
	typed INTEGER DEFAULT 0 NOT NULL,
	frecency INTEGER DEFAULT -1 NOT NULL,
	last_visit_date INTEGER,
	guid TEXT,
	description TEXT
);

CREATE TABLE moz_bookmarks (
	id INTEGER PRIMARY KEY,
	type INTEGER,
	fk INTEGER DEFAULT NULL,
	parent INTEGER,
	position INTEGER,
	title LONGVARCHAR,
	dateAdded INTEGER,
	lastModified INTEGER,
	guid TEXT
);
`

// Place is a row in moz_places. A nil LastVisitDate or Description is
// stored as NULL.
type Place struct {
	ID            int64
	URL           string
	Title         string
	Description   *string
	RevHost       string
	VisitCount    int
	Frecency      int64
	LastVisitDate *int64
}

// Bookmark is a row in moz_bookmarks pointing at a place. An FK of 0 is
// stored as NULL, the way folders and separators are.
type Bookmark struct {
	FK        int64
	Title     string
	DateAdded any
}

// Create writes a places database containing places and bookmarks into a
// temporary directory and returns its path.
func Create(t *testing.T, places []Place, bookmarks []Bookmark) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places.sqlite")

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("failed to create places database: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Exec(schema); err != nil {
		t.Fatalf("failed to create places schema: %v", err)
	}

	for _, p := range places {
		_, err := conn.Exec(`
			INSERT INTO moz_places (id, url, title, description, rev_host, visit_count, frecency, last_visit_date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, p.ID, p.URL, p.Title, p.Description, p.RevHost, p.VisitCount, p.Frecency, p.LastVisitDate)
		if err != nil {
			t.Fatalf("failed to insert place %d: %v", p.ID, err)
		}
	}

	for i, b := range bookmarks {
		var fk any
		if b.FK != 0 {
			fk = b.FK
		}
		_, err := conn.Exec(`
			INSERT INTO moz_bookmarks (type, fk, parent, position, title, dateAdded, lastModified)
			VALUES (1, ?, 3, ?, ?, ?, ?)
		`, fk, i, b.Title, b.DateAdded, b.DateAdded)
		if err != nil {
			t.Fatalf("failed to insert bookmark %d: %v", i, err)
		}
	}

	return path
}

// Int64 returns a pointer to v.
func Int64(v int64) *int64 {
	return &v
}

// String returns a pointer to s.
func String(s string) *string {
	return &s
}
