package core

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/seckatie/placesexport/internal/core/db"
)

// BookmarkRecord is one exported line: a bookmarked place with its
// timestamps normalized to calendar time.
type BookmarkRecord struct {
	URL         string
	Title       string
	Description string
	RevHost     string
	Frecency    sql.NullInt64
	LastVisited sql.NullTime
	DateAdded   sql.NullTime
}

// NewBookmarkRecord builds a record from a raw query row, interpreting its
// timestamps in loc. NULL text columns become empty strings.
func NewBookmarkRecord(row db.BookmarkRow, loc *time.Location) BookmarkRecord {
	return BookmarkRecord{
		URL:         row.URL,
		Title:       row.Title.String,
		Description: row.Description.String,
		RevHost:     row.RevHost.String,
		Frecency:    row.Frecency,
		LastVisited: NormalizeNullable(row.LastVisited, loc),
		DateAdded:   NormalizeNullable(row.DateAdded, loc),
	}
}

// Fields returns the record's values in Header order.
func (r BookmarkRecord) Fields() []string {
	frecency := ""
	if r.Frecency.Valid {
		frecency = strconv.FormatInt(r.Frecency.Int64, 10)
	}
	return []string{
		r.URL,
		r.Title,
		r.Description,
		r.RevHost,
		frecency,
		FormatTime(r.LastVisited),
		FormatTime(r.DateAdded),
	}
}
