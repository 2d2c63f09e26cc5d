package db

import "database/sql"

// BookmarkRow is one (place, bookmark) pair as read from the places database.
// Timestamps are raw microseconds since the Unix epoch.
type BookmarkRow struct {
	URL         string         `db:"url"`
	Title       sql.NullString `db:"title"`
	Description sql.NullString `db:"description"`
	RevHost     sql.NullString `db:"rev_host"`
	Frecency    sql.NullInt64  `db:"frecency"`
	LastVisited sql.NullInt64  `db:"last_visited"`
	DateAdded   sql.NullInt64  `db:"date_added"`
}
