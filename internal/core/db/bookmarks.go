package db

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// QueryError reports a failure running the bookmark query against a
// places database: a locked or corrupt file, a schema mismatch, or a
// column value that cannot be read as the expected type.
type QueryError struct {
	Path string
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("failed to query bookmarks in %s: %v", e.Path, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

const listBookmarksQuery = `
	SELECT MP.url             AS url,
	       MP.title           AS title,
	       MP.description     AS description,
	       MP.rev_host        AS rev_host,
	       MP.frecency        AS frecency,
	       MP.last_visit_date AS last_visited,
	       MB.dateAdded       AS date_added
	FROM moz_places MP
	JOIN moz_bookmarks MB ON MB.fk = MP.id
	WHERE MP.visit_count > 0
	  AND MP.url LIKE 'http%'
	ORDER BY MB.dateAdded DESC
`

// ListBookmarks returns every bookmarked place that has been visited at
// least once and whose URL starts with "http", most recently bookmarked
// first. A place bookmarked more than once yields one row per bookmark.
func (db *DB) ListBookmarks(ctx context.Context) ([]BookmarkRow, error) {
	var out []BookmarkRow
	if err := db.db.SelectContext(ctx, &out, listBookmarksQuery); err != nil {
		return nil, &QueryError{Path: db.path, Err: err}
	}
	log.Debugf("Read %d bookmark row(s) from %s", len(out), db.path)
	return out, nil
}
