package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/seckatie/placesexport/internal/core/db"
	log "github.com/sirupsen/logrus"
)

// BookmarkSource yields the raw bookmark rows to export. *db.DB satisfies it.
type BookmarkSource interface {
	ListBookmarks(ctx context.Context) ([]db.BookmarkRow, error)
}

// ExportOptions controls how rows are turned into output lines.
type ExportOptions struct {
	// Location is the time zone timestamps are rendered in.
	// If nil, the machine's local zone is used.
	Location *time.Location
}

// ExportResult reports the outcome of a successful export.
type ExportResult struct {
	// Records is the number of data lines written, excluding the header.
	Records int
	// Output is the file written to, empty when exporting to a writer.
	Output string
}

// LoadRecords runs the bookmark query and converts every row into a record.
func LoadRecords(ctx context.Context, src BookmarkSource, opts ExportOptions) ([]BookmarkRecord, error) {
	rows, err := src.ListBookmarks(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]BookmarkRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, NewBookmarkRecord(row, opts.Location))
	}
	return records, nil
}

// Export writes the bookmarks from src to w. Nothing is written if the
// query fails.
func Export(ctx context.Context, src BookmarkSource, w io.Writer, opts ExportOptions) (ExportResult, error) {
	records, err := LoadRecords(ctx, src, opts)
	if err != nil {
		return ExportResult{}, err
	}
	if err := WriteRecords(w, records); err != nil {
		return ExportResult{}, err
	}
	return ExportResult{Records: len(records)}, nil
}

// ExportFile writes the bookmarks from src to the file at path, replacing
// any previous content. The file is only created once the query has
// succeeded, so a failed query leaves an existing file untouched.
func ExportFile(ctx context.Context, src BookmarkSource, path string, opts ExportOptions) (ExportResult, error) {
	records, err := LoadRecords(ctx, src, opts)
	if err != nil {
		return ExportResult{}, err
	}

	f, err := os.Create(path)
	if err != nil {
		return ExportResult{}, fmt.Errorf("failed to create output file: %w", err)
	}
	if err := WriteRecords(f, records); err != nil {
		if cerr := f.Close(); cerr != nil {
			log.Printf("failed to close %s: %v", path, cerr)
		}
		return ExportResult{}, err
	}
	if err := f.Close(); err != nil {
		return ExportResult{}, fmt.Errorf("failed to close output file: %w", err)
	}

	return ExportResult{Records: len(records), Output: path}, nil
}
