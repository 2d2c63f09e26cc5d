package core

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// CSVWriter writes comma separated lines in which every field is quoted,
// embedded quotes are doubled and lines end in a bare "\n".
//
// encoding/csv only quotes fields that need it, which is why this exists.
type CSVWriter struct {
	w *bufio.Writer
}

// NewCSVWriter returns a CSVWriter that buffers output to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: bufio.NewWriter(w)}
}

var quoteEscaper = strings.NewReplacer(`"`, `""`)

// Write writes a single line.
func (c *CSVWriter) Write(fields []string) error {
	for i, field := range fields {
		if i > 0 {
			if err := c.w.WriteByte(','); err != nil {
				return err
			}
		}
		if err := c.w.WriteByte('"'); err != nil {
			return err
		}
		if _, err := quoteEscaper.WriteString(c.w, field); err != nil {
			return err
		}
		if err := c.w.WriteByte('"'); err != nil {
			return err
		}
	}
	return c.w.WriteByte('\n')
}

// Flush writes any buffered data to the underlying writer.
func (c *CSVWriter) Flush() error {
	return c.w.Flush()
}

// WriteRecords writes the header followed by one line per record. The
// header is written even when records is empty.
func WriteRecords(w io.Writer, records []BookmarkRecord) error {
	cw := NewCSVWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write(r.Fields()); err != nil {
			return fmt.Errorf("failed to write record %s: %w", r.URL, err)
		}
	}
	if err := cw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
