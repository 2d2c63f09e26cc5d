package core

import (
	"database/sql"
	"time"
)

// NormalizeMicros converts microseconds since the Unix epoch into a time in
// loc, dropping the sub-second part. Truncation is toward the past, so
// -1µs becomes one second before the epoch rather than the epoch itself.
// A nil loc means time.Local.
func NormalizeMicros(us int64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMicro(us).Truncate(time.Second).In(loc)
}

// NormalizeNullable is NormalizeMicros for a nullable column. A NULL value
// stays NULL; zero is the epoch like any other instant.
func NormalizeNullable(v sql.NullInt64, loc *time.Location) sql.NullTime {
	if !v.Valid {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: NormalizeMicros(v.Int64, loc), Valid: true}
}

// FormatTime renders a normalized timestamp for the output file. NULL
// renders as an empty field.
func FormatTime(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.Format(TimeLayout)
}
