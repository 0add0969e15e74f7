package sqlite

import (
	"time"
)

// DateLayout is the calendar date format used for entry_date columns
const DateLayout = "2006-01-02"

// FormatDateForDB formats a calendar date as YYYY-MM-DD for database storage
func FormatDateForDB(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDatePtrForDB formats a *time.Time date, returning nil if the pointer is nil
func FormatDatePtrForDB(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return FormatDateForDB(*t)
}

// ParseDateFromDB parses a YYYY-MM-DD date string from the database
func ParseDateFromDB(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatTimestampForDB formats an audit timestamp as RFC3339 for database storage
func FormatTimestampForDB(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseTimestampFromDB parses an RFC3339 timestamp string from the database
func ParseTimestampFromDB(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
