package model

import "time"

// Timestamps are stored as ISO-8601 strings and parsed to time.Time on
// read. An unparseable value normalizes to the zero time rather than
// failing the whole record.

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func ParseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
