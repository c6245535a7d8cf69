package sqlite

import "time"

// Times are stored as Unix seconds; 0 stands for the zero time.

// Unix converts t for storage.
func Unix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

// Time converts a stored value back to UTC.
func Time(sec int64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}
