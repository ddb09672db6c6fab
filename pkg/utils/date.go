package utils

import "time"

// ParseDateInLocation interpreta dateStr como meia-noite no fuso loc
func ParseDateInLocation(dateStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(time.DateOnly, dateStr, loc)
}

// TruncateToDay descarta hora, minuto e segundo mantendo o fuso de t
func TruncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
