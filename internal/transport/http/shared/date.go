package shared

import (
	"fmt"
	"time"
)

// ParseDate accepts RFC3339 or YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}

// ParseYearMonth validates a year/month pair from request input.
func ParseYearMonth(year, month int) (int, time.Month, error) {
	if year < 1900 || year > 2200 {
		return 0, 0, fmt.Errorf("year %d out of range", year)
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month %d out of range", month)
	}
	return year, time.Month(month), nil
}
