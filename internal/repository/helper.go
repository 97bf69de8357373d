package repository

import (
	"fmt"
	"time"
)

// ParseTime parses the two formats stored by this layer: bare dates
// ("2006-01-02") for transaction dates and RFC3339 for timestamps.
// Results are normalized to UTC.
func ParseTime(str string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", str)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
		}
	}
	return parsed.UTC(), nil
}
