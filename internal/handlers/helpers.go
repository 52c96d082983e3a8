package handlers

import (
	"fmt"
	"time"
)

// parseDateQuery parses an optional YYYY-MM-DD query value. An empty value
// yields a nil time with no error.
func parseDateQuery(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date %q, expected YYYY-MM-DD", name, value)
	}
	return &t, nil
}
