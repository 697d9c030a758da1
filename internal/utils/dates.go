package utils

import (
	"fmt"
	"time"

	"github.com/harukimori/study-log-api/internal/constants"
)

// acceptedDateLayouts are the input forms the API takes for a log date.
// Anything with a time component is truncated to its calendar day.
var acceptedDateLayouts = []string{
	constants.DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// NormalizeDate parses a calendar date and returns it in YYYY-MM-DD form
func NormalizeDate(value string) (string, error) {
	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(constants.DateLayout), nil
		}
	}
	return "", fmt.Errorf("unparseable date %q", value)
}
