package common

import (
	"time"
)

// DateLayout is the layout used for calendar dates in requests and responses.
const DateLayout = "2006-01-02"

// timeOfDayLayouts lists the accepted layouts for a time of day, most common first.
var timeOfDayLayouts = []string{"15:04", "15:04:05"}

// ParseDate parses a calendar date in YYYY-MM-DD format.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// ParseTimeOfDay parses a time of day in either HH:MM or HH:MM:SS format. The returned time is on
// January 1 of year zero; only the clock fields are meaningful.
func ParseTimeOfDay(value string) (time.Time, error) {
	var err error
	for _, layout := range timeOfDayLayouts {
		var t time.Time
		t, err = time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
