package utils

import (
	"time"
)

const DateLayout = "2006-01-02"

// LoadLocation falls back to IST (+05:30) when the tz database is unavailable.
func LoadLocation(name string) *time.Location {
	if name == "" {
		name = "Asia/Kolkata"
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.FixedZone("IST", 5*3600+1800)
}

// DayBounds returns [start, end) of the calendar day date (YYYY-MM-DD) in loc.
func DayBounds(date string, loc *time.Location) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return day, day.AddDate(0, 0, 1), nil
}

func Today(loc *time.Location) string {
	return time.Now().In(loc).Format(DateLayout)
}
