package booking

import (
	"fmt"
	"time"

	"courtcredits/models"
	"courtcredits/utils"
)

// ParseWeekStarting parses a "2006-01-02" date in loc and checks it is a Monday.
func ParseWeekStarting(weekStarting string, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(utils.DateLayout, weekStarting, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrInvalidDate, weekStarting, err)
	}
	if date.Weekday() != time.Monday {
		return time.Time{}, fmt.Errorf("%w: %s is a %s", ErrNotMonday, weekStarting, date.Weekday())
	}
	return date, nil
}

// SessionWindow resolves a weekly session to absolute start and end times in loc.
func SessionWindow(weekStarting string, day models.Weekday, start, end models.Minute, loc *time.Location) (time.Time, time.Time, error) {
	monday, err := ParseWeekStarting(weekStarting, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !day.Valid() {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: day of week", ErrInvalidSession)
	}
	if end <= start {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end %s is not after start %s", ErrInvalidSession, end, start)
	}
	date := monday.AddDate(0, 0, day.Offset())
	at := func(m models.Minute) time.Time {
		return time.Date(date.Year(), date.Month(), date.Day(), m.Hour(), int(m)%60, 0, 0, loc)
	}
	return at(start), at(end), nil
}
