package models

import (
	"fmt"
	"strings"
)

// Weekday is the closed set of days a session can be scheduled on. The zero value is unset.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// AllWeekdays lists the days Monday first.
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday resolves an English day name, ignoring case and surrounding space.
func ParseWeekday(s string) (Weekday, error) {
	name := strings.TrimSpace(s)
	for i := 1; i < len(weekdayNames); i++ {
		if strings.EqualFold(weekdayNames[i], name) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown day of week %q", s)
}

func (d Weekday) Valid() bool { return d >= Monday && d <= Sunday }

func (d Weekday) String() string {
	if !d.Valid() {
		return ""
	}
	return weekdayNames[d]
}

// Offset is the number of days from Monday.
func (d Weekday) Offset() int { return int(d - Monday) }

// DayType selects which rate table applies.
func (d Weekday) DayType() DayType {
	if d == Saturday || d == Sunday {
		return DayTypeWeekend
	}
	return DayTypeWeekday
}

// DayType is the weekday/weekend classification of a day.
type DayType string

const (
	DayTypeWeekday DayType = "weekday"
	DayTypeWeekend DayType = "weekend"
)
