package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Minute is a time of day expressed in minutes since midnight (e.g., 510 for 8:30 AM).
type Minute int

const (
	// MinutesPerDay is the exclusive upper bound of a day; also the value of "24:00".
	MinutesPerDay Minute = 24 * 60
	// SlotStep is the granularity of the slot grid.
	SlotStep Minute = 30
)

// ParseClock parses a 24-hour "HH:MM" value. The hour may drop its leading zero ("9:30");
// the minute is always two digits. "24:00" is accepted and resolves to MinutesPerDay.
func ParseClock(s string) (Minute, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || !digits(hh, 1, 2) || !digits(mm, 2, 2) {
		return 0, fmt.Errorf("invalid clock value %q: expected HH:MM", s)
	}
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	if m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return Minute(h*60 + m), nil
}

// digits reports whether s is between minLen and maxLen ASCII digits.
func digits(s string, minLen, maxLen int) bool {
	if len(s) < minLen || len(s) > maxLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MinuteFromHours converts a possibly fractional hour value (8.5 -> 510).
func MinuteFromHours(h float64) Minute {
	return Minute(math.Round(h * 60))
}

// Hour returns the hour component (0-24).
func (m Minute) Hour() int { return int(m) / 60 }

// Clock renders the machine value, e.g. "09:00".
func (m Minute) Clock() string {
	return fmt.Sprintf("%02d:%02d", m.Hour(), int(m)%60)
}

// Label renders the display value, e.g. "9:00 AM".
func (m Minute) Label() string {
	h := m.Hour()
	period := "PM"
	if h < 12 || h == 24 {
		period = "AM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, int(m)%60, period)
}

func (m Minute) String() string { return m.Clock() }
