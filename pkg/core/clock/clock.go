// Package clock provides minute-level arithmetic on HH:MM clock strings and
// calendar-date helpers. The scheduler never crosses midnight, so all clock
// values live in a single day (0-1439 minutes).
package clock

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout    = "2006-01-02"
	minutesPerDay = 24 * 60
)

// Minutes converts an HH:MM clock string to minutes since midnight
func Minutes(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FromMinutes converts minutes since midnight to an HH:MM clock string.
// Values outside 0-1439 wrap into the day.
func FromMinutes(m int) string {
	m = ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddMinutes shifts a clock value by delta minutes, wrapping within the day
func AddMinutes(clock string, delta int) (string, error) {
	m, err := Minutes(clock)
	if err != nil {
		return "", err
	}
	return FromMinutes(m + delta), nil
}

// HoursBetween returns the duration from start to end in hours.
// A negative duration is a data-integrity violation (there are no overnight
// shifts) and is returned as an error, never clamped.
func HoursBetween(start, end string) (float64, error) {
	s, err := Minutes(start)
	if err != nil {
		return 0, err
	}
	e, err := Minutes(end)
	if err != nil {
		return 0, err
	}
	if e < s {
		return 0, fmt.Errorf("negative shift duration: %s-%s", start, end)
	}
	return float64(e-s) / 60, nil
}

// ParseDate parses a calendar date in ISO format
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// FormatDate formats a calendar date in ISO format
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekdayOf returns the weekday of an ISO date
func WeekdayOf(date string) (time.Weekday, error) {
	t, err := ParseDate(date)
	if err != nil {
		return time.Sunday, err
	}
	return t.Weekday(), nil
}

// ParseWeekday parses a lowercase weekday name ("monday" ... "sunday")
func ParseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), name) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("invalid weekday %q", name)
}

// WeekdayName returns the lowercase name of a weekday
func WeekdayName(d time.Weekday) string {
	return strings.ToLower(d.String())
}
