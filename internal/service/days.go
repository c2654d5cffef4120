package service

import (
	"strings"
	"time"
)

const (
	checkInLayout = "2006-1-2"
	UnknownDays   = -1

	secondsPerDay = 24 * 60 * 60
)

// DaysUntil returns whole calendar days from now's date to a YYYY-MM-DD
// check-in date. Month and day may omit the leading zero. Past dates are negative. Missing or unparseable input
// yields UnknownDays.
func DaysUntil(date string, now time.Time) int {
	date = strings.TrimSpace(date)
	if date == "" {
		return UnknownDays
	}
	checkIn, err := time.Parse(checkInLayout, date)
	if err != nil {
		return UnknownDays
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int((checkIn.Unix() - today.Unix()) / secondsPerDay)
}
