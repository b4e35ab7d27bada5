package domain

import (
	"fmt"
	"math"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ShiftHours computes the elapsed hours of a shift on the given calendar
// date, rounded to two decimals. When the end clock value is numerically
// earlier than the start, the shift is taken to cross midnight and 24
// hours are added; shifts of 24 hours or more are not representable.
// Equal start and end yield 0.00, not 24.00.
func ShiftHours(date, startTime, endTime string) (float64, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("%w: date %q", ErrValidation, date)
	}
	start, err := time.Parse(ClockLayout, startTime)
	if err != nil {
		return 0, fmt.Errorf("%w: start time %q", ErrValidation, startTime)
	}
	end, err := time.Parse(ClockLayout, endTime)
	if err != nil {
		return 0, fmt.Errorf("%w: end time %q", ErrValidation, endTime)
	}

	from := time.Date(day.Year(), day.Month(), day.Day(), start.Hour(), start.Minute(), 0, 0, time.UTC)
	to := time.Date(day.Year(), day.Month(), day.Day(), end.Hour(), end.Minute(), 0, 0, time.UTC)

	raw := to.Sub(from).Hours()
	if raw < 0 {
		raw += 24
	}
	return Round2(raw), nil
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
