package booking

import (
	"errors"
	"time"
)

const (
	TimeLayout = "15:04"

	// MaxRepeatWeeks caps how far a weekly series can extend in one request.
	MaxRepeatWeeks = 52
)

var (
	ErrInvalidTimeOfDay = errors.New("time of day must be HH:MM")
	ErrRepeatOutOfRange = errors.New("repeat weeks out of range")
)

// ParseTimeOfDay validates and normalizes a wall-clock time string.
func ParseTimeOfDay(s string) (string, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return "", ErrInvalidTimeOfDay
	}
	return t.Format(TimeLayout), nil
}

// ExpandSeries returns the dates of a weekly series starting at first:
// the first date itself plus repeatWeeks further dates, each 7 days apart.
func ExpandSeries(first time.Time, repeatWeeks int) ([]time.Time, error) {
	if repeatWeeks < 0 || repeatWeeks > MaxRepeatWeeks {
		return nil, ErrRepeatOutOfRange
	}
	dates := make([]time.Time, 0, repeatWeeks+1)
	for i := 0; i <= repeatWeeks; i++ {
		dates = append(dates, first.AddDate(0, 0, 7*i))
	}
	return dates, nil
}
