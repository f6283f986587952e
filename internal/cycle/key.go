package cycle

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Key formats: calendar periods use the month of the start date, billing
// periods use both bounds so cycles spanning a month boundary stay unique.
const (
	monthKeyLayout = "2006-01"
	dateKeyLayout  = "2006-01-02"
)

// ErrInvalidCycleKey indicates a cycle key that is neither a YYYY-MM
// month key nor a YYYY-MM-DD_YYYY-MM-DD range key.
var ErrInvalidCycleKey = errors.New("invalid cycle key")

// Key derives the stable identifier for a period under the given
// effective mode. Keys are pure functions of the period bounds: a
// calendar period keys as "YYYY-MM" of its start, a billing period as
// "YYYY-MM-DD_YYYY-MM-DD" built from both bounds.
func Key(effectiveMode ViewMode, p Period) string {
	if effectiveMode == ViewBilling {
		return p.Start.Format(dateKeyLayout) + "_" + p.End.Format(dateKeyLayout)
	}
	return p.Start.Format(monthKeyLayout)
}

// ParseKey rebuilds the [start, end] bounds identified by a cycle key.
// Month keys expand to the full calendar month; range keys expand to
// midnight of the first date through end-of-day of the second. Bounds
// are returned in UTC.
func ParseKey(key string) (start, end time.Time, err error) {
	if before, after, found := strings.Cut(key, "_"); found {
		start, err = time.ParseInLocation(dateKeyLayout, before, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: %s", ErrInvalidCycleKey, key)
		}
		end, err = time.ParseInLocation(dateKeyLayout, after, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: %s", ErrInvalidCycleKey, key)
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: end before start: %s", ErrInvalidCycleKey, key)
		}
		return start, endOfDay(end), nil
	}

	month, err := time.ParseInLocation(monthKeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s", ErrInvalidCycleKey, key)
	}
	start = month
	end = endOfDay(time.Date(month.Year(), month.Month()+1, 0, 0, 0, 0, 0, time.UTC))
	return start, end, nil
}
