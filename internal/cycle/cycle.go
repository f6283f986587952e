// Package cycle resolves billing periods from user settings and a reference
// instant. It is pure date arithmetic: no I/O, no shared state, safe to call
// concurrently.
package cycle

import (
	"errors"
	"time"
)

// ViewMode selects which resolution algorithm applies.
type ViewMode string

const (
	// ViewCalendar resolves periods as calendar months.
	ViewCalendar ViewMode = "calendar"

	// ViewBilling resolves periods as billing cycles anchored on a
	// per-account day of month.
	ViewBilling ViewMode = "billing"
)

// ValidViewModes contains the allowed view mode values.
var ValidViewModes = map[ViewMode]bool{
	ViewCalendar: true,
	ViewBilling:  true,
}

// ErrInvalidAnchorDay indicates an anchor day outside the [1,31] range.
// Anchor days are the only validated input; all other date math is exact.
var ErrInvalidAnchorDay = errors.New("anchor day must be between 1 and 31")

// Period is a concrete, resolved date range with derived progress metrics.
// Start is midnight of the first included day and End is inclusive
// end-of-day (23:59:59.999) of the last included day.
type Period struct {
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	DaysInCycle   int       `json:"daysInCycle"`   // inclusive day count, >= 1
	DaysRemaining int       `json:"daysRemaining"` // 0 on the last day, never negative
	Progress      float64   `json:"progress"`      // percent elapsed, clamped to [0,100]
}

// HistoricalPeriod is a Period plus a stable key identifying it for lookup.
type HistoricalPeriod struct {
	Period
	Key       string `json:"key"`
	IsCurrent bool   `json:"isCurrent"`
}

// ResolveCalendarMonth resolves the calendar month containing ref.
// The last day of the month is computed as day zero of the following month,
// which stays correct for every month length including leap Februaries.
func ResolveCalendarMonth(ref time.Time) Period {
	year, month, _ := ref.Date()
	loc := ref.Location()

	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := endOfDay(time.Date(year, month+1, 0, 0, 0, 0, 0, loc))

	daysInCycle := end.Day()
	daysElapsed := ref.Day()
	daysRemaining := daysInCycle - daysElapsed
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	return Period{
		Start:         start,
		End:           end,
		DaysInCycle:   daysInCycle,
		DaysRemaining: daysRemaining,
		Progress:      clampProgress(float64(daysElapsed) / float64(daysInCycle) * 100),
	}
}

// ResolveBillingCycle resolves the billing cycle containing ref for the
// given anchor day. The cycle runs from the anchor day to the day before
// the next anchor day, with both bounds clamped to the length of their
// target month so anchor days 29-31 stay valid against short months.
//
// A reference day equal to the anchor day starts a new cycle: today counts
// as day 1, so DaysRemaining is DaysInCycle-1.
func ResolveBillingCycle(anchorDay int, ref time.Time) (Period, error) {
	if anchorDay < 1 || anchorDay > 31 {
		return Period{}, ErrInvalidAnchorDay
	}

	year, month, day := ref.Date()
	loc := ref.Location()

	var rawStart, rawEnd time.Time
	if day >= anchorDay {
		// Cycle started this month.
		rawStart = clampedDate(year, month, anchorDay, loc)
		rawEnd = clampedDate(year, month+1, anchorDay-1, loc)
	} else {
		// Cycle started the previous month.
		rawStart = clampedDate(year, month-1, anchorDay, loc)
		rawEnd = clampedDate(year, month, anchorDay-1, loc)
	}

	start := rawStart
	end := endOfDay(rawEnd)

	daysInCycle := daysBetween(start, end) + 1
	daysRemaining := daysBetween(ref, end)
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	return Period{
		Start:         start,
		End:           end,
		DaysInCycle:   daysInCycle,
		DaysRemaining: daysRemaining,
		Progress:      clampProgress(float64(daysInCycle-daysRemaining) / float64(daysInCycle) * 100),
	}, nil
}

// EffectiveMode returns the mode that actually applies: billing mode
// without an anchor day degrades to calendar mode. This fallback is
// defined behavior, not an error.
func EffectiveMode(mode ViewMode, anchorDay int) ViewMode {
	if mode == ViewBilling && anchorDay > 0 {
		return ViewBilling
	}
	return ViewCalendar
}

// ResolveActivePeriod resolves the currently active period for the given
// view mode and anchor day. An anchorDay of zero means no anchor is
// configured; billing mode then falls back to the calendar month.
func ResolveActivePeriod(mode ViewMode, anchorDay int, ref time.Time) (Period, error) {
	if EffectiveMode(mode, anchorDay) == ViewBilling {
		return ResolveBillingCycle(anchorDay, ref)
	}
	return ResolveCalendarMonth(ref), nil
}

// ApplyMarkerOverlay narrows a calendar-mode period to start at the most
// recent marker timestamp, when that timestamp falls inside the period.
// The marker keeps its own instant rather than being truncated to
// midnight. A marker at or before the period start leaves the period
// unchanged, so a stale marker can never widen the active period across
// a month boundary.
func ApplyMarkerOverlay(p Period, markers []time.Time) Period {
	var latest time.Time
	for _, m := range markers {
		if m.After(latest) {
			latest = m
		}
	}
	if latest.IsZero() || !latest.After(p.Start) {
		return p
	}

	adjusted := p
	adjusted.Start = latest
	adjusted.DaysInCycle = daysBetween(latest, p.End) + 1
	if adjusted.DaysInCycle < 1 {
		adjusted.DaysInCycle = 1
	}
	if adjusted.DaysRemaining > adjusted.DaysInCycle {
		adjusted.DaysRemaining = adjusted.DaysInCycle
	}

	daysElapsed := adjusted.DaysInCycle - adjusted.DaysRemaining
	adjusted.Progress = clampProgress(float64(daysElapsed) / float64(adjusted.DaysInCycle) * 100)

	return adjusted
}

// History enumerates recent periods, most recent first. Element i is
// resolved from ref shifted back i whole months (same day of month,
// clamped to valid dates), so shifting back from day 31 into a 30-day
// month lands on day 30. Element 0 is marked current. The sequence is
// recomputed from scratch on every call; there is no cached state.
func History(mode ViewMode, anchorDay int, ref time.Time, count int) ([]HistoricalPeriod, error) {
	periods := make([]HistoricalPeriod, 0, count)

	for i := 0; i < count; i++ {
		shifted := shiftMonths(ref, -i)

		p, err := ResolveActivePeriod(mode, anchorDay, shifted)
		if err != nil {
			return nil, err
		}

		periods = append(periods, HistoricalPeriod{
			Period:    p,
			Key:       Key(EffectiveMode(mode, anchorDay), p),
			IsCurrent: i == 0,
		})
	}

	return periods, nil
}

// shiftMonths moves ref by the given number of whole months, clamping the
// day of month to the target month's length. time.AddDate is not used
// because it normalizes overflow (Jan 31 minus one month becomes Dec 31
// via Jan 1) instead of clamping.
func shiftMonths(ref time.Time, months int) time.Time {
	year, month, day := ref.Date()
	hour, min, sec := ref.Clock()

	target := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, ref.Location())
	if last := daysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}

	return time.Date(target.Year(), target.Month(), day, hour, min, sec, ref.Nanosecond(), ref.Location())
}

// clampedDate builds a date from a (year, month, day) triple, clamping the
// day to the target month's length. A day of zero normalizes to the last
// day of the preceding month, which is what the anchor-1 arithmetic needs
// when the anchor day is 1.
func clampedDate(year int, month time.Month, day int, loc *time.Location) time.Time {
	norm := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	if last := daysInMonth(norm.Year(), norm.Month()); day > last {
		day = last
	}
	return time.Date(norm.Year(), norm.Month(), day, 0, 0, 0, 0, loc)
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// daysBetween counts whole calendar days from a's date to b's date,
// ignoring time of day. Dates are normalized to UTC midnights so the
// count is exact regardless of location or DST transitions.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	au := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bu := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}

// endOfDay returns the inclusive end-of-day instant (23:59:59.999) for
// the date of t.
func endOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func clampProgress(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
