package cycle

import (
	"errors"
	"math"
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func TestResolveCalendarMonth(t *testing.T) {
	t.Run("resolves full month bounds", func(t *testing.T) {
		p := ResolveCalendarMonth(date(2024, time.June, 20))

		if !p.Start.Equal(date(2024, time.June, 1)) {
			t.Errorf("Expected start 2024-06-01, got %v", p.Start)
		}
		wantEnd := time.Date(2024, time.June, 30, 23, 59, 59, int(999*time.Millisecond), time.UTC)
		if !p.End.Equal(wantEnd) {
			t.Errorf("Expected end %v, got %v", wantEnd, p.End)
		}
		if p.DaysInCycle != 30 {
			t.Errorf("Expected 30 days in cycle, got %d", p.DaysInCycle)
		}
		if p.DaysRemaining != 10 {
			t.Errorf("Expected 10 days remaining, got %d", p.DaysRemaining)
		}
	})

	t.Run("start is always day one and end is last calendar day", func(t *testing.T) {
		cases := []struct {
			ref      time.Time
			wantDays int
		}{
			{date(2023, time.February, 14), 28},
			{date(2024, time.February, 14), 29}, // leap year
			{date(2024, time.April, 1), 30},
			{date(2024, time.January, 31), 31},
			{date(2024, time.December, 25), 31},
		}

		for _, tc := range cases {
			p := ResolveCalendarMonth(tc.ref)
			if p.Start.Day() != 1 {
				t.Errorf("%v: expected start day 1, got %d", tc.ref, p.Start.Day())
			}
			if p.End.Day() != tc.wantDays {
				t.Errorf("%v: expected end day %d, got %d", tc.ref, tc.wantDays, p.End.Day())
			}
			if p.DaysInCycle != tc.wantDays {
				t.Errorf("%v: expected %d days in cycle, got %d", tc.ref, tc.wantDays, p.DaysInCycle)
			}
		}
	})

	t.Run("days remaining is zero exactly on the last day", func(t *testing.T) {
		if p := ResolveCalendarMonth(date(2024, time.June, 30)); p.DaysRemaining != 0 {
			t.Errorf("Expected 0 days remaining on last day, got %d", p.DaysRemaining)
		}
		if p := ResolveCalendarMonth(date(2024, time.June, 29)); p.DaysRemaining != 1 {
			t.Errorf("Expected 1 day remaining on second-to-last day, got %d", p.DaysRemaining)
		}
	})

	t.Run("progress reaches 100 on the last day", func(t *testing.T) {
		p := ResolveCalendarMonth(date(2024, time.June, 30))
		if p.Progress != 100 {
			t.Errorf("Expected progress 100, got %f", p.Progress)
		}
	})
}

func TestResolveBillingCycle(t *testing.T) {
	t.Run("reference day before anchor starts cycle in previous month", func(t *testing.T) {
		p, err := ResolveBillingCycle(15, date(2024, time.March, 10))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if !p.Start.Equal(date(2024, time.February, 15)) {
			t.Errorf("Expected start 2024-02-15, got %v", p.Start)
		}
		if got := p.End.Format("2006-01-02"); got != "2024-03-14" {
			t.Errorf("Expected end 2024-03-14, got %s", got)
		}
		// Feb 15 through Mar 14 in a leap year spans 29 days inclusive.
		if p.DaysInCycle != 29 {
			t.Errorf("Expected 29 days in cycle, got %d", p.DaysInCycle)
		}
		if p.DaysRemaining != 4 {
			t.Errorf("Expected 4 days remaining, got %d", p.DaysRemaining)
		}
	})

	t.Run("reference day on anchor starts a new cycle today", func(t *testing.T) {
		p, err := ResolveBillingCycle(15, date(2024, time.March, 15))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if !p.Start.Equal(date(2024, time.March, 15)) {
			t.Errorf("Expected start 2024-03-15, got %v", p.Start)
		}
		if got := p.End.Format("2006-01-02"); got != "2024-04-14" {
			t.Errorf("Expected end 2024-04-14, got %s", got)
		}
		// Today counts as day 1 of the cycle, not day 0.
		if p.DaysRemaining != p.DaysInCycle-1 {
			t.Errorf("Expected %d days remaining, got %d", p.DaysInCycle-1, p.DaysRemaining)
		}
	})

	t.Run("anchor 31 clamps end to short month", func(t *testing.T) {
		p, err := ResolveBillingCycle(31, date(2024, time.April, 15))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		// March has 31 days so the start needs no clamp; April has 30 so
		// the would-be day 31 end clamps to day 30.
		if !p.Start.Equal(date(2024, time.March, 31)) {
			t.Errorf("Expected start 2024-03-31, got %v", p.Start)
		}
		if got := p.End.Format("2006-01-02"); got != "2024-04-30" {
			t.Errorf("Expected end 2024-04-30, got %s", got)
		}
	})

	t.Run("anchor 31 clamps start in february", func(t *testing.T) {
		p, err := ResolveBillingCycle(31, date(2023, time.March, 10))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		// Non-leap February: anchor 31 clamps to Feb 28.
		if !p.Start.Equal(date(2023, time.February, 28)) {
			t.Errorf("Expected start 2023-02-28, got %v", p.Start)
		}
		if got := p.End.Format("2006-01-02"); got != "2023-03-30" {
			t.Errorf("Expected end 2023-03-30, got %s", got)
		}
	})

	t.Run("anchor 1 matches the calendar month", func(t *testing.T) {
		refs := []time.Time{
			date(2024, time.June, 1),
			date(2024, time.June, 15),
			date(2024, time.June, 30),
			date(2024, time.February, 29),
		}

		for _, ref := range refs {
			billing, err := ResolveBillingCycle(1, ref)
			if err != nil {
				t.Fatalf("%v: unexpected error: %v", ref, err)
			}
			calendar := ResolveCalendarMonth(ref)

			if !billing.Start.Equal(calendar.Start) || !billing.End.Equal(calendar.End) {
				t.Errorf("%v: billing [%v, %v] != calendar [%v, %v]",
					ref, billing.Start, billing.End, calendar.Start, calendar.End)
			}
			if billing.DaysInCycle != calendar.DaysInCycle {
				t.Errorf("%v: days in cycle %d != %d", ref, billing.DaysInCycle, calendar.DaysInCycle)
			}
		}
	})

	t.Run("rejects anchor day outside 1-31", func(t *testing.T) {
		for _, anchor := range []int{0, -1, 32, 100} {
			_, err := ResolveBillingCycle(anchor, date(2024, time.June, 15))
			if !errors.Is(err, ErrInvalidAnchorDay) {
				t.Errorf("anchor %d: expected ErrInvalidAnchorDay, got %v", anchor, err)
			}
		}
	})

	t.Run("days remaining is zero on the last cycle day", func(t *testing.T) {
		p, err := ResolveBillingCycle(15, date(2024, time.April, 14))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if p.DaysRemaining != 0 {
			t.Errorf("Expected 0 days remaining, got %d", p.DaysRemaining)
		}
		if p.Progress != 100 {
			t.Errorf("Expected progress 100, got %f", p.Progress)
		}
	})
}

func TestProgressMonotonicity(t *testing.T) {
	// Progress never decreases as the reference advances through a cycle.
	anchorDay := 22
	prev := -1.0

	for day := 0; day < 31; day++ {
		ref := date(2024, time.May, 22).AddDate(0, 0, day)
		p, err := ResolveBillingCycle(anchorDay, ref)
		if err != nil {
			t.Fatalf("day %d: unexpected error: %v", day, err)
		}
		if !ref.Before(p.End) && !ref.Equal(p.End) {
			break
		}
		if p.Progress < prev {
			t.Errorf("day %d: progress %f decreased from %f", day, p.Progress, prev)
		}
		if p.Progress < 0 || p.Progress > 100 {
			t.Errorf("day %d: progress %f outside [0,100]", day, p.Progress)
		}
		prev = p.Progress
	}
}

func TestResolveActivePeriod(t *testing.T) {
	ref := date(2024, time.June, 20)

	t.Run("calendar mode resolves calendar month", func(t *testing.T) {
		p, err := ResolveActivePeriod(ViewCalendar, 15, ref)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !p.Start.Equal(date(2024, time.June, 1)) {
			t.Errorf("Expected calendar month start, got %v", p.Start)
		}
	})

	t.Run("billing mode with anchor resolves billing cycle", func(t *testing.T) {
		p, err := ResolveActivePeriod(ViewBilling, 15, ref)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !p.Start.Equal(date(2024, time.June, 15)) {
			t.Errorf("Expected billing cycle start 2024-06-15, got %v", p.Start)
		}
	})

	t.Run("billing mode without anchor falls back to calendar month", func(t *testing.T) {
		p, err := ResolveActivePeriod(ViewBilling, 0, ref)
		if err != nil {
			t.Fatalf("Expected silent fallback, got error: %v", err)
		}
		if !p.Start.Equal(date(2024, time.June, 1)) {
			t.Errorf("Expected start 2024-06-01, got %v", p.Start)
		}
		if got := p.End.Format("2006-01-02"); got != "2024-06-30" {
			t.Errorf("Expected end 2024-06-30, got %s", got)
		}
	})

	t.Run("billing mode with invalid anchor fails", func(t *testing.T) {
		_, err := ResolveActivePeriod(ViewBilling, 32, ref)
		if !errors.Is(err, ErrInvalidAnchorDay) {
			t.Errorf("Expected ErrInvalidAnchorDay, got %v", err)
		}
	})
}

func TestApplyMarkerOverlay(t *testing.T) {
	base := ResolveCalendarMonth(date(2024, time.June, 20))

	t.Run("marker inside period narrows the start", func(t *testing.T) {
		marker := date(2024, time.June, 10)
		p := ApplyMarkerOverlay(base, []time.Time{marker})

		if !p.Start.Equal(marker) {
			t.Errorf("Expected start at marker %v, got %v", marker, p.Start)
		}
		// June 10 through June 30, inclusive.
		if p.DaysInCycle != 21 {
			t.Errorf("Expected 21 days in cycle, got %d", p.DaysInCycle)
		}
		if p.DaysRemaining != base.DaysRemaining {
			t.Errorf("Expected days remaining unchanged at %d, got %d", base.DaysRemaining, p.DaysRemaining)
		}
		wantProgress := float64(21-10) / 21 * 100
		if math.Abs(p.Progress-wantProgress) > 1e-9 {
			t.Errorf("Expected progress %f, got %f", wantProgress, p.Progress)
		}
	})

	t.Run("marker keeps its own instant", func(t *testing.T) {
		marker := at(2024, time.June, 10, 14)
		p := ApplyMarkerOverlay(base, []time.Time{marker})

		if !p.Start.Equal(marker) {
			t.Errorf("Expected start at marker instant %v, got %v", marker, p.Start)
		}
	})

	t.Run("most recent marker wins", func(t *testing.T) {
		markers := []time.Time{
			date(2024, time.June, 5),
			date(2024, time.June, 12),
			date(2024, time.June, 8),
		}
		p := ApplyMarkerOverlay(base, markers)

		if !p.Start.Equal(date(2024, time.June, 12)) {
			t.Errorf("Expected start at latest marker, got %v", p.Start)
		}
	})

	t.Run("marker before period start leaves period unchanged", func(t *testing.T) {
		p := ApplyMarkerOverlay(base, []time.Time{date(2024, time.May, 28)})
		if p != base {
			t.Errorf("Expected unchanged period, got %+v", p)
		}
	})

	t.Run("marker equal to period start leaves period unchanged", func(t *testing.T) {
		p := ApplyMarkerOverlay(base, []time.Time{base.Start})
		if p != base {
			t.Errorf("Expected unchanged period, got %+v", p)
		}
	})

	t.Run("no markers leaves period unchanged", func(t *testing.T) {
		if p := ApplyMarkerOverlay(base, nil); p != base {
			t.Errorf("Expected unchanged period, got %+v", p)
		}
	})

	t.Run("overlay never widens the period", func(t *testing.T) {
		markers := []time.Time{
			date(2024, time.April, 1),
			date(2024, time.June, 3),
			date(2024, time.May, 15),
		}
		p := ApplyMarkerOverlay(base, markers)
		if p.Start.Before(base.Start) {
			t.Errorf("Overlay start %v earlier than period start %v", p.Start, base.Start)
		}
	})
}

func TestHistory(t *testing.T) {
	t.Run("first element is the current period", func(t *testing.T) {
		ref := date(2024, time.June, 20)
		periods, err := History(ViewCalendar, 0, ref, 6)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if len(periods) != 6 {
			t.Fatalf("Expected 6 periods, got %d", len(periods))
		}
		if !periods[0].IsCurrent {
			t.Error("Expected first period to be current")
		}
		for i := 1; i < len(periods); i++ {
			if periods[i].IsCurrent {
				t.Errorf("Period %d unexpectedly marked current", i)
			}
		}

		active, err := ResolveActivePeriod(ViewCalendar, 0, ref)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if periods[0].Key != Key(ViewCalendar, active) {
			t.Errorf("Expected current key %s, got %s", Key(ViewCalendar, active), periods[0].Key)
		}
	})

	t.Run("calendar history walks back month by month", func(t *testing.T) {
		periods, err := History(ViewCalendar, 0, date(2024, time.March, 10), 4)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		wantKeys := []string{"2024-03", "2024-02", "2024-01", "2023-12"}
		for i, want := range wantKeys {
			if periods[i].Key != want {
				t.Errorf("Period %d: expected key %s, got %s", i, want, periods[i].Key)
			}
		}
	})

	t.Run("anchor 31 clamps into short months", func(t *testing.T) {
		periods, err := History(ViewBilling, 31, date(2024, time.January, 31), 3)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		// Jan 31 cycle runs to the clamped Feb 29 (2024 is a leap year).
		if periods[0].Key != "2024-01-31_2024-02-29" {
			t.Errorf("Expected key 2024-01-31_2024-02-29, got %s", periods[0].Key)
		}
		// One month back lands on Dec 31.
		if periods[1].Key != "2023-12-31_2024-01-30" {
			t.Errorf("Expected key 2023-12-31_2024-01-30, got %s", periods[1].Key)
		}
		// Two months back clamps the shifted reference to Nov 30, which
		// falls before the anchor, so the cycle starts Oct 31.
		if periods[2].Key != "2023-10-31_2023-11-30" {
			t.Errorf("Expected key 2023-10-31_2023-11-30, got %s", periods[2].Key)
		}
	})

	t.Run("billing fallback without anchor produces month keys", func(t *testing.T) {
		periods, err := History(ViewBilling, 0, date(2024, time.June, 20), 2)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if periods[0].Key != "2024-06" {
			t.Errorf("Expected month key 2024-06, got %s", periods[0].Key)
		}
	})

	t.Run("keys round trip through ParseKey", func(t *testing.T) {
		for _, mode := range []ViewMode{ViewCalendar, ViewBilling} {
			periods, err := History(mode, 17, date(2024, time.June, 20), 12)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", mode, err)
			}

			for _, hp := range periods {
				start, end, err := ParseKey(hp.Key)
				if err != nil {
					t.Fatalf("%s: ParseKey(%s) failed: %v", mode, hp.Key, err)
				}
				if !start.Equal(hp.Start) {
					t.Errorf("%s: key %s start %v != period start %v", mode, hp.Key, start, hp.Start)
				}
				if !end.Equal(hp.End) {
					t.Errorf("%s: key %s end %v != period end %v", mode, hp.Key, end, hp.End)
				}
			}
		}
	})

	t.Run("invalid anchor fails fast", func(t *testing.T) {
		_, err := History(ViewBilling, 40, date(2024, time.June, 20), 3)
		if !errors.Is(err, ErrInvalidAnchorDay) {
			t.Errorf("Expected ErrInvalidAnchorDay, got %v", err)
		}
	})
}
