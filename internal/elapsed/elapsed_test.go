package elapsed

import (
	"testing"
	"time"
	_ "time/tzdata"
)

func at(y int, mo time.Month, d, h, mi, s int) time.Time {
	return time.Date(y, mo, d, h, mi, s, 0, time.UTC)
}

func TestCompute(t *testing.T) {
	cases := []struct {
		name string
		ref  time.Time
		now  time.Time
		want Breakdown
	}{
		{
			name: "same instant",
			ref:  at(2025, time.June, 26, 23, 59, 0),
			now:  at(2025, time.June, 26, 23, 59, 0),
			want: Breakdown{},
		},
		{
			name: "one minute across midnight",
			ref:  at(2025, time.June, 26, 23, 59, 0),
			now:  at(2025, time.June, 27, 0, 0, 0),
			want: Breakdown{Minutes: 1},
		},
		{
			name: "leap february borrow with time of day before anchor",
			ref:  at(2024, time.January, 31, 10, 0, 0),
			now:  at(2024, time.March, 1, 9, 0, 0),
			want: Breakdown{Days: 29, Hours: 23},
		},
		{
			name: "days past the length of the month before now",
			ref:  at(2024, time.January, 31, 10, 0, 0),
			now:  at(2024, time.March, 2, 9, 0, 0),
			want: Breakdown{Days: 30, Hours: 23},
		},
		{
			name: "before reference",
			ref:  at(2025, time.June, 26, 23, 59, 0),
			now:  at(2024, time.December, 31, 12, 0, 0),
			want: Breakdown{},
		},
		{
			name: "exact anniversary",
			ref:  at(2025, time.June, 26, 23, 59, 0),
			now:  at(2026, time.June, 26, 23, 59, 0),
			want: Breakdown{Years: 1},
		},
		{
			name: "one second short of an anniversary",
			ref:  at(2025, time.June, 26, 23, 59, 0),
			now:  at(2026, time.June, 26, 23, 58, 59),
			want: Breakdown{Months: 11, Days: 30, Hours: 23, Minutes: 59, Seconds: 59},
		},
		{
			name: "month borrow across year end",
			ref:  at(2024, time.November, 15, 8, 30, 0),
			now:  at(2025, time.January, 10, 9, 45, 30),
			want: Breakdown{Months: 1, Days: 26, Hours: 1, Minutes: 15, Seconds: 30},
		},
		{
			name: "leap day reference on a common year",
			ref:  at(2024, time.February, 29, 0, 0, 0),
			now:  at(2025, time.March, 1, 0, 0, 0),
			want: Breakdown{Years: 1},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Compute(c.ref, c.now)
			if got != c.want {
				t.Fatalf("Compute(%s, %s) = %+v, want %+v", c.ref, c.now, got, c.want)
			}
		})
	}
}

func TestComputeIsPure(t *testing.T) {
	ref := at(2023, time.March, 3, 17, 5, 9)
	now := at(2026, time.October, 15, 4, 2, 1)
	a, b := Compute(ref, now), Compute(ref, now)
	if a != b {
		t.Fatalf("Compute not idempotent: %+v vs %+v", a, b)
	}
}

func TestComputeUsesReferenceLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ref := time.Date(2025, time.June, 26, 23, 59, 0, 0, loc)
	now := time.Date(2025, time.June, 26, 22, 0, 0, 0, time.UTC) // 00:00 on the 27th in loc
	want := Breakdown{Minutes: 1}
	if got := Compute(ref, now); got != want {
		t.Fatalf("Compute = %+v, want %+v", got, want)
	}
}

func TestComputeBoundsAndMonotonic(t *testing.T) {
	refs := []time.Time{
		at(2024, time.January, 31, 10, 0, 0),
		at(2024, time.February, 29, 23, 59, 59),
		at(2023, time.March, 30, 0, 0, 0),
		at(2025, time.June, 26, 23, 59, 0),
		at(2022, time.December, 31, 12, 30, 15),
	}
	for _, ref := range refs {
		prev := Breakdown{}
		for now := ref.Add(-48 * time.Hour); now.Before(ref.AddDate(3, 0, 0)); now = now.Add(97 * time.Minute) {
			got := Compute(ref, now)
			checkBounds(t, ref, now, got)
			if less(got, prev) {
				t.Fatalf("ref %s: %+v at %s went backwards from %+v", ref, got, now, prev)
			}
			prev = got
		}
	}
}

func newYork(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	return loc
}

func TestComputeAcrossFallBack(t *testing.T) {
	ny := newYork(t)
	ref := time.Date(2025, time.January, 1, 0, 0, 0, 0, ny)
	// 2025-11-02 01:59:59 EDT, then 01:00:00 EST one second later
	lastEDT := time.Date(2025, time.November, 2, 5, 59, 59, 0, time.UTC)

	cases := []struct {
		name string
		now  time.Time
		want Breakdown
	}{
		{"last second of daylight time", lastEDT, Breakdown{Months: 10, Days: 1, Hours: 1, Minutes: 59, Seconds: 59}},
		{"first second of standard time", lastEDT.Add(time.Second), Breakdown{Months: 10, Days: 1, Hours: 2}},
		{"25-hour day holds at the end", time.Date(2025, time.November, 2, 23, 59, 59, 0, ny), Breakdown{Months: 10, Days: 1, Hours: 23, Minutes: 59, Seconds: 59}},
		{"next midnight", time.Date(2025, time.November, 3, 0, 0, 0, 0, ny), Breakdown{Months: 10, Days: 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Compute(ref, c.now); got != c.want {
				t.Fatalf("Compute(%s) = %+v, want %+v", c.now, got, c.want)
			}
		})
	}
}

func TestComputeAcrossSpringForward(t *testing.T) {
	ny := newYork(t)
	ref := time.Date(2025, time.January, 1, 0, 0, 0, 0, ny)
	// 2025-03-09 01:59:59 EST, then 03:00:00 EDT one second later
	lastEST := time.Date(2025, time.March, 9, 6, 59, 59, 0, time.UTC)

	if got, want := Compute(ref, lastEST), (Breakdown{Months: 2, Days: 8, Hours: 1, Minutes: 59, Seconds: 59}); got != want {
		t.Fatalf("before the change = %+v, want %+v", got, want)
	}
	if got, want := Compute(ref, lastEST.Add(time.Second)), (Breakdown{Months: 2, Days: 8, Hours: 2}); got != want {
		t.Fatalf("after the change = %+v, want %+v", got, want)
	}
	// a 23-hour day rolls over at local midnight
	midnight := time.Date(2025, time.March, 10, 0, 0, 0, 0, ny)
	if got, want := Compute(ref, midnight.Add(-time.Second)), (Breakdown{Months: 2, Days: 8, Hours: 22, Minutes: 59, Seconds: 59}); got != want {
		t.Fatalf("end of short day = %+v, want %+v", got, want)
	}
	if got, want := Compute(ref, midnight), (Breakdown{Months: 2, Days: 9}); got != want {
		t.Fatalf("midnight = %+v, want %+v", got, want)
	}
}

func TestComputeMonotonicAcrossClockChanges(t *testing.T) {
	ny := newYork(t)
	refs := []time.Time{
		time.Date(2025, time.January, 1, 0, 0, 0, 0, ny),
		time.Date(2024, time.December, 31, 1, 30, 0, 0, ny),
		time.Date(2024, time.June, 15, 2, 30, 0, 0, ny),
		time.Date(2024, time.November, 3, 1, 30, 0, 0, ny),
	}
	changes := []time.Time{
		time.Date(2025, time.March, 9, 7, 0, 0, 0, time.UTC),
		time.Date(2025, time.November, 2, 6, 0, 0, 0, time.UTC),
	}
	for _, ref := range refs {
		for _, change := range changes {
			prev := Compute(ref, change.Add(-3*time.Hour))
			for now := change.Add(-3 * time.Hour); now.Before(change.Add(24 * time.Hour)); now = now.Add(time.Second) {
				got := Compute(ref, now)
				checkBounds(t, ref, now, got)
				if less(got, prev) {
					t.Fatalf("ref %s: %+v at %s went backwards from %+v", ref, got, now, prev)
				}
				prev = got
			}
		}

		prev := Breakdown{}
		for now := ref.Add(-48 * time.Hour); now.Before(ref.AddDate(2, 0, 0)); now = now.Add(97 * time.Minute) {
			got := Compute(ref, now)
			checkBounds(t, ref, now, got)
			if less(got, prev) {
				t.Fatalf("ref %s: %+v at %s went backwards from %+v", ref, got, now, prev)
			}
			prev = got
		}
	}
}

func checkBounds(t *testing.T, ref, now time.Time, b Breakdown) {
	t.Helper()
	switch {
	case b.Years < 0,
		b.Months < 0 || b.Months > 11,
		b.Days < 0 || b.Days > 30,
		b.Hours < 0 || b.Hours > 23,
		b.Minutes < 0 || b.Minutes > 59,
		b.Seconds < 0 || b.Seconds > 59:
		t.Fatalf("ref %s now %s: out of range %+v", ref, now, b)
	}
}

func less(a, b Breakdown) bool {
	x := [6]int{a.Years, a.Months, a.Days, a.Hours, a.Minutes, a.Seconds}
	y := [6]int{b.Years, b.Months, b.Days, b.Hours, b.Minutes, b.Seconds}
	for i := range x {
		if x[i] != y[i] {
			return x[i] < y[i]
		}
	}
	return false
}

func TestDaysIn(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2025, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2025, time.April, 30},
		{2025, time.December, 31},
	}
	for _, c := range cases {
		if got := DaysIn(c.year, c.month); got != c.want {
			t.Errorf("DaysIn(%d, %s) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestNextAnniversary(t *testing.T) {
	ref := at(2025, time.June, 26, 23, 59, 0)

	prev, next := NextAnniversary(ref, at(2026, time.October, 15, 12, 0, 0))
	if !prev.Equal(at(2026, time.June, 26, 23, 59, 0)) {
		t.Fatalf("prev = %s", prev)
	}
	if !next.Equal(at(2027, time.June, 26, 23, 59, 0)) {
		t.Fatalf("next = %s", next)
	}

	prev, next = NextAnniversary(ref, ref)
	if !prev.Equal(ref) || !next.Equal(ref.AddDate(1, 0, 0)) {
		t.Fatalf("at reference: prev %s next %s", prev, next)
	}
}
