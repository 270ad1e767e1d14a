package elapsed

import "time"

// Breakdown is a calendar-aware split of the time elapsed since a reference.
type Breakdown struct {
	Years   int `json:"years"`
	Months  int `json:"months"`
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// IsZero reports whether no time has elapsed.
func (b Breakdown) IsZero() bool { return b == Breakdown{} }

// Compute returns the elapsed time from reference to now in whole calendar
// units. A now before reference yields the zero Breakdown.
//
// The day count runs up to the latest "anchor", the instant on some date at
// which the local clock in reference's location showed reference's time of
// day. Years, months and days are subtracted field by field between the two
// dates, borrowing the real length of each month before the anchor's month.
// Hours, minutes and seconds are the real time since the anchor, held at
// 23:59:59 on a day longer than 24 hours.
func Compute(reference, now time.Time) Breakdown {
	if now.Before(reference) {
		return Breakdown{}
	}
	now = now.In(reference.Location())

	refDay := dateOf(reference)
	day := dateOf(now)
	// the wall date may be off by one around a clock change
	for day.After(refDay) && anchor(reference, day, refDay).After(now) {
		day = day.AddDate(0, 0, -1)
	}
	for next := day.AddDate(0, 0, 1); !anchor(reference, next, refDay).After(now); next = day.AddDate(0, 0, 1) {
		day = next
	}

	rest := min(now.Sub(anchor(reference, day, refDay)), maxRest)

	years := day.Year() - refDay.Year()
	months := int(day.Month()) - int(refDay.Month())
	days := day.Day() - refDay.Day()

	// borrow whole months, walking back from the month before the anchor's
	y, m := day.Year(), day.Month()
	for days < 0 {
		y, m = prevMonth(y, m)
		months--
		days += DaysIn(y, m)
	}
	for months < 0 {
		years--
		months += 12
	}
	if years < 0 {
		return Breakdown{}
	}

	return Breakdown{
		Years:   years,
		Months:  months,
		Days:    days,
		Hours:   int(rest / time.Hour),
		Minutes: int(rest % time.Hour / time.Minute),
		Seconds: int(rest % time.Minute / time.Second),
	}
}

// maxRest caps the time of day so a 25-hour day never shows hour 24.
const maxRest = 24*time.Hour - time.Second

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	// day 0 of the following month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// NextAnniversary returns the first whole-year anniversary of reference
// strictly after now, together with the one before it (or reference itself).
func NextAnniversary(reference, now time.Time) (prev, next time.Time) {
	b := Compute(reference, now)
	prev = reference.AddDate(b.Years, 0, 0)
	next = reference.AddDate(b.Years+1, 0, 0)
	if !next.After(now) {
		prev, next = next, reference.AddDate(b.Years+2, 0, 0)
	}
	return prev, next
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// dateOf is t's calendar date in its own location, as midnight UTC.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// anchor is the instant on day when the clock read reference's time of day.
func anchor(reference, day, refDay time.Time) time.Time {
	if day.Equal(refDay) {
		return reference
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		reference.Hour(), reference.Minute(), reference.Second(), reference.Nanosecond(),
		reference.Location())
}
