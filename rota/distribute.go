/*
distribute.go - open/mid/close bucketing

PURPOSE:
  Final pipeline stage. Partitions each day's working crew (everyone not in
  offList) into open (capped at two), mid, and close.

ALLOCATION ORDER:
  1. Forced openers take the open slots first, roster order, up to the cap.
     A forced opener beyond the cap falls through to mid: the obligation
     was to open, not to close, so the overflow never closes.
  2. Remaining open slots fill from employees who are neither forced opener
     nor forced closer, with two exclusions on the voluntary fill only:
       - Friday: skip anyone working the following Saturday, so the same
         person is not stuck opening Friday and working Saturday.
       - Saturday: skip anyone who opened the previous Friday (no
         back-to-back opens).
     Forced openers are seeded regardless of these exclusions; an
     obligation derived from a day off outranks a load-balancing rule.
  3. Of the rest, forced closers go straight to close; close then fills to
     ceil(remaining/2) from the non-forced pool in roster order; everyone
     else mids.

SPECIAL DAYS:
  - Closed holidays and Sundays are not distributed here (Sundays carry
    the single SundayShift crew instead).
  - The effective last day bypasses everything: full roster in roster
    order - first two open, the next half of the remainder mid, the rest
    close. No offs apply.
*/
package rota

import "time"

// ShiftDistributor fills the open/mid/close buckets.
type ShiftDistributor struct{}

func (d *ShiftDistributor) Name() string { return "shift-distribution" }

func (d *ShiftDistributor) Apply(days []DaySchedule, roster Roster) {
	for i := range days {
		day := &days[i]
		if day.HolidayClosed {
			continue
		}
		if day.EffectiveLastDay {
			distributeLastDay(day, roster)
			continue
		}
		if day.Weekday == time.Sunday {
			continue
		}
		d.distributeDay(days, i, roster)
	}
}

func (d *ShiftDistributor) distributeDay(days []DaySchedule, i int, roster Roster) {
	day := &days[i]

	var working []string
	for _, emp := range roster {
		if !day.IsOff(emp.Name) {
			working = append(working, emp.Name)
		}
	}

	// 1. Forced openers seed the open slots.
	for _, name := range day.ForcedOpener {
		if len(day.Open) >= OpenCapacity {
			break
		}
		if !containsName(day.Open, name) {
			day.Open = append(day.Open, name)
		}
	}

	// 2. Voluntary fill, subject to the Friday/Saturday exclusions.
	for _, name := range working {
		if len(day.Open) >= OpenCapacity {
			break
		}
		if containsName(day.ForcedOpener, name) || containsName(day.ForcedCloser, name) {
			continue
		}
		if d.excludedFromOpen(days, i, name) || containsName(day.Open, name) {
			continue
		}
		day.Open = append(day.Open, name)
	}

	// 3. Everyone not opening splits between close and mid.
	var remaining []string
	for _, name := range working {
		if !containsName(day.Open, name) {
			remaining = append(remaining, name)
		}
	}

	for _, name := range remaining {
		if containsName(day.ForcedCloser, name) {
			day.Close = append(day.Close, name)
		}
	}

	target := (len(remaining) + 1) / 2
	for _, name := range remaining {
		if len(day.Close) >= target {
			break
		}
		if containsName(day.ForcedCloser, name) || containsName(day.ForcedOpener, name) {
			continue
		}
		day.Close = append(day.Close, name)
	}

	for _, name := range remaining {
		if !containsName(day.Close, name) {
			day.Mid = append(day.Mid, name)
		}
	}
}

// excludedFromOpen reports whether a candidate is barred from the voluntary
// open fill on day i. Forced openers are never run through this filter.
func (d *ShiftDistributor) excludedFromOpen(days []DaySchedule, i int, name string) bool {
	day := &days[i]
	switch day.Weekday {
	case time.Friday:
		// Working tomorrow: do not also open today.
		if i+1 < len(days) {
			sat := &days[i+1]
			if sat.Weekday == time.Saturday && !sat.HolidayClosed && !sat.IsOff(name) {
				return true
			}
		}
	case time.Saturday:
		// No back-to-back opens across the Friday/Saturday boundary.
		if i > 0 {
			fri := &days[i-1]
			if fri.Weekday == time.Friday && containsName(fri.Open, name) {
				return true
			}
		}
	}
	return false
}

// distributeLastDay schedules the whole roster: first two open, next
// floor-half of the remainder mid, the rest close.
func distributeLastDay(day *DaySchedule, roster Roster) {
	names := roster.Names()
	if len(names) == 0 {
		return
	}

	o := OpenCapacity
	if len(names) < o {
		o = len(names)
	}
	day.Open = append([]string(nil), names[:o]...)

	rest := names[o:]
	m := len(rest) / 2
	day.Mid = append([]string(nil), rest[:m]...)
	day.Close = append([]string(nil), rest[m:]...)
}
