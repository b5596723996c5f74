/*
calendar.go - Dealership holiday calendar

PURPOSE:
  Resolves whether a date is a company holiday and whether the store is
  closed that day. The table is fixed: the dealership observes only four
  holidays, one of which (Thanksgiving) floats as the 4th Thursday of
  November and is computed rather than listed.

CLOSED vs OBSERVED:
  Closed == true means the store does not operate at all: no shifts, no
  off-day bookkeeping. A non-closed holiday (New Year's Eve) still runs a
  normal day but is excluded from the effective-last-day search and blocks
  the weekend rotation when it lands on the Sunday after a rotation
  Saturday.

SEE ALSO:
  - lastday.go: Uses holidays to find the effective last business day
  - generator.go: Stamps holiday metadata onto each DaySchedule
*/
package rota

import "time"

// Holiday is a fixed calendar entry. Computed holidays (Thanksgiving) are
// resolved in ResolveHoliday, not listed here.
type Holiday struct {
	Month  time.Month `json:"month"`
	Day    int        `json:"day"`
	Name   string     `json:"name"`
	Closed bool       `json:"closed"`
}

// fixedHolidays is the dealership's observed-holiday table.
var fixedHolidays = []Holiday{
	{Month: time.December, Day: 31, Name: "New Year's Eve", Closed: false},
	{Month: time.January, Day: 1, Name: "New Year's Day", Closed: true},
	{Month: time.December, Day: 25, Name: "Christmas", Closed: true},
}

// Thanksgiving returns the 4th Thursday of November for the given year.
func Thanksgiving(year int) time.Time {
	nov1 := time.Date(year, time.November, 1, 0, 0, 0, 0, time.UTC)
	// Days until the first Thursday, then three more weeks.
	offset := (int(time.Thursday) - int(nov1.Weekday()) + 7) % 7
	return nov1.AddDate(0, 0, offset+21)
}

// ResolveHoliday returns the holiday falling on the given date, or nil.
// Pure lookup; absence is a valid nil result, never an error.
func ResolveHoliday(date time.Time) *Holiday {
	for i := range fixedHolidays {
		h := fixedHolidays[i]
		if date.Month() == h.Month && date.Day() == h.Day {
			return &h
		}
	}
	if date.Month() == time.November && sameDay(date, Thanksgiving(date.Year())) {
		return &Holiday{Month: time.November, Day: date.Day(), Name: "Thanksgiving", Closed: true}
	}
	return nil
}

// ResolvedHoliday is a holiday pinned to a concrete date, for display.
type ResolvedHoliday struct {
	Date   time.Time `json:"date"`
	Name   string    `json:"name"`
	Closed bool      `json:"closed"`
}

// HolidaysForYear returns every observed holiday of the given year in
// calendar order.
func HolidaysForYear(year int) []ResolvedHoliday {
	tg := Thanksgiving(year)
	out := []ResolvedHoliday{
		{Date: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), Name: "New Year's Day", Closed: true},
		{Date: tg, Name: "Thanksgiving", Closed: true},
		{Date: time.Date(year, time.December, 25, 0, 0, 0, 0, time.UTC), Name: "Christmas", Closed: true},
		{Date: time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC), Name: "New Year's Eve", Closed: false},
	}
	return out
}
