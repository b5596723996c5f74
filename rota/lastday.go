/*
lastday.go - Effective last business day of a sales month

PURPOSE:
  The sales period does not close on the literal last calendar day: if that
  day is a weekend or a holiday, the books stay open through the first
  normal business day after it, which can fall in the next calendar month.
  On that day the whole roster works and no off-day rules apply.

SEARCH:
  Start at the true last calendar day, advance one day at a time while the
  candidate is a Saturday, a Sunday, or any holiday (closed or not - an
  open New Year's Eve still cannot be the effective close). A qualifying
  day always exists within a week of month end, so the loop terminates.

SEE ALSO:
  - generator.go: Extends the generation window through a spillover
  - offdays.go / distribute.go: Special-case the effective last day
*/
package rota

import "time"

// LastCalendarDay returns the true last day of the given month.
func LastCalendarDay(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}

// EffectiveLastDay resolves the last business day attributed to the sales
// month. The result may fall in the following calendar month; callers
// compare the result's month against the requested one to detect spillover.
func EffectiveLastDay(year int, month time.Month) time.Time {
	day := LastCalendarDay(year, month)
	for {
		wd := day.Weekday()
		if wd != time.Saturday && wd != time.Sunday && ResolveHoliday(day) == nil {
			return day
		}
		day = day.AddDate(0, 0, 1)
	}
}
