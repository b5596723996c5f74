/*
override.go - Manual shift moves over a generated schedule

PURPOSE:
  The desk manager can drag an employee between buckets after a month is
  generated. The generator itself stays pure; an edit is recorded as an
  Override and replayed onto the day slice when the schedule is read.

SEMANTICS:
  An override removes the employee from whichever bucket they currently
  occupy on that date and appends them to the target bucket. Moving onto
  "off" adds to the off list; moving off a closed holiday is rejected the
  same way any unknown day is, since closed holidays carry no buckets.
  Forced-opener/closer markers are advisory history and are left intact.
*/
package rota

import (
	"errors"
	"fmt"
	"time"
)

// Override is one manual shift move, keyed by date and employee name.
type Override struct {
	Date     time.Time `json:"date"`
	Employee string    `json:"employee"`
	ToShift  string    `json:"to_shift"`
}

// ApplyOverride replays a single manual move onto the generated window.
func ApplyOverride(days []DaySchedule, ov Override) error {
	var day *DaySchedule
	for i := range days {
		if sameDay(days[i].Date, ov.Date) {
			day = &days[i]
			break
		}
	}
	if day == nil {
		return fmt.Errorf("%w: %s", ErrDayNotInWindow, ov.Date.Format("2006-01-02"))
	}
	if day.WorkingShift(ov.Employee) == "" {
		return fmt.Errorf("%w: %s on %s", ErrUnknownEmployee, ov.Employee, ov.Date.Format("2006-01-02"))
	}

	// Validate the target before touching the day: a rejected move must
	// leave the schedule exactly as it was.
	switch ov.ToShift {
	case ShiftOpen, ShiftMid, ShiftClose, ShiftSunday, ShiftOff:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownShift, ov.ToShift)
	}

	day.Open = removeName(day.Open, ov.Employee)
	day.Mid = removeName(day.Mid, ov.Employee)
	day.Close = removeName(day.Close, ov.Employee)
	day.SundayShift = removeName(day.SundayShift, ov.Employee)
	day.OffList = removeName(day.OffList, ov.Employee)

	switch ov.ToShift {
	case ShiftOpen:
		day.Open = append(day.Open, ov.Employee)
	case ShiftMid:
		day.Mid = append(day.Mid, ov.Employee)
	case ShiftClose:
		day.Close = append(day.Close, ov.Employee)
	case ShiftSunday:
		day.SundayShift = append(day.SundayShift, ov.Employee)
	case ShiftOff:
		day.OffList = append(day.OffList, ov.Employee)
	}
	return nil
}

// ApplyOverrides replays moves in order. A move that no longer applies
// (an employee dropped after a republish, a date outside the window) is
// skipped so it cannot take the rest of the month's edits down with it;
// the skipped moves are reported as one joined error, nil if all applied.
func ApplyOverrides(days []DaySchedule, overrides []Override) error {
	var skipped []error
	for _, ov := range overrides {
		if err := ApplyOverride(days, ov); err != nil {
			skipped = append(skipped, err)
		}
	}
	return errors.Join(skipped...)
}
