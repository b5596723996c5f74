/*
generator.go - Schedule generation pipeline

PURPOSE:
  Orchestrates the month generation. Builds the calendar-grid window,
  stamps holiday/padding/last-day metadata onto one DaySchedule per day,
  then runs the four pipeline stages in a fixed order, each stage
  completing for every day before the next starts.

STAGE ORDER (load-bearing):
  1. OffDayAssigner        fixed off days + fortnightly Sunday rotation
  2. WeekendRotationAssigner  rotating combined Sat+Sun off
  3. ForcedShiftResolver   forced open/close from adjacent off days
  4. ShiftDistributor      open/mid/close bucketing

  Later stages read prior-day and next-day state written by earlier stages,
  so a stage must finish the whole window before its successor runs. The
  Stage type makes the dependency explicit instead of leaving it to code
  order inside one big loop.

WINDOW SHAPE:
  The window pads backward from the 1st to the Sunday on or before it
  (calendar-grid alignment) and, when the effective last day spills into
  the next month, forward through that day. Padding days carry
  PrevMonth/NextMonth flags so the UI can gray them out.

STATE:
  Each Generate call builds a fresh stage list; the weekend rotation cursor
  lives inside that call's WeekendRotationAssigner and dies with it.
  Concurrent Generate calls share nothing.
*/
package rota

import (
	"time"
)

// Stage is one pass of the generation pipeline. A stage mutates the day
// slice in place; the slice is owned by a single Generate call.
type Stage interface {
	Name() string
	Apply(days []DaySchedule, roster Roster)
}

// Generator produces month schedules for a fixed roster.
type Generator struct {
	Roster Roster
}

// NewGenerator creates a generator for the given roster.
func NewGenerator(roster Roster) *Generator {
	return &Generator{Roster: roster}
}

// Generate builds the full schedule window for the given month.
// The only failure mode is out-of-range input; everything past validation
// is deterministic and infallible.
func (g *Generator) Generate(year int, month time.Month) ([]DaySchedule, error) {
	if month < time.January || month > time.December {
		return nil, &InvalidArgumentError{Field: "month", Value: int(month), Reason: "must be 1-12"}
	}
	if year < 1 || year > 9999 {
		return nil, &InvalidArgumentError{Field: "year", Value: year, Reason: "must be 1-9999"}
	}

	days := buildWindow(year, month)

	stages := []Stage{
		&OffDayAssigner{LastSunday: lastSundayOfMonth(year, month)},
		&WeekendRotationAssigner{},
		&ForcedShiftResolver{},
		&ShiftDistributor{},
	}
	for _, stage := range stages {
		stage.Apply(days, g.Roster)
	}
	return days, nil
}

// buildWindow lays out one DaySchedule per day with date, holiday, padding,
// and effective-last-day metadata. All shift content is filled by stages.
func buildWindow(year int, month time.Month) []DaySchedule {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastOfMonth := LastCalendarDay(year, month)
	effectiveLast := EffectiveLastDay(year, month)

	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := lastOfMonth
	if effectiveLast.After(end) {
		end = effectiveLast
	}

	var days []DaySchedule
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := DaySchedule{
			Date:             d,
			Weekday:          d.Weekday(),
			PrevMonth:        d.Before(first),
			NextMonth:        d.After(lastOfMonth),
			EffectiveLastDay: sameDay(d, effectiveLast),
		}
		if h := ResolveHoliday(d); h != nil {
			day.Holiday = h.Name
			day.HolidayClosed = h.Closed
		}
		days = append(days, day)
	}
	return days
}

// lastSundayOfMonth returns the final Sunday inside the target month. The
// Sunday rotation is suspended on that day: everyone works.
func lastSundayOfMonth(year int, month time.Month) time.Time {
	d := LastCalendarDay(year, month)
	return d.AddDate(0, 0, -int(d.Weekday()))
}
