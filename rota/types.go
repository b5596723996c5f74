/*
Package rota generates the monthly staff schedule for the dealership.

PURPOSE:
  Given a year/month and an employee roster, produce a day-by-day assignment
  of shifts (open / mid / close / off) for the whole calendar month, honoring
  holiday closures, each employee's fixed weekly day off, the fortnightly
  Sunday rotation, a fairness-rotated weekend off, and the forced open/close
  rules tied to adjacent days off.

KEY CONCEPTS IN THIS FILE (types.go):
  - Employee: An immutable roster entry (name, fixed off day, Sunday rotation)
  - Roster: The ordered employee list; order matters for tie-breaking
  - DaySchedule: The per-day output record built up across pipeline stages

DESIGN PRINCIPLES:
  1. Purity: Generate() is a pure function of (year, month, roster); no state
     survives a generation call
  2. Determinism: all tie-breaks fall back to roster order
  3. Serializability: DaySchedule carries only primitives and string lists so
     the UI, store, and exporters can consume it directly

USAGE:
  gen := rota.NewGenerator(roster)
  days, err := gen.Generate(2024, time.January)

SEE ALSO:
  - generator.go: Stage pipeline and orchestration
  - calendar.go: Holiday table and Thanksgiving computation
  - distribute.go: open/mid/close bucketing rules
*/
package rota

import (
	"time"
)

// =============================================================================
// EMPLOYEE & ROSTER
// =============================================================================

// Employee is an immutable roster entry. Name is the unique identifier the
// whole pipeline keys on; the algorithm relies on name uniqueness for all
// list-membership checks.
type Employee struct {
	Name string `json:"name"`

	// FixedOffDay is the weekday this employee is always off
	// (time.Sunday == 0, matching the shop's rota sheet).
	FixedOffDay time.Weekday `json:"fixed_off_day"`

	// SundaySchedule selects which half of the fortnightly rotation the
	// employee works: true = even weeks, false = odd weeks.
	SundaySchedule bool `json:"sunday_schedule"`
}

// Roster is the ordered list of employees. Order is significant: every
// deterministic tie-break (open fill, closer fill, last-day split) walks the
// roster front to back.
type Roster []Employee

// Names returns the employee names in roster order.
func (r Roster) Names() []string {
	names := make([]string, len(r))
	for i, e := range r {
		names[i] = e.Name
	}
	return names
}

// ByName returns the employee with the given name, or nil.
func (r Roster) ByName(name string) *Employee {
	for i := range r {
		if r[i].Name == name {
			return &r[i]
		}
	}
	return nil
}

// =============================================================================
// DAY SCHEDULE - Per-day output record
// =============================================================================

// OpenCapacity is the maximum number of openers on any day.
const OpenCapacity = 2

// DaySchedule is the mutable per-day record the pipeline stages fill in.
// One generation call owns the whole slice; nothing is shared across calls.
type DaySchedule struct {
	Date    time.Time    `json:"date"`
	Weekday time.Weekday `json:"weekday"`

	// Shift buckets, filled by ShiftDistributor. Open holds at most
	// OpenCapacity names.
	Open  []string `json:"open"`
	Mid   []string `json:"mid"`
	Close []string `json:"close"`

	// OffList holds everyone off this day (fixed off day, Sunday rotation,
	// or the rotating weekend off). Empty on closed holidays: nobody is
	// "off" on a day nobody is scheduled at all.
	OffList []string `json:"off_list"`

	// Forced shift obligations derived from adjacent off days.
	ForcedOpener []string `json:"forced_opener"`
	ForcedCloser []string `json:"forced_closer"`

	// WeekendOff names the single employee granted the rotating combined
	// Saturday+Sunday off (set on the Saturday record).
	WeekendOff string `json:"weekend_off,omitempty"`

	// SundayShift holds the crew working the single Sunday shift. Only set
	// when Weekday is Sunday.
	SundayShift []string `json:"sunday_shift,omitempty"`

	// Holiday name if the date is a holiday; set even for non-closed
	// holidays, which still constrain the weekend rotation and the
	// effective-last-day search.
	Holiday       string `json:"holiday,omitempty"`
	HolidayClosed bool   `json:"holiday_closed,omitempty"`

	// Calendar-grid padding flags for days outside the target month.
	PrevMonth bool `json:"prev_month,omitempty"`
	NextMonth bool `json:"next_month,omitempty"`

	// EffectiveLastDay is true for exactly one day per generation: the
	// resolved last business day of the sales month.
	EffectiveLastDay bool `json:"effective_last_day,omitempty"`
}

// IsOff reports whether the named employee is off this day.
func (d *DaySchedule) IsOff(name string) bool {
	return containsName(d.OffList, name)
}

// WorkingShift returns which bucket the named employee landed in
// ("open", "mid", "close", "sunday", "off") or "" if unscheduled.
func (d *DaySchedule) WorkingShift(name string) string {
	switch {
	case containsName(d.Open, name):
		return ShiftOpen
	case containsName(d.Mid, name):
		return ShiftMid
	case containsName(d.Close, name):
		return ShiftClose
	case containsName(d.SundayShift, name):
		return ShiftSunday
	case containsName(d.OffList, name):
		return ShiftOff
	}
	return ""
}

// Shift bucket names, used by overrides and the API.
const (
	ShiftOpen   = "open"
	ShiftMid    = "mid"
	ShiftClose  = "close"
	ShiftSunday = "sunday"
	ShiftOff    = "off"
)

// =============================================================================
// SMALL HELPERS
// =============================================================================

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func removeName(names []string, name string) []string {
	out := names[:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
