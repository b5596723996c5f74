/*
Package roster holds the dealership's employee roster configuration.

PURPOSE:
  The generation engine is roster-agnostic; this package owns the concrete
  crew. It ships the compiled-in default roster the store runs with, plus a
  JSON factory so a deployment can swap the crew without a rebuild (the
  admin UI stores roster configs as JSON rows).

VALIDATION:
  The engine keys every membership check on employee name, so names must be
  unique and non-empty; fixed off days must be real weekdays. Validate is
  run on every parsed roster and on the default at startup (via tests).

SEE ALSO:
  - rota: the generation engine consuming Roster values
  - factory.go: JSON parsing
*/
package roster

import (
	"fmt"
	"time"

	"github.com/kaikoapy/basecamp-sub000/rota"
)

// Default returns the compiled-in sales-floor roster. The order is the
// seniority order the rota sheet has always used; the engine's tie-breaks
// depend on it, so do not reorder casually.
func Default() rota.Roster {
	return rota.Roster{
		{Name: "Ron", FixedOffDay: time.Tuesday, SundaySchedule: true},
		{Name: "Moudy", FixedOffDay: time.Tuesday, SundaySchedule: false},
		{Name: "Johnny", FixedOffDay: time.Wednesday, SundaySchedule: true},
		{Name: "Alex", FixedOffDay: time.Thursday, SundaySchedule: false},
		{Name: "Issa", FixedOffDay: time.Monday, SundaySchedule: true},
		{Name: "George", FixedOffDay: time.Friday, SundaySchedule: false},
	}
}

// Validate checks the invariants the engine relies on.
func Validate(r rota.Roster) error {
	seen := make(map[string]bool, len(r))
	for i, emp := range r {
		if emp.Name == "" {
			return fmt.Errorf("employee %d: name is required", i)
		}
		if seen[emp.Name] {
			return fmt.Errorf("duplicate employee name %q", emp.Name)
		}
		seen[emp.Name] = true
		if emp.FixedOffDay < time.Sunday || emp.FixedOffDay > time.Saturday {
			return fmt.Errorf("employee %q: fixed off day %d out of range", emp.Name, emp.FixedOffDay)
		}
	}
	return nil
}
