/*
weekend.go - Rotating combined Saturday+Sunday off

PURPOSE:
  Second pipeline stage. Once per week, one employee who is due off on
  Sunday but scheduled to work Saturday is granted the Saturday off too,
  giving a full weekend. The pick rotates through eligible employees so
  the perk spreads evenly.

FAIRNESS:
  The rotation cursor is a plain counter owned by this stage instance,
  advanced once per successful pick and applied modulo the week's eligible
  set. It persists across the whole generation run (not per week) and dies
  with it; a week with nobody eligible leaves the cursor untouched so a
  skipped week does not shift whose turn it is.

EXCLUSIONS:
  - The effective last day is never given away.
  - A Saturday whose following Sunday is a closed holiday grants nothing:
    the Sunday is already a day nobody works.
  - A closed-holiday Saturday is not scheduled at all, so it cannot carry
    an off entry either.
*/
package rota

import "time"

// WeekendRotationAssigner grants the rotating weekend off.
type WeekendRotationAssigner struct {
	rotation int
}

func (a *WeekendRotationAssigner) Name() string { return "weekend-rotation" }

func (a *WeekendRotationAssigner) Apply(days []DaySchedule, roster Roster) {
	for i := range days {
		sat := &days[i]
		if sat.Weekday != time.Saturday || sat.EffectiveLastDay || sat.HolidayClosed {
			continue
		}
		if i+1 >= len(days) {
			continue
		}
		sun := &days[i+1]
		if sun.HolidayClosed {
			continue
		}

		var eligible []string
		for _, emp := range roster {
			if !sat.IsOff(emp.Name) && sun.IsOff(emp.Name) {
				eligible = append(eligible, emp.Name)
			}
		}
		if len(eligible) == 0 {
			continue
		}

		pick := eligible[a.rotation%len(eligible)]
		a.rotation++

		sat.OffList = append(sat.OffList, pick)
		sat.WeekendOff = pick
	}
}
