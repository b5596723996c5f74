/*
forced.go - Forced opener/closer derivation

PURPOSE:
  Third pipeline stage. An employee's shift on the days flanking a day off
  is not free: the day before your off day you open (leave early), the day
  after it you close. This stage reads the finished off-day picture and
  records those obligations; the distributor honors them.

RULES:
  forcedOpener on D: everyone in D+1's offList, provided D+1 is neither a
  Sunday nor a closed holiday, and they are not off on D itself.

  forcedCloser on D: everyone in D-1's offList, provided D-1 is not a
  closed holiday, neither D nor D-1 is a Sunday, and they are not off on D.

  Closed holidays never force anything in either direction: a closure is
  not a day off, and no one is owed an early or late shift around it.
*/
package rota

import "time"

// ForcedShiftResolver derives forced open/close obligations.
type ForcedShiftResolver struct{}

func (r *ForcedShiftResolver) Name() string { return "forced-shifts" }

func (r *ForcedShiftResolver) Apply(days []DaySchedule, roster Roster) {
	for i := range days {
		day := &days[i]
		if day.HolidayClosed || day.EffectiveLastDay {
			continue
		}

		if i+1 < len(days) {
			next := &days[i+1]
			if next.Weekday != time.Sunday && !next.HolidayClosed {
				for _, name := range next.OffList {
					if !day.IsOff(name) {
						day.ForcedOpener = append(day.ForcedOpener, name)
					}
				}
			}
		}

		if i > 0 {
			prev := &days[i-1]
			if !prev.HolidayClosed && day.Weekday != time.Sunday && prev.Weekday != time.Sunday {
				for _, name := range prev.OffList {
					if !day.IsOff(name) {
						day.ForcedCloser = append(day.ForcedCloser, name)
					}
				}
			}
		}
	}
}
