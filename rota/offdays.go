/*
offdays.go - Fixed off days and the fortnightly Sunday rotation

PURPOSE:
  First pipeline stage. Decides, for every day in the window, who is off
  (fixed weekly off day) and who works the single Sunday shift under the
  fortnightly rotation.

SUNDAY ROTATION:
  The window always starts on a Sunday, so weeks are the natural
  index/7 blocks. An employee with SundaySchedule works even-numbered
  weeks; one without works odd-numbered weeks. Exception: on the last
  Sunday of the target month the rotation is suspended and everyone not
  already off works the Sunday shift (month-end push).

SKIPPED DAYS:
  Closed holidays carry no off-day bookkeeping at all, and on the
  effective last day the whole roster works, so both are skipped here.
*/
package rota

import "time"

// OffDayAssigner applies fixed off days and the Sunday rotation.
type OffDayAssigner struct {
	// LastSunday is the final Sunday of the target month, on which the
	// rotation is suspended.
	LastSunday time.Time
}

func (a *OffDayAssigner) Name() string { return "off-days" }

func (a *OffDayAssigner) Apply(days []DaySchedule, roster Roster) {
	for i := range days {
		day := &days[i]
		if day.HolidayClosed || day.EffectiveLastDay {
			continue
		}

		for _, emp := range roster {
			if emp.FixedOffDay == day.Weekday && !day.IsOff(emp.Name) {
				day.OffList = append(day.OffList, emp.Name)
			}
		}

		if day.Weekday != time.Sunday {
			continue
		}

		if sameDay(day.Date, a.LastSunday) {
			// Month-end Sunday: rotation suspended, full crew works.
			for _, emp := range roster {
				if !day.IsOff(emp.Name) {
					day.SundayShift = append(day.SundayShift, emp.Name)
				}
			}
			continue
		}

		week := i / 7
		for _, emp := range roster {
			works := (emp.SundaySchedule && week%2 == 0) || (!emp.SundaySchedule && week%2 == 1)
			switch {
			case !works && !day.IsOff(emp.Name):
				day.OffList = append(day.OffList, emp.Name)
			case works && !day.IsOff(emp.Name):
				day.SundayShift = append(day.SundayShift, emp.Name)
			}
		}
	}
}
