/*
report.go - Per-employee shift-load report

PURPOSE:
  Summarizes a generated window per employee: how many opens, mids, closes,
  Sundays, days off, and weekend-off grants they drew, plus each employee's
  close share as an exact percentage. The dashboard renders this to show
  the month's load is spread fairly.

PRECISION:
  Shares are computed with decimal arithmetic, not floats; two employees
  with 5 closes each must show the identical share.

SCOPE:
  Only days attributed to the target month count: prev-month padding is
  display chrome, but next-month spillover through the effective last day
  belongs to this sales month and is included.
*/
package rota

import (
	"github.com/shopspring/decimal"
)

// ShiftLoad is one employee's tally over a generated window.
type ShiftLoad struct {
	Name        string `json:"name"`
	Opens       int    `json:"opens"`
	Mids        int    `json:"mids"`
	Closes      int    `json:"closes"`
	Sundays     int    `json:"sundays"`
	DaysOff     int    `json:"days_off"`
	WeekendOffs int    `json:"weekend_offs"`

	// CloseShare is closes as a percentage of this employee's worked
	// open/mid/close shifts, rounded to one decimal place.
	CloseShare decimal.Decimal `json:"close_share"`
}

// BuildShiftLoadReport tallies the window per employee in roster order.
func BuildShiftLoadReport(days []DaySchedule, roster Roster) []ShiftLoad {
	loads := make([]ShiftLoad, len(roster))
	for i, emp := range roster {
		loads[i].Name = emp.Name
	}
	index := make(map[string]*ShiftLoad, len(roster))
	for i := range loads {
		index[loads[i].Name] = &loads[i]
	}

	tally := func(names []string, bump func(*ShiftLoad)) {
		for _, name := range names {
			if load, ok := index[name]; ok {
				bump(load)
			}
		}
	}

	for i := range days {
		day := &days[i]
		if day.PrevMonth {
			continue
		}
		tally(day.Open, func(l *ShiftLoad) { l.Opens++ })
		tally(day.Mid, func(l *ShiftLoad) { l.Mids++ })
		tally(day.Close, func(l *ShiftLoad) { l.Closes++ })
		tally(day.SundayShift, func(l *ShiftLoad) { l.Sundays++ })
		tally(day.OffList, func(l *ShiftLoad) { l.DaysOff++ })
		if day.WeekendOff != "" {
			if load, ok := index[day.WeekendOff]; ok {
				load.WeekendOffs++
			}
		}
	}

	hundred := decimal.NewFromInt(100)
	for i := range loads {
		l := &loads[i]
		worked := l.Opens + l.Mids + l.Closes
		if worked == 0 {
			l.CloseShare = decimal.Zero
			continue
		}
		l.CloseShare = decimal.NewFromInt(int64(l.Closes)).
			Mul(hundred).
			Div(decimal.NewFromInt(int64(worked))).
			Round(1)
	}
	return loads
}
