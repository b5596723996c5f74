/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These decouple the
  engine's internal types from the wire contract: dates go out as plain
  "2006-01-02" strings and weekdays as 0-6 numbers (Sunday=0), which is
  what the calendar UI and the PDF exporter expect.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

SEE ALSO:
  - handlers.go: Uses these types
  - rota/types.go: The internal DaySchedule these mirror
*/
package api

import (
	"time"

	"github.com/kaikoapy/basecamp-sub000/roster"
	"github.com/kaikoapy/basecamp-sub000/rota"
)

const dateLayout = "2006-01-02"

// DayScheduleDTO is one day of the rota on the wire.
type DayScheduleDTO struct {
	Date    string `json:"date"`
	Weekday int    `json:"weekday"`

	Open  []string `json:"open"`
	Mid   []string `json:"mid"`
	Close []string `json:"close"`

	OffList      []string `json:"off_list"`
	ForcedOpener []string `json:"forced_opener"`
	ForcedCloser []string `json:"forced_closer"`
	WeekendOff   string   `json:"weekend_off,omitempty"`
	SundayShift  []string `json:"sunday_shift,omitempty"`

	Holiday       string `json:"holiday,omitempty"`
	HolidayClosed bool   `json:"holiday_closed,omitempty"`

	PrevMonth        bool `json:"prev_month,omitempty"`
	NextMonth        bool `json:"next_month,omitempty"`
	EffectiveLastDay bool `json:"effective_last_day,omitempty"`
}

// ScheduleDTO wraps a generated or published month.
type ScheduleDTO struct {
	Year      int              `json:"year"`
	Month     int              `json:"month"`
	Days      []DayScheduleDTO `json:"days"`
	Published bool             `json:"published"`
}

func toDayDTO(d rota.DaySchedule) DayScheduleDTO {
	return DayScheduleDTO{
		Date:             d.Date.Format(dateLayout),
		Weekday:          int(d.Weekday),
		Open:             emptyIfNil(d.Open),
		Mid:              emptyIfNil(d.Mid),
		Close:            emptyIfNil(d.Close),
		OffList:          emptyIfNil(d.OffList),
		ForcedOpener:     emptyIfNil(d.ForcedOpener),
		ForcedCloser:     emptyIfNil(d.ForcedCloser),
		WeekendOff:       d.WeekendOff,
		SundayShift:      d.SundayShift,
		Holiday:          d.Holiday,
		HolidayClosed:    d.HolidayClosed,
		PrevMonth:        d.PrevMonth,
		NextMonth:        d.NextMonth,
		EffectiveLastDay: d.EffectiveLastDay,
	}
}

func toScheduleDTO(year int, month time.Month, days []rota.DaySchedule, published bool) ScheduleDTO {
	dto := ScheduleDTO{Year: year, Month: int(month), Published: published}
	dto.Days = make([]DayScheduleDTO, len(days))
	for i, d := range days {
		dto.Days[i] = toDayDTO(d)
	}
	return dto
}

// emptyIfNil keeps list fields as [] rather than null on the wire.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// OverrideRequest is a manual shift move from the editor.
type OverrideRequest struct {
	Date     string `json:"date"`
	Employee string `json:"employee"`
	ToShift  string `json:"to_shift"`
}

// HolidayDTO is one resolved holiday for a year.
type HolidayDTO struct {
	Date   string `json:"date"`
	Name   string `json:"name"`
	Closed bool   `json:"closed"`
}

// ShiftLoadDTO is one employee's load summary.
type ShiftLoadDTO struct {
	Name        string `json:"name"`
	Opens       int    `json:"opens"`
	Mids        int    `json:"mids"`
	Closes      int    `json:"closes"`
	Sundays     int    `json:"sundays"`
	DaysOff     int    `json:"days_off"`
	WeekendOffs int    `json:"weekend_offs"`
	CloseShare  string `json:"close_share"`
}

func toShiftLoadDTOs(loads []rota.ShiftLoad) []ShiftLoadDTO {
	out := make([]ShiftLoadDTO, len(loads))
	for i, l := range loads {
		out[i] = ShiftLoadDTO{
			Name:        l.Name,
			Opens:       l.Opens,
			Mids:        l.Mids,
			Closes:      l.Closes,
			Sundays:     l.Sundays,
			DaysOff:     l.DaysOff,
			WeekendOffs: l.WeekendOffs,
			CloseShare:  l.CloseShare.String(),
		}
	}
	return out
}

// RosterDTO is the active roster on the wire; it reuses the config schema
// the factory parses, so GET and PUT are symmetric.
type RosterDTO = roster.RosterJSON
