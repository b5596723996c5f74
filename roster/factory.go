/*
factory.go - JSON roster conversion

PURPOSE:
  Converts a JSON roster definition into a rota.Roster. This is how the
  admin UI and the store exchange rosters: a config row is one JSON
  document, parsed and validated here before it ever reaches the engine.

JSON SCHEMA:
  {
    "employees": [
      {"name": "Ron", "fixed_off_day": 2, "sunday_schedule": true},
      {"name": "Moudy", "fixed_off_day": 2, "sunday_schedule": false}
    ]
  }

  fixed_off_day uses the rota sheet's numbering: 0 = Sunday ... 6 = Saturday.
*/
package roster

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kaikoapy/basecamp-sub000/rota"
)

// RosterJSON is the JSON representation of a roster config.
type RosterJSON struct {
	Employees []EmployeeJSON `json:"employees"`
}

// EmployeeJSON is one roster entry on the wire.
type EmployeeJSON struct {
	Name           string `json:"name"`
	FixedOffDay    int    `json:"fixed_off_day"`
	SundaySchedule bool   `json:"sunday_schedule"`
}

// Parse converts a JSON roster document into a validated rota.Roster.
func Parse(data []byte) (rota.Roster, error) {
	var doc RosterJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid roster JSON: %w", err)
	}
	if len(doc.Employees) == 0 {
		return nil, fmt.Errorf("roster has no employees")
	}

	r := make(rota.Roster, len(doc.Employees))
	for i, e := range doc.Employees {
		r[i] = rota.Employee{
			Name:           e.Name,
			FixedOffDay:    time.Weekday(e.FixedOffDay),
			SundaySchedule: e.SundaySchedule,
		}
	}
	if err := Validate(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Marshal renders a roster back into its JSON config form.
func Marshal(r rota.Roster) ([]byte, error) {
	doc := RosterJSON{Employees: make([]EmployeeJSON, len(r))}
	for i, e := range r {
		doc.Employees[i] = EmployeeJSON{
			Name:           e.Name,
			FixedOffDay:    int(e.FixedOffDay),
			SundaySchedule: e.SundaySchedule,
		}
	}
	return json.Marshal(doc)
}
