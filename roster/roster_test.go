package roster_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaikoapy/basecamp-sub000/roster"
	"github.com/kaikoapy/basecamp-sub000/rota"
)

func TestDefault_IsValid(t *testing.T) {
	crew := roster.Default()
	require.NotEmpty(t, crew)
	assert.NoError(t, roster.Validate(crew))
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name string
		crew rota.Roster
	}{
		{
			name: "empty name",
			crew: rota.Roster{{Name: "", FixedOffDay: time.Monday}},
		},
		{
			name: "duplicate name",
			crew: rota.Roster{
				{Name: "Ron", FixedOffDay: time.Monday},
				{Name: "Ron", FixedOffDay: time.Tuesday},
			},
		},
		{
			name: "off day out of range",
			crew: rota.Roster{{Name: "Ron", FixedOffDay: time.Weekday(9)}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, roster.Validate(tt.crew))
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	// GIVEN: the default crew marshaled into its config form
	// WHEN: it is parsed back
	// THEN: the roster survives unchanged, order included

	crew := roster.Default()
	data, err := roster.Marshal(crew)
	require.NoError(t, err)

	parsed, err := roster.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, crew, parsed)
}

func TestParse_Rejections(t *testing.T) {
	_, err := roster.Parse([]byte(`not json`))
	assert.Error(t, err)

	_, err = roster.Parse([]byte(`{"employees": []}`))
	assert.Error(t, err, "empty roster")

	_, err = roster.Parse([]byte(`{"employees": [
		{"name": "Ron", "fixed_off_day": 2},
		{"name": "Ron", "fixed_off_day": 3}
	]}`))
	assert.Error(t, err, "duplicate names")

	_, err = roster.Parse([]byte(`{"employees": [
		{"name": "Ron", "fixed_off_day": 7}
	]}`))
	assert.Error(t, err, "weekday out of range")
}

func TestParse_WeekdayNumbering(t *testing.T) {
	// The config uses the rota sheet's numbering: 0 = Sunday.
	crew, err := roster.Parse([]byte(`{"employees": [
		{"name": "Ron", "fixed_off_day": 0, "sunday_schedule": true}
	]}`))
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, crew[0].FixedOffDay)
}
