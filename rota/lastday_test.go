package rota_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kaikoapy/basecamp-sub000/rota"
)

func TestEffectiveLastDay(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  string
	}{
		{
			// Jan 31 2024 is a Wednesday, nothing to skip.
			name: "plain business day", year: 2024, month: time.January,
			want: "2024-01-31",
		},
		{
			// Aug 31 2024 is a Saturday, Sep 1 a Sunday: spill to Monday
			// Sep 2 in the NEXT month.
			name: "weekend spillover into next month", year: 2024, month: time.August,
			want: "2024-09-02",
		},
		{
			// Nov 30 2024 Saturday -> Dec 1 Sunday -> Dec 2 Monday.
			name: "november weekend spillover", year: 2024, month: time.November,
			want: "2024-12-02",
		},
		{
			// Dec 31 2024 is New Year's Eve (a holiday even though the
			// store is open), Jan 1 is closed: spill to Jan 2 2025.
			name: "holiday chain at year end", year: 2024, month: time.December,
			want: "2025-01-02",
		},
		{
			// May 31 2025 Saturday -> Jun 1 Sunday -> Jun 2 Monday.
			name: "may 2025 spillover", year: 2025, month: time.May,
			want: "2025-06-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rota.EffectiveLastDay(tt.year, tt.month)
			assert.Equal(t, tt.want, got.Format("2006-01-02"))
		})
	}
}

func TestLastCalendarDay(t *testing.T) {
	assert.Equal(t, "2024-02-29", rota.LastCalendarDay(2024, time.February).Format("2006-01-02"), "leap year")
	assert.Equal(t, "2023-02-28", rota.LastCalendarDay(2023, time.February).Format("2006-01-02"))
	assert.Equal(t, "2024-12-31", rota.LastCalendarDay(2024, time.December).Format("2006-01-02"))
}
