package rota_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// FIXED OFF DAYS
// =============================================================================

func TestOffDays_FixedWeeklyOffDay(t *testing.T) {
	// GIVEN: George is always off on Fridays
	// THEN: every Friday in the window has him off, except closed
	//       holidays and the effective last day

	days := mustGenerate(t, 2024, time.March)
	for _, day := range days {
		if day.Weekday != time.Friday || day.HolidayClosed || day.EffectiveLastDay {
			continue
		}
		assert.True(t, day.IsOff("George"), "George must be off Friday %s", day.Date.Format("2006-01-02"))
	}
}

func TestOffDays_EffectiveLastDayOverridesFixedOff(t *testing.T) {
	// Jan 31 2024 is a Wednesday, Johnny's fixed off day, but it is also
	// the effective last day: he works like everyone else.
	days := mustGenerate(t, 2024, time.January)
	jan31 := dayOn(t, days, "2024-01-31")
	assert.False(t, jan31.IsOff("Johnny"))
	assert.NotEqual(t, "", jan31.WorkingShift("Johnny"))
}

// =============================================================================
// SUNDAY ROTATION
// =============================================================================

func TestOffDays_SundayRotationAlternates(t *testing.T) {
	// GIVEN: the window for January 2024 (weeks numbered from Sunday
	//        Dec 31 = week 0)
	// THEN: SundaySchedule employees work even weeks, the rest odd weeks

	days := mustGenerate(t, 2024, time.January)

	// Week 1 Sunday (odd): the non-SundaySchedule half works.
	jan7 := dayOn(t, days, "2024-01-07")
	assert.ElementsMatch(t, []string{"Moudy", "Alex", "George"}, jan7.SundayShift)
	assert.True(t, jan7.IsOff("Ron"))
	assert.True(t, jan7.IsOff("Johnny"))
	assert.True(t, jan7.IsOff("Issa"))

	// Week 2 Sunday (even): the halves swap.
	jan14 := dayOn(t, days, "2024-01-14")
	assert.ElementsMatch(t, []string{"Ron", "Johnny", "Issa"}, jan14.SundayShift)
	assert.True(t, jan14.IsOff("Moudy"))
	assert.True(t, jan14.IsOff("Alex"))
	assert.True(t, jan14.IsOff("George"))
}

func TestOffDays_LastSundayEveryoneWorks(t *testing.T) {
	// GIVEN: Jan 28 is the last Sunday of January 2024
	// THEN: the rotation is suspended; nobody sits out on rotation
	//       grounds and the whole crew staffs the Sunday shift

	days := mustGenerate(t, 2024, time.January)
	jan28 := dayOn(t, days, "2024-01-28")

	assert.ElementsMatch(t,
		[]string{"Ron", "Moudy", "Johnny", "Alex", "Issa", "George"},
		jan28.SundayShift)
	assert.Empty(t, jan28.OffList)
}

func TestOffDays_SundayShiftOnlyOnSundays(t *testing.T) {
	days := mustGenerate(t, 2024, time.January)
	for _, day := range days {
		if day.Weekday != time.Sunday {
			assert.Empty(t, day.SundayShift, "%s is not a Sunday", day.Date.Format("2006-01-02"))
		}
	}
}
