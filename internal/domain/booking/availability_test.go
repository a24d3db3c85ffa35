package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-09-07 is a Monday.
var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func workingDay() DayWindow {
	return DayWindow{
		Morning:   Period{Enabled: true, Start: "09:00", End: "12:00"},
		Afternoon: Period{Enabled: true, Start: "13:00", End: "17:30"},
		Evening:   Period{Start: "17:30", End: "20:30"},
	}
}

func times(slots []Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Time)
	}
	return out
}

func TestSlotsEmptyWeek(t *testing.T) {
	slots := Slots(SlotRequest{
		Week: Week{},
		Date: monday,
	})

	require.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestSlotsDisabledPeriodsProduceNothing(t *testing.T) {
	slots := Slots(SlotRequest{
		Week: Week{time.Monday: DefaultDayWindow()},
		Date: monday,
	})

	assert.Empty(t, slots)
}

func TestSlotsDefaultStride(t *testing.T) {
	slots := Slots(SlotRequest{
		Week:               Week{time.Monday: workingDay()},
		Date:               monday,
		ServiceDurationMin: 60,
	})

	assert.Equal(t,
		[]string{"09:00", "10:30", "13:00", "14:30", "16:00"},
		times(slots),
	)
}

func TestSlotsEveningAnchors(t *testing.T) {
	day := workingDay()
	day.Evening.Enabled = true

	slots := Slots(SlotRequest{
		Week:               Week{time.Monday: day},
		Date:               monday,
		ServiceDurationMin: 60,
	})

	assert.Equal(t,
		[]string{"09:00", "10:30", "13:00", "14:30", "16:00", "17:30", "19:00"},
		times(slots),
	)
}

func TestSlotsBlockingBookingRemovesOverlaps(t *testing.T) {
	slots := Slots(SlotRequest{
		Week: Week{time.Monday: workingDay()},
		Date: monday,
		Existing: []Busy{
			{Time: "13:00", DurationMin: 60, Status: StatusConfirmed},
		},
		ServiceDurationMin: 60,
	})

	assert.Equal(t,
		[]string{"09:00", "10:30", "14:30", "16:00"},
		times(slots),
	)
}

func TestSlotsNonBlockingStatusesKeepSlotOpen(t *testing.T) {
	for _, status := range []Status{
		StatusPending, StatusDeclined, StatusRescheduled, StatusCanceled,
	} {
		slots := Slots(SlotRequest{
			Week: Week{time.Monday: workingDay()},
			Date: monday,
			Existing: []Busy{
				{Time: "13:00", DurationMin: 60, Status: status},
			},
			ServiceDurationMin: 60,
		})

		assert.Contains(t, times(slots), "13:00", "status %s must not block", status)
	}
}

func TestSlotsEmergencyBlocks(t *testing.T) {
	slots := Slots(SlotRequest{
		Week: Week{time.Monday: workingDay()},
		Date: monday,
		Existing: []Busy{
			{Time: "13:00", DurationMin: 90, Status: StatusEmergency},
		},
		ServiceDurationMin: 60,
	})

	// 90 minutes from 13:00 reach into the 14:30 anchor's hour? No: the
	// busy interval is [780,870) and the 14:30 candidate starts at 870.
	assert.Equal(t,
		[]string{"09:00", "10:30", "14:30", "16:00"},
		times(slots),
	)
}

func TestSlotsPastAnchorsDroppedOnSameDay(t *testing.T) {
	now := time.Date(2026, 9, 7, 15, 0, 0, 0, time.UTC)

	slots := Slots(SlotRequest{
		Week:               Week{time.Monday: workingDay()},
		Date:               monday,
		ServiceDurationMin: 60,
		Now:                now,
	})

	assert.Equal(t, []string{"16:00"}, times(slots))
}

func TestSlotsPastFilterIgnoredOnFutureDate(t *testing.T) {
	// Now on a different day leaves the full set intact.
	now := time.Date(2026, 9, 1, 23, 0, 0, 0, time.UTC)

	slots := Slots(SlotRequest{
		Week:               Week{time.Monday: workingDay()},
		Date:               monday,
		ServiceDurationMin: 60,
		Now:                now,
	})

	assert.Len(t, slots, 5)
}

func TestSlotsLongServiceFitCheck(t *testing.T) {
	day := DayWindow{
		Afternoon: Period{Enabled: true, Start: "13:00", End: "17:30"},
	}

	slots := Slots(SlotRequest{
		Week:               Week{time.Monday: day},
		Date:               monday,
		ServiceDurationMin: 120,
	})

	// 16:00 + 120min would run past 17:30.
	assert.Equal(t, []string{"13:00", "14:30"}, times(slots))
}

func TestSlotsCustomInterval(t *testing.T) {
	day := DayWindow{
		Morning: Period{Enabled: true, Start: "09:00", End: "12:00"},
	}

	slots := Slots(SlotRequest{
		Week:               Week{time.Monday: day},
		Date:               monday,
		ServiceDurationMin: 30,
		SlotIntervalMin:    60,
	})

	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, times(slots))
}

func TestSlotsFormattedField(t *testing.T) {
	day := DayWindow{
		Afternoon: Period{Enabled: true, Start: "13:00", End: "17:30"},
	}

	slots := Slots(SlotRequest{
		Week:               Week{time.Monday: day},
		Date:               monday,
		ServiceDurationMin: 60,
	})

	require.NotEmpty(t, slots)
	assert.Equal(t, "13:00", slots[0].Time)
	assert.Equal(t, "1:00 PM", slots[0].Formatted)
}

func TestMinutesOfDay(t *testing.T) {
	min, err := MinutesOfDay("14:30")
	require.NoError(t, err)
	assert.Equal(t, 870, min)

	_, err = MinutesOfDay("25:00")
	assert.Error(t, err)

	_, err = MinutesOfDay("abc")
	assert.Error(t, err)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "09:00", FormatMinutes(540))
	assert.Equal(t, "17:30", FormatMinutes(1050))
}
