package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonbook/salon-scheduler/internal/models"
)

func day(t *testing.T, weekday time.Weekday) time.Time {
	t.Helper()

	// 2026-03-02 is a Monday; walk forward to the wanted weekday.
	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	for base.Weekday() != weekday {
		base = base.AddDate(0, 0, 1)
	}
	return base
}

func at(date time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

func window(weekday int, start, end string) models.AvailabilityWindow {
	return models.AvailabilityWindow{
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
		Active:    true,
	}
}

func starts(slots []Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start.Format("15:04"))
	}
	return out
}

func TestGenerateSlots_FullDayNoBookings(t *testing.T) {
	date := day(t, time.Monday)
	windows := []models.AvailabilityWindow{window(int(time.Monday), "09:00", "17:00")}

	slots := GenerateSlots(date, 60, windows, nil)

	require.Len(t, slots, 15)
	assert.Equal(t, "09:00", slots[0].Start.Format("15:04"))
	assert.Equal(t, "16:00", slots[len(slots)-1].Start.Format("15:04"))

	// 16:30 would end at 17:30, past the window, so it is skipped entirely.
	assert.NotContains(t, starts(slots), "16:30")

	for _, s := range slots {
		assert.True(t, s.Available)
		assert.Equal(t, 60*time.Minute, s.End.Sub(s.Start))
	}
}

func TestGenerateSlots_ExistingBookingBlocksOverlaps(t *testing.T) {
	date := day(t, time.Monday)
	windows := []models.AvailabilityWindow{window(int(time.Monday), "09:00", "17:00")}
	bookings := []models.Booking{{
		StartTime: at(date, "10:00"),
		EndTime:   at(date, "11:00"),
		Status:    string(StatusConfirmed),
	}}

	slots := GenerateSlots(date, 60, windows, bookings)

	byStart := map[string]Slot{}
	for _, s := range slots {
		byStart[s.Start.Format("15:04")] = s
	}

	// 09:30-10:30 and 10:30-11:30 both intersect 10:00-11:00.
	assert.False(t, byStart["09:30"].Available)
	assert.False(t, byStart["10:00"].Available)
	assert.False(t, byStart["10:30"].Available)

	// Back-to-back is fine on both sides.
	assert.True(t, byStart["09:00"].Available)
	assert.True(t, byStart["11:00"].Available)
}

func TestGenerateSlots_CancelledBookingFreesSlot(t *testing.T) {
	date := day(t, time.Tuesday)
	windows := []models.AvailabilityWindow{window(int(time.Tuesday), "09:00", "12:00")}
	bookings := []models.Booking{{
		StartTime: at(date, "10:00"),
		EndTime:   at(date, "11:00"),
		Status:    string(StatusCancelled),
	}}

	slots := GenerateSlots(date, 60, windows, bookings)

	for _, s := range slots {
		assert.True(t, s.Available, "slot %s should be free", s.Start.Format("15:04"))
	}
}

func TestGenerateSlots_DurationLongerThanGridStep(t *testing.T) {
	date := day(t, time.Wednesday)
	windows := []models.AvailabilityWindow{window(int(time.Wednesday), "09:00", "10:00")}

	slots := GenerateSlots(date, 45, windows, nil)

	// 09:30+45m ends 10:15, past the window end, so only 09:00 fits.
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].Start.Format("15:04"))
	assert.Equal(t, "09:45", slots[0].End.Format("15:04"))
}

func TestGenerateSlots_NoWindowForWeekday(t *testing.T) {
	date := day(t, time.Sunday)
	windows := []models.AvailabilityWindow{window(int(time.Monday), "09:00", "17:00")}

	slots := GenerateSlots(date, 30, windows, nil)

	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGenerateSlots_InactiveWindow(t *testing.T) {
	date := day(t, time.Thursday)
	w := window(int(time.Thursday), "09:00", "17:00")
	w.Active = false

	slots := GenerateSlots(date, 30, []models.AvailabilityWindow{w}, nil)

	assert.Empty(t, slots)
}

func TestGenerateSlots_NonPositiveDuration(t *testing.T) {
	date := day(t, time.Monday)
	windows := []models.AvailabilityWindow{window(int(time.Monday), "09:00", "17:00")}

	assert.Empty(t, GenerateSlots(date, 0, windows, nil))
	assert.Empty(t, GenerateSlots(date, -15, windows, nil))
}

func TestGenerateSlots_OrderedAndWithinWindow(t *testing.T) {
	date := day(t, time.Friday)
	windows := []models.AvailabilityWindow{window(int(time.Friday), "08:00", "18:30")}

	slots := GenerateSlots(date, 40, windows, nil)
	require.NotEmpty(t, slots)

	dayStart := at(date, "08:00")
	dayEnd := at(date, "18:30")

	for i, s := range slots {
		assert.False(t, s.Start.Before(dayStart))
		assert.False(t, s.End.After(dayEnd))
		if i > 0 {
			assert.Equal(t, SlotGridMinutes*time.Minute, s.Start.Sub(slots[i-1].Start))
		}
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	date := day(t, time.Monday)
	windows := []models.AvailabilityWindow{window(int(time.Monday), "09:00", "17:00")}
	bookings := []models.Booking{{
		StartTime: at(date, "13:00"),
		EndTime:   at(date, "14:00"),
		Status:    string(StatusPending),
	}}

	first := GenerateSlots(date, 60, windows, bookings)
	second := GenerateSlots(date, 60, windows, bookings)

	assert.Equal(t, first, second)
}
