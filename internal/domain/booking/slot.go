package booking

import (
	"time"

	"github.com/salonbook/salon-scheduler/internal/models"
)

// SlotGridMinutes is the fixed spacing between candidate slot starts. It is
// independent of the service duration: a 45-minute service on the 30-minute
// grid still steps 09:00, 09:30, 10:00, ...
const SlotGridMinutes = 30

type Slot struct {
	Start     time.Time
	End       time.Time
	Available bool
}

type AvailabilityInput struct {
	ProfileID uint
	ServiceID uint
	Date      time.Time
}

// GenerateSlots maps one calendar day to its bookable slots.
//
// The window for date's weekday is resolved into absolute timestamps in
// date's location, then candidates are emitted on the grid. A candidate whose
// interval [cur, cur+duration) would end past the window end is skipped
// entirely, never truncated. The Available flag is the conflict check against
// the given bookings; cancelled bookings never occupy the calendar.
//
// Returns an empty sequence when no active window exists for the weekday or
// the duration is not positive. Pure: same inputs, same output.
func GenerateSlots(
	date time.Time,
	durationMin int,
	windows []models.AvailabilityWindow,
	bookings []models.Booking,
) []Slot {

	if durationMin <= 0 {
		return []Slot{}
	}

	weekday := int(date.Weekday())

	var window *models.AvailabilityWindow
	for i := range windows {
		if windows[i].Weekday == weekday {
			window = &windows[i]
			break
		}
	}

	if window == nil || !window.Active || window.StartTime == "" || window.EndTime == "" {
		return []Slot{}
	}

	loc := date.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			date.Year(), date.Month(), date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	dayStart := parseHM(window.StartTime)
	dayEnd := parseHM(window.EndTime)

	duration := time.Duration(durationMin) * time.Minute
	grid := SlotGridMinutes * time.Minute

	slots := []Slot{}

	for cur := dayStart; cur.Before(dayEnd); cur = cur.Add(grid) {
		slotEnd := cur.Add(duration)
		if slotEnd.After(dayEnd) {
			continue
		}

		slots = append(slots, Slot{
			Start:     cur,
			End:       slotEnd,
			Available: !ConflictsAny(cur, slotEnd, bookings),
		})
	}

	return slots
}
