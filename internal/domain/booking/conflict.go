package booking

import (
	"time"

	"github.com/salonbook/salon-scheduler/internal/models"
)

// Overlaps reports whether the half-open intervals [s1,e1) and [s2,e2)
// intersect. Touching intervals (e1 == s2 or e2 == s1) do not conflict,
// so back-to-back bookings are allowed.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// ConflictsAny reports whether the candidate interval [start,end) collides
// with any non-cancelled booking. An invalid candidate (end <= start) fails
// closed and is reported as conflicting.
func ConflictsAny(start, end time.Time, bookings []models.Booking) bool {
	if !end.After(start) {
		return true
	}

	for _, b := range bookings {
		if b.Status == string(StatusCancelled) {
			continue
		}
		if Overlaps(start, end, b.StartTime, b.EndTime) {
			return true
		}
	}

	return false
}
