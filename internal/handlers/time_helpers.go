package handlers

import (
	"time"

	"github.com/salonbook/salon-scheduler/internal/models"
	"github.com/salonbook/salon-scheduler/internal/timezone"
)

// resolve the salon's official timezone
func locationFromProfile(profile *models.Profile) *time.Location {
	if profile != nil {
		return timezone.Location(profile.Timezone)
	}
	return timezone.Location("")
}

func parseDateInProfile(profile *models.Profile, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromProfile(profile),
	)
}
