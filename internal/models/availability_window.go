package models

import "time"

// AvailabilityWindow is the recurring weekly open interval for one weekday.
// At most one window per (profile, weekday); times are "15:04" wall-clock
// strings in the profile's timezone.
type AvailabilityWindow struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProfileID uint `gorm:"index:idx_availability_profile_weekday,unique" json:"profile_id"`

	Weekday int `gorm:"index:idx_availability_profile_weekday,unique" json:"weekday"` // 0 = Sunday

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
