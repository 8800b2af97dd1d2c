package models

import "time"

// Client is a walk-in customer record, no login, keyed by phone per salon.
type Client struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProfileID uint `gorm:"index:idx_clients_profile_phone,unique" json:"profile_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;index:idx_clients_profile_phone,unique" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
