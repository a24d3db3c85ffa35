package models

import "time"

// User is the service-provider account. It also carries the public booking
// profile (slug, business name) and the provider's scheduling preferences.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	BusinessName string `gorm:"size:100" json:"business_name"`
	Slug         string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Bio          string `gorm:"size:500" json:"bio"`
	AvatarURL    string `gorm:"size:255" json:"avatar_url"`
	Timezone     string `gorm:"size:50" json:"timezone"`

	SlotIntervalMin   int `gorm:"default:90" json:"slot_interval_min"`
	MinAdvanceMinutes int `gorm:"default:120" json:"min_advance_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
