package models

import "time"

// AvailabilityWindow declares one weekday of a provider's weekly availability.
// Each of the three periods can be toggled independently and carries its own
// clock-time bounds. At most one row per (user_id, weekday).
type AvailabilityWindow struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex:idx_availability_user_weekday" json:"user_id"`

	Weekday int `gorm:"uniqueIndex:idx_availability_user_weekday" json:"weekday"`

	MorningEnabled bool   `json:"morning_enabled"`
	MorningStart   string `gorm:"size:5;default:'09:00'" json:"morning_start"`
	MorningEnd     string `gorm:"size:5;default:'12:00'" json:"morning_end"`

	AfternoonEnabled bool   `json:"afternoon_enabled"`
	AfternoonStart   string `gorm:"size:5;default:'13:00'" json:"afternoon_start"`
	AfternoonEnd     string `gorm:"size:5;default:'17:30'" json:"afternoon_end"`

	EveningEnabled bool   `json:"evening_enabled"`
	EveningStart   string `gorm:"size:5;default:'17:30'" json:"evening_start"`
	EveningEnd     string `gorm:"size:5;default:'20:30'" json:"evening_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
