package models

import "time"

// Event is a free-form calendar entry (meeting, reminder, block of time)
// owned by the provider, independent of client bookings.
type Event struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	Title       string `gorm:"size:150;not null" json:"title"`
	Description string `gorm:"size:500" json:"description"`
	Location    string `gorm:"size:150" json:"location"`

	Date      string `gorm:"size:10;not null" json:"date"`
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
