package models

import "time"

// Client has no login of its own, it belongs to a provider account.
type Client struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`
	Company string `gorm:"size:100" json:"company"`
	Notes   string `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
