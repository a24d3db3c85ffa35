package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProfessionalID uint `gorm:"index" json:"professional_id"`

	ClientID *uint   `json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	ServiceID *uint    `json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	// Calendar day and clock time are kept separate on purpose: slots are
	// matched by exact (date, time) tuples, see the partial unique index in db.
	Date        string `gorm:"size:10;not null" json:"date"`
	Time        string `gorm:"size:5;not null" json:"time"`
	DurationMin int    `gorm:"default:60" json:"duration_min"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	ClientName  string `gorm:"size:100" json:"client_name"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`
	ClientEmail string `gorm:"size:100" json:"client_email"`

	ExternalID string `gorm:"size:36" json:"external_id"`
	Notes      string `gorm:"size:255" json:"notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CanceledAt  *time.Time `json:"canceled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
