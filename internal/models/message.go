package models

import "time"

type Message struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	ClientID *uint   `json:"client_id"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	Direction string `gorm:"size:10;not null" json:"direction"`
	Category  string `gorm:"size:20;default:'general'" json:"category"`
	Body      string `gorm:"type:text" json:"body"`

	// Set on outbound messages produced from a template.
	AutoResponseID *uint `json:"auto_response_id"`

	ExternalID string `gorm:"size:36" json:"external_id"`

	CreatedAt time.Time `json:"created_at"`
}
