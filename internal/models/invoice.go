package models

import "time"

type Invoice struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ProjectID *uint `json:"project_id"`

	Number string  `gorm:"size:30" json:"number"`
	Amount float64 `json:"amount"`
	Status string  `gorm:"size:20;default:'draft'" json:"status"`
	Notes  string  `gorm:"size:500" json:"notes"`

	IssuedAt *time.Time `json:"issued_at"`
	DueDate  *time.Time `json:"due_date"`
	PaidAt   *time.Time `json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
