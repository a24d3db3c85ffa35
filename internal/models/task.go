package models

import "time"

type Task struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	ProjectID uint    `json:"project_id"`
	Project   Project `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"project"`

	Title       string `gorm:"size:150;not null" json:"title"`
	Description string `gorm:"size:500" json:"description"`
	Status      string `gorm:"size:20;default:'todo'" json:"status"`
	Priority    string `gorm:"size:10;default:'medium'" json:"priority"`

	DueDate     *time.Time `json:"due_date"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
