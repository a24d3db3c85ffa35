package models

import "time"

type TimeEntry struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	ProjectID uint    `json:"project_id"`
	Project   Project `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"project"`

	TaskID *uint `json:"task_id"`

	Description string    `gorm:"size:255" json:"description"`
	StartedAt   time.Time `json:"started_at"`
	DurationMin int       `json:"duration_min"`
	Billable    bool      `gorm:"default:true" json:"billable"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
