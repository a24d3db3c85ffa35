package models

import "time"

// AutoResponse is a reply template owned by a provider. At most one template
// per (user_id, type) may be the default; the invariant is held both by the
// transactional promotion in the repository and by a partial unique index.
type AutoResponse struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	Type    string `gorm:"size:20;not null" json:"type"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Content string `gorm:"type:text" json:"content"`

	IsDefault bool `gorm:"default:false" json:"is_default"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
