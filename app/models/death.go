package models

import "time"

// Death lifecycle statuses. Approved and rejected are terminal.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Death names are unique across every status, so a pending submission
// reserves its name against later approved entries as well.
type Death struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"uniqueIndex;size:191;not null" json:"name"`
	StartDate  time.Time `gorm:"not null" json:"start_date"`
	EndDate    time.Time `gorm:"not null" json:"end_date"`
	Profession string    `gorm:"size:191;not null" json:"profession"`
	Status     string    `gorm:"size:32;not null;default:pending;index" json:"status"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
