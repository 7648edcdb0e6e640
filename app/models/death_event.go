package models

import "time"

// Audit actions recorded against a death record.
const (
	ActionSubmitted = "submitted"
	ActionPublished = "published"
	ActionApproved  = "approved"
	ActionRejected  = "rejected"
)

// DeathEvent is an append-only audit entry. Events are written in the same
// transaction as the record change they describe and are never updated.
type DeathEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DeathID   uint      `gorm:"index;not null" json:"death_id"`
	Action    string    `gorm:"size:32;not null" json:"action"`
	ActorID   uint      `gorm:"index" json:"actor_id"`
	CreatedAt time.Time `json:"created_at"`
}
