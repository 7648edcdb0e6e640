package models

import "time"

// AuthToken is the server-side record behind a bearer token. The token string
// presented by clients carries this row's ID; a token is only accepted while
// its row exists, is not revoked, and has not expired. One user may hold
// several live tokens (one per device).
type AuthToken struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Revoked   bool      `gorm:"not null;default:false" json:"revoked"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
