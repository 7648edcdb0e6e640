package dto

import "death-registry/app/models"

// Response is the envelope every endpoint answers with.
type Response struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// AuthUser is a user plus the bearer token issued for this session.
type AuthUser struct {
	*models.User
	Token string `json:"token"`
}
