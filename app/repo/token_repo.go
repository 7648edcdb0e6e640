package repo

import (
	"time"

	"death-registry/app/models"

	"gorm.io/gorm"
)

type TokenRepository struct{ db *gorm.DB }

func NewTokenRepository(db *gorm.DB) *TokenRepository { return &TokenRepository{db: db} }

func (r *TokenRepository) Create(t *models.AuthToken) error { return r.db.Create(t).Error }

func (r *TokenRepository) FindByID(id string) (*models.AuthToken, error) {
	var t models.AuthToken
	if err := r.db.Where("id = ?", id).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// Revoke marks the token revoked. Revoking a token that is already revoked
// or gone is a no-op, so logout stays idempotent.
func (r *TokenRepository) Revoke(id string) error {
	return r.db.Model(&models.AuthToken{}).Where("id = ?", id).Update("revoked", true).Error
}

// DeleteExpired removes rows whose expiry has passed.
func (r *TokenRepository) DeleteExpired() error {
	return r.db.Where("expires_at < ?", time.Now()).Delete(&models.AuthToken{}).Error
}
