package services

import (
	"context"
	"strconv"
	"time"

	jwtutil "death-registry/app/jwt"
	"death-registry/app/models"
	"death-registry/app/repo"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const tokenCachePrefix = "token:"

// TokenService issues and revokes bearer tokens. A token is a signed JWT
// whose jti points at an AuthToken row; the row decides whether the token is
// still live, so revocation works even though the JWT itself stays valid
// until expiry. Redis, when configured, caches live-token lookups; the
// database stays authoritative and the service works with a nil client.
type TokenService struct {
	tokens *repo.TokenRepository
	users  *repo.UserRepository
	signer *jwtutil.Signer
	rdb    *redis.Client
}

func NewTokenService(tokens *repo.TokenRepository, users *repo.UserRepository, signer *jwtutil.Signer, rdb *redis.Client) *TokenService {
	return &TokenService{tokens: tokens, users: users, signer: signer, rdb: rdb}
}

// Issue creates a fresh token for the user. Existing tokens stay valid, so
// one account can be logged in from several devices at once.
func (s *TokenService) Issue(u *models.User) (string, error) {
	id := uuid.NewString()
	row := &models.AuthToken{ID: id, UserID: u.ID, ExpiresAt: time.Now().Add(s.signer.Expiry())}
	if err := s.tokens.Create(row); err != nil {
		return "", err
	}
	return s.signer.Sign(id, u.ID, u.Name, u.Role)
}

// Authenticate resolves a bearer token to its user, or ErrInvalidToken.
func (s *TokenService) Authenticate(ctx context.Context, tokenStr string) (*models.User, error) {
	claims, err := s.signer.Parse(tokenStr)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !s.cachedLive(ctx, claims.ID) {
		row, err := s.tokens.FindByID(claims.ID)
		if err != nil || row.Revoked || time.Now().After(row.ExpiresAt) {
			return nil, ErrInvalidToken
		}
		s.cacheLive(ctx, row)
	}
	u, err := s.users.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return u, nil
}

// Revoke invalidates the token. Revoking one that is already dead still
// succeeds so a caller's own logout never fails.
func (s *TokenService) Revoke(ctx context.Context, tokenStr string) error {
	claims, err := s.signer.Parse(tokenStr)
	if err != nil {
		return ErrInvalidToken
	}
	if err := s.tokens.Revoke(claims.ID); err != nil {
		return err
	}
	if s.rdb != nil {
		s.rdb.Del(ctx, tokenCachePrefix+claims.ID)
	}
	return nil
}

func (s *TokenService) cachedLive(ctx context.Context, id string) bool {
	if s.rdb == nil {
		return false
	}
	_, err := s.rdb.Get(ctx, tokenCachePrefix+id).Result()
	return err == nil
}

func (s *TokenService) cacheLive(ctx context.Context, row *models.AuthToken) {
	if s.rdb == nil {
		return
	}
	ttl := time.Until(row.ExpiresAt)
	if ttl <= 0 {
		return
	}
	// Cache failures are ignored; the next lookup just hits the database.
	s.rdb.Set(ctx, tokenCachePrefix+row.ID, strconv.FormatUint(uint64(row.UserID), 10), ttl)
}
