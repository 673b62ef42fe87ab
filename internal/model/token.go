package model

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/google/uuid"
)

// TokenManager generates and validates access/refresh tokens.
type TokenManager interface {
	GenerateAccessToken(address Address) (string, error)
	GenerateRefreshToken(address Address) (token string, jti string, err error)
	ParseAccessToken(token string) (Address, error)
	ParseRefreshToken(token string) (address Address, jti string, err error)
}

// RefreshTokenStore persists issued refresh tokens by their JWT ID.
type RefreshTokenStore interface {
	Create(ctx context.Context, token RefreshToken) error
	GetByJTI(ctx context.Context, jti string) (RefreshToken, error)
	// RevokeByJTI returns ErrTokenRevoked when no live token was revoked.
	RevokeByJTI(ctx context.Context, jti string) error
	RevokeAllByAddress(ctx context.Context, address Address) error
}

// RefreshToken is the stored record of an issued refresh token. Only the
// SHA-256 of the token is kept.
type RefreshToken struct {
	ID             uuid.UUID
	JTI            string
	Address        Address
	TokenHash      []byte
	IssuedAt       time.Time
	ExpiresAt      time.Time
	RevokedAt      *time.Time
	RotatedFromJTI *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Check reports whether the record still accepts a token hashing to
// presentedHash at now.
func (t RefreshToken) Check(presentedHash []byte, now time.Time) error {
	if t.RevokedAt != nil {
		return ErrTokenRevoked
	}
	if now.After(t.ExpiresAt) {
		return ErrTokenExpired
	}
	if subtle.ConstantTimeCompare(t.TokenHash, presentedHash) != 1 {
		return ErrTokenMismatch
	}
	return nil
}
