package model

import (
	"context"
	"time"
)

// PendingSessionDuration is a TTL for pending login sessions.
const PendingSessionDuration = time.Minute * 10

// LoginStore persists pending challenge-response login sessions.
type LoginStore interface {
	Create(ctx context.Context, pendingLogin PendingLogin) error
	GetBySessionID(ctx context.Context, sessionID string) (PendingLogin, error)
	Consume(ctx context.Context, sessionID string) error
}

// PendingLogin describes a login challenge issued to an address.
type PendingLogin struct {
	SessionID string
	Address   Address
	Nonce     []byte
	ExpiresAt time.Time
	Consumed  bool
}

// LoginChallenge is returned to the client to sign.
type LoginChallenge struct {
	SessionID string
	Nonce     []byte
	ExpiresAt time.Time
}

// SessionResult is returned after a successful login.
type SessionResult struct {
	Address      Address
	AccessToken  string
	RefreshToken string
}
