package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/cipherledger-server/internal/account"
	"github.com/dtroode/cipherledger-server/internal/logger"
	"github.com/dtroode/cipherledger-server/internal/model"
)

const nonceSize = 32

// Auth authenticates ledger identities with a signed challenge. The client
// proves control of the ed25519 key behind an address by signing a
// server-issued nonce, and receives bearer tokens for that address.
type Auth struct {
	loginStore   model.LoginStore
	tokenService *TokenService
	random       io.Reader
	now          func() time.Time
	logger       *logger.Logger
}

func NewAuth(loginStore model.LoginStore, tokenService *TokenService, logger *logger.Logger) *Auth {
	return &Auth{
		loginStore:   loginStore,
		tokenService: tokenService,
		random:       rand.Reader,
		now:          time.Now,
		logger:       logger,
	}
}

// BeginLogin issues a one-time challenge for address.
func (a *Auth) BeginLogin(ctx context.Context, address model.Address) (model.LoginChallenge, error) {
	a.logger.Debug("Auth service: starting login",
		"address", address)

	if err := account.Validate(address); err != nil {
		return model.LoginChallenge{}, err
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(a.random, nonce); err != nil {
		return model.LoginChallenge{}, fmt.Errorf("failed to generate nonce: %w", err)
	}

	pending := model.PendingLogin{
		SessionID: uuid.NewString(),
		Address:   address,
		Nonce:     nonce,
		ExpiresAt: a.now().Add(model.PendingSessionDuration),
	}

	if err := a.loginStore.Create(ctx, pending); err != nil {
		a.logger.Error("Auth service: failed to save pending login",
			"address", address,
			"error", err.Error())
		return model.LoginChallenge{}, fmt.Errorf("failed to save pending login: %w", err)
	}

	return model.LoginChallenge{
		SessionID: pending.SessionID,
		Nonce:     pending.Nonce,
		ExpiresAt: pending.ExpiresAt,
	}, nil
}

// CompleteLogin verifies the signed challenge, consumes the session and
// issues tokens for its address.
func (a *Auth) CompleteLogin(ctx context.Context, sessionID string, signature []byte) (model.SessionResult, error) {
	a.logger.Debug("Auth service: finishing login",
		"session_id", sessionID)

	pending, err := a.loginStore.GetBySessionID(ctx, sessionID)
	if errors.Is(err, model.ErrNotFound) {
		return model.SessionResult{}, model.ErrSessionExpired
	}
	if err != nil {
		return model.SessionResult{}, fmt.Errorf("failed to get pending login: %w", err)
	}

	if pending.Consumed {
		return model.SessionResult{}, model.ErrSessionConsumed
	}
	if a.now().After(pending.ExpiresAt) {
		return model.SessionResult{}, model.ErrSessionExpired
	}

	if err := account.Verify(pending.Address, account.LoginMessage(pending.SessionID, pending.Nonce), signature); err != nil {
		a.logger.Info("Auth service: login signature rejected",
			"address", pending.Address,
			"session_id", sessionID)
		return model.SessionResult{}, err
	}

	if err := a.loginStore.Consume(ctx, pending.SessionID); err != nil {
		return model.SessionResult{}, fmt.Errorf("failed to consume login session: %w", err)
	}

	accessToken, refreshToken, err := a.tokenService.Issue(ctx, pending.Address)
	if err != nil {
		return model.SessionResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login completed",
		"address", pending.Address)

	return model.SessionResult{
		Address:      pending.Address,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
