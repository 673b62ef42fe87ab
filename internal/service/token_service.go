package service

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/cipherledger-server/internal/logger"
	"github.com/dtroode/cipherledger-server/internal/model"
)

// TokenService provides high-level operations for issuing, refreshing,
// and revoking tokens. It composes the TokenManager and RefreshTokenStore.
type TokenService struct {
	manager    model.TokenManager
	store      model.RefreshTokenStore
	refreshTTL time.Duration
	logger     *logger.Logger
}

// NewTokenService creates a TokenService. refreshTTL must match the lifetime
// the manager signs into refresh tokens; it is used only for persistence.
func NewTokenService(manager model.TokenManager, store model.RefreshTokenStore, refreshTTL time.Duration, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, store: store, refreshTTL: refreshTTL, logger: logger}
}

// Issue creates a new access and refresh token pair for address.
func (s *TokenService) Issue(ctx context.Context, address model.Address) (accessToken string, refreshToken string, err error) {
	access, err := s.manager.GenerateAccessToken(address)
	if err != nil {
		return "", "", fmt.Errorf("issue access: %w", err)
	}

	refresh, err := s.persistRefresh(ctx, address, nil)
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

func (s *TokenService) persistRefresh(ctx context.Context, address model.Address, rotatedFrom *string) (string, error) {
	refresh, jti, err := s.manager.GenerateRefreshToken(address)
	if err != nil {
		return "", fmt.Errorf("issue refresh: %w", err)
	}

	now := time.Now()
	rt := model.RefreshToken{
		ID:             uuid.New(),
		JTI:            jti,
		Address:        address,
		TokenHash:      hashRefresh(refresh),
		IssuedAt:       now,
		ExpiresAt:      now.Add(s.refreshTTL),
		RotatedFromJTI: rotatedFrom,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.Create(ctx, rt); err != nil {
		return "", fmt.Errorf("persist refresh: %w", err)
	}

	return refresh, nil
}

// Refresh rotates a refresh token: the presented one is revoked and a new pair
// is issued.
func (s *TokenService) Refresh(ctx context.Context, presentedRefresh string) (newAccess string, newRefresh string, err error) {
	address, jti, err := s.manager.ParseRefreshToken(presentedRefresh)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}

	rt, err := s.store.GetByJTI(ctx, jti)
	if errors.Is(err, model.ErrNotFound) {
		return "", "", fmt.Errorf("%w: unknown refresh token", model.ErrInvalidToken)
	}
	if err != nil {
		return "", "", fmt.Errorf("load refresh: %w", err)
	}

	if err := rt.Check(hashRefresh(presentedRefresh), time.Now()); err != nil {
		s.logger.Info("Token service: refresh rejected", "address", address, "jti", jti, "error", err.Error())
		return "", "", err
	}

	// Only one of concurrent refreshes with the same token wins the revoke.
	if err := s.store.RevokeByJTI(ctx, jti); err != nil {
		if errors.Is(err, model.ErrTokenRevoked) {
			s.logger.Info("Token service: refresh token reused", "address", address, "jti", jti)
		}
		return "", "", fmt.Errorf("revoke old refresh: %w", err)
	}

	access, err := s.manager.GenerateAccessToken(address)
	if err != nil {
		return "", "", fmt.Errorf("issue new access: %w", err)
	}

	rotatedFrom := rt.JTI
	refresh, err := s.persistRefresh(ctx, address, &rotatedFrom)
	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

// RevokeByToken revokes the presented refresh token. Revoking an already
// revoked token succeeds.
func (s *TokenService) RevokeByToken(ctx context.Context, presentedRefresh string) error {
	_, jti, err := s.manager.ParseRefreshToken(presentedRefresh)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}

	err = s.store.RevokeByJTI(ctx, jti)
	if err != nil && !errors.Is(err, model.ErrTokenRevoked) {
		return fmt.Errorf("revoke refresh: %w", err)
	}
	return nil
}

// RevokeAllByToken revokes every refresh token issued to the owner of the
// presented one. The presented token must still be valid.
func (s *TokenService) RevokeAllByToken(ctx context.Context, presentedRefresh string) error {
	_, jti, err := s.manager.ParseRefreshToken(presentedRefresh)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}

	rt, err := s.store.GetByJTI(ctx, jti)
	if errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("%w: unknown refresh token", model.ErrInvalidToken)
	}
	if err != nil {
		return fmt.Errorf("load refresh: %w", err)
	}
	if err := rt.Check(hashRefresh(presentedRefresh), time.Now()); err != nil {
		return err
	}

	if err := s.store.RevokeAllByAddress(ctx, rt.Address); err != nil {
		return fmt.Errorf("revoke all refresh: %w", err)
	}

	s.logger.Info("Token service: revoked all refresh tokens", "address", rt.Address)
	return nil
}

// GetAddress resolves the address an access token was issued to.
func (s *TokenService) GetAddress(_ context.Context, token string) (model.Address, error) {
	address, err := s.manager.ParseAccessToken(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}
	return address, nil
}

func hashRefresh(token string) []byte {
	h := sha256.Sum256([]byte(token))
	return h[:]
}
