package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dtroode/cipherledger-server/internal/api/ledgerapi"
	"github.com/dtroode/cipherledger-server/internal/logger"
	"github.com/dtroode/cipherledger-server/internal/model"
)

// AuthService defines the challenge-response login operations.
type AuthService interface {
	BeginLogin(ctx context.Context, address model.Address) (model.LoginChallenge, error)
	CompleteLogin(ctx context.Context, sessionID string, signature []byte) (model.SessionResult, error)
}

// TokenService defines token refresh and revoke operations.
type TokenService interface {
	Refresh(ctx context.Context, refreshToken string) (accessToken string, newRefreshToken string, err error)
	RevokeByToken(ctx context.Context, refreshToken string) error
	RevokeAllByToken(ctx context.Context, refreshToken string) error
}

// Auth handles gRPC endpoints for authentication.
type Auth struct {
	ledgerapi.UnimplementedAuthServer
	authService  AuthService
	tokenService TokenService
	logger       *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, tokenService TokenService, logger *logger.Logger) *Auth {
	return &Auth{
		authService:  authService,
		tokenService: tokenService,
		logger:       logger,
	}
}

// BeginLogin issues a login challenge for an address.
func (h *Auth) BeginLogin(ctx context.Context, req *ledgerapi.BeginLoginRequest) (*ledgerapi.BeginLoginResponse, error) {
	h.logger.Debug("Auth handler: processing login start request",
		"address", req.Address)

	challenge, err := h.authService.BeginLogin(ctx, model.Address(req.Address))
	if err != nil {
		h.logger.Error("Auth handler: login start failed",
			"address", req.Address,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: login start completed",
		"address", req.Address,
		"session_id", challenge.SessionID)

	return &ledgerapi.BeginLoginResponse{
		SessionId: challenge.SessionID,
		Nonce:     challenge.Nonce,
		ExpiresAt: timestamp(challenge.ExpiresAt),
	}, nil
}

// CompleteLogin verifies the signed challenge and returns session tokens.
func (h *Auth) CompleteLogin(ctx context.Context, req *ledgerapi.CompleteLoginRequest) (*ledgerapi.CompleteLoginResponse, error) {
	h.logger.Debug("Auth handler: processing login finish request",
		"session_id", req.SessionId)

	if req.SessionId == "" || len(req.Signature) == 0 {
		return nil, status.Error(codes.InvalidArgument, "session id and signature are required")
	}

	result, err := h.authService.CompleteLogin(ctx, req.SessionId, req.Signature)
	if err != nil {
		h.logger.Error("Auth handler: login finish failed",
			"session_id", req.SessionId,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: login finish completed",
		"address", result.Address)

	return &ledgerapi.CompleteLoginResponse{
		Address:      result.Address.String(),
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	}, nil
}

// Refresh exchanges a refresh token for a new token pair.
func (h *Auth) Refresh(ctx context.Context, req *ledgerapi.RefreshRequest) (*ledgerapi.RefreshResponse, error) {
	h.logger.Debug("Auth handler: processing token refresh request")

	if req.RefreshToken == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh token is required")
	}

	accessToken, refreshToken, err := h.tokenService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		h.logger.Error("Auth handler: token refresh failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: token refresh successful")

	return &ledgerapi.RefreshResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Revoke revokes a refresh token, or with all set every refresh token of its
// owner.
func (h *Auth) Revoke(ctx context.Context, req *ledgerapi.RevokeRequest) (*emptypb.Empty, error) {
	h.logger.Debug("Auth handler: processing token revoke request",
		"all", req.All)

	if req.RefreshToken == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh token is required")
	}

	revoke := h.tokenService.RevokeByToken
	if req.All {
		revoke = h.tokenService.RevokeAllByToken
	}
	if err := revoke(ctx, req.RefreshToken); err != nil {
		h.logger.Error("Auth handler: token revoke failed",
			"all", req.All,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Auth handler: token revoke successful",
		"all", req.All)

	return &emptypb.Empty{}, nil
}
