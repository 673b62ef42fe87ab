package handler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/cipherledger-server/internal/api/ledgerapi"
	"github.com/dtroode/cipherledger-server/internal/mocks"
	"github.com/dtroode/cipherledger-server/internal/model"
	"github.com/dtroode/cipherledger-server/internal/testutil"
)

func assertCode(t *testing.T, err error, want codes.Code) {
	t.Helper()

	st, ok := status.FromError(err)
	require.True(t, ok, "expected gRPC status, got %v", err)
	assert.Equal(t, want, st.Code())
}

func TestAuth_BeginLogin(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAuthService(t)
		expires := time.Date(2026, 3, 1, 12, 10, 0, 0, time.UTC)
		svc.On("BeginLogin", mock.Anything, model.Address("addr")).
			Return(model.LoginChallenge{SessionID: "sid", Nonce: []byte{1, 2}, ExpiresAt: expires}, nil).Once()

		h := NewAuth(svc, mocks.NewTokenService(t), testutil.MakeNoopLogger())
		out, err := h.BeginLogin(context.Background(), &ledgerapi.BeginLoginRequest{Address: "addr"})
		require.NoError(t, err)
		assert.Equal(t, "sid", out.SessionId)
		assert.Equal(t, []byte{1, 2}, out.Nonce)
		assert.Equal(t, expires, out.ExpiresAt.AsTime())
	})

	t.Run("invalid address", func(t *testing.T) {
		t.Parallel()

		svc := mocks.NewAuthService(t)
		svc.On("BeginLogin", mock.Anything, model.Address("bad")).
			Return(model.LoginChallenge{}, model.ErrInvalidAddress).Once()

		h := NewAuth(svc, mocks.NewTokenService(t), testutil.MakeNoopLogger())
		out, err := h.BeginLogin(context.Background(), &ledgerapi.BeginLoginRequest{Address: "bad"})
		assert.Nil(t, out)
		assertCode(t, err, codes.InvalidArgument)
	})
}

func TestAuth_CompleteLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		req      *ledgerapi.CompleteLoginRequest
		setup    func(svc *mocks.AuthService)
		wantCode codes.Code
	}{
		{
			name: "success",
			req:  &ledgerapi.CompleteLoginRequest{SessionId: "sid", Signature: []byte{9}},
			setup: func(svc *mocks.AuthService) {
				svc.On("CompleteLogin", mock.Anything, "sid", []byte{9}).
					Return(model.SessionResult{Address: "addr", AccessToken: "acc", RefreshToken: "ref"}, nil).Once()
			},
			wantCode: codes.OK,
		},
		{
			name:     "missing signature",
			req:      &ledgerapi.CompleteLoginRequest{SessionId: "sid"},
			setup:    func(*mocks.AuthService) {},
			wantCode: codes.InvalidArgument,
		},
		{
			name: "expired session",
			req:  &ledgerapi.CompleteLoginRequest{SessionId: "sid", Signature: []byte{9}},
			setup: func(svc *mocks.AuthService) {
				svc.On("CompleteLogin", mock.Anything, "sid", []byte{9}).
					Return(model.SessionResult{}, model.ErrSessionExpired).Once()
			},
			wantCode: codes.Unauthenticated,
		},
		{
			name: "bad signature",
			req:  &ledgerapi.CompleteLoginRequest{SessionId: "sid", Signature: []byte{9}},
			setup: func(svc *mocks.AuthService) {
				svc.On("CompleteLogin", mock.Anything, "sid", []byte{9}).
					Return(model.SessionResult{}, model.ErrBadSignature).Once()
			},
			wantCode: codes.Unauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAuthService(t)
			tt.setup(svc)

			h := NewAuth(svc, mocks.NewTokenService(t), testutil.MakeNoopLogger())
			out, err := h.CompleteLogin(context.Background(), tt.req)
			if tt.wantCode == codes.OK {
				require.NoError(t, err)
				assert.Equal(t, "addr", out.Address)
				assert.Equal(t, "acc", out.AccessToken)
				assert.Equal(t, "ref", out.RefreshToken)
				return
			}
			assert.Nil(t, out)
			assertCode(t, err, tt.wantCode)
		})
	}
}

func TestAuth_Refresh(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		tokens := mocks.NewTokenService(t)
		tokens.On("Refresh", mock.Anything, "ref").Return("acc2", "ref2", nil).Once()

		h := NewAuth(mocks.NewAuthService(t), tokens, testutil.MakeNoopLogger())
		out, err := h.Refresh(context.Background(), &ledgerapi.RefreshRequest{RefreshToken: "ref"})
		require.NoError(t, err)
		assert.Equal(t, "acc2", out.AccessToken)
		assert.Equal(t, "ref2", out.RefreshToken)
	})

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()

		h := NewAuth(mocks.NewAuthService(t), mocks.NewTokenService(t), testutil.MakeNoopLogger())
		_, err := h.Refresh(context.Background(), &ledgerapi.RefreshRequest{})
		assertCode(t, err, codes.InvalidArgument)
	})

	t.Run("revoked", func(t *testing.T) {
		t.Parallel()

		tokens := mocks.NewTokenService(t)
		tokens.On("Refresh", mock.Anything, "ref").Return("", "", model.ErrTokenRevoked).Once()

		h := NewAuth(mocks.NewAuthService(t), tokens, testutil.MakeNoopLogger())
		_, err := h.Refresh(context.Background(), &ledgerapi.RefreshRequest{RefreshToken: "ref"})
		assertCode(t, err, codes.Unauthenticated)
	})
}

func TestAuth_Revoke(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		tokens := mocks.NewTokenService(t)
		tokens.On("RevokeByToken", mock.Anything, "ref").Return(nil).Once()

		h := NewAuth(mocks.NewAuthService(t), tokens, testutil.MakeNoopLogger())
		out, err := h.Revoke(context.Background(), &ledgerapi.RevokeRequest{RefreshToken: "ref"})
		require.NoError(t, err)
		assert.NotNil(t, out)
	})

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()

		h := NewAuth(mocks.NewAuthService(t), mocks.NewTokenService(t), testutil.MakeNoopLogger())
		_, err := h.Revoke(context.Background(), &ledgerapi.RevokeRequest{})
		assertCode(t, err, codes.InvalidArgument)
	})

	t.Run("all tokens of the owner", func(t *testing.T) {
		t.Parallel()

		tokens := mocks.NewTokenService(t)
		tokens.On("RevokeAllByToken", mock.Anything, "ref").Return(nil).Once()

		h := NewAuth(mocks.NewAuthService(t), tokens, testutil.MakeNoopLogger())
		out, err := h.Revoke(context.Background(), &ledgerapi.RevokeRequest{RefreshToken: "ref", All: true})
		require.NoError(t, err)
		assert.NotNil(t, out)
	})

	t.Run("all with expired token", func(t *testing.T) {
		t.Parallel()

		tokens := mocks.NewTokenService(t)
		tokens.On("RevokeAllByToken", mock.Anything, "ref").Return(model.ErrTokenExpired).Once()

		h := NewAuth(mocks.NewAuthService(t), tokens, testutil.MakeNoopLogger())
		_, err := h.Revoke(context.Background(), &ledgerapi.RevokeRequest{RefreshToken: "ref", All: true})
		assertCode(t, err, codes.Unauthenticated)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		tokens := mocks.NewTokenService(t)
		tokens.On("RevokeByToken", mock.Anything, "ref").Return(assert.AnError).Once()

		h := NewAuth(mocks.NewAuthService(t), tokens, testutil.MakeNoopLogger())
		_, err := h.Revoke(context.Background(), &ledgerapi.RevokeRequest{RefreshToken: "ref"})
		assertCode(t, err, codes.Internal)
	})
}
