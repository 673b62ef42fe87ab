package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ed25519"

	"github.com/dtroode/cipherledger-server/internal/account"
	"github.com/dtroode/cipherledger-server/internal/mocks"
	"github.com/dtroode/cipherledger-server/internal/model"
	"github.com/dtroode/cipherledger-server/internal/testutil"
	"github.com/dtroode/cipherledger-server/internal/token"
)

type authFixture struct {
	auth       *Auth
	loginStore *mocks.LoginStore
	tokens     *mocks.RefreshTokenStore
	jwt        *token.JWT
	address    model.Address
	key        ed25519.PrivateKey
	now        time.Time
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	address, key, err := account.FromSeed(bytes.Repeat([]byte{7}, ed25519.SeedSize))
	require.NoError(t, err)

	f := &authFixture{
		loginStore: mocks.NewLoginStore(t),
		tokens:     mocks.NewRefreshTokenStore(t),
		jwt:        token.NewJWT("secret", 0, 0),
		address:    address,
		key:        key,
		now:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	tokenService := NewTokenService(f.jwt, f.tokens, f.jwt.RefreshTTL(), testutil.MakeNoopLogger())
	f.auth = NewAuth(f.loginStore, tokenService, testutil.MakeNoopLogger())
	f.auth.random = bytes.NewReader(bytes.Repeat([]byte{0x42}, nonceSize))
	f.auth.now = func() time.Time { return f.now }
	return f
}

func (f *authFixture) pending(consumed bool, expiresAt time.Time) model.PendingLogin {
	return model.PendingLogin{
		SessionID: "session-1",
		Address:   f.address,
		Nonce:     bytes.Repeat([]byte{0x42}, nonceSize),
		ExpiresAt: expiresAt,
		Consumed:  consumed,
	}
}

func (f *authFixture) sign(p model.PendingLogin) []byte {
	return ed25519.Sign(f.key, account.LoginMessage(p.SessionID, p.Nonce))
}

func TestAuth_BeginLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.loginStore.On("Create", ctx, mock.MatchedBy(func(p model.PendingLogin) bool {
		return p.Address == f.address &&
			len(p.Nonce) == nonceSize &&
			p.SessionID != "" &&
			p.ExpiresAt.Equal(f.now.Add(model.PendingSessionDuration))
	})).Return(nil).Once()

	challenge, err := f.auth.BeginLogin(ctx, f.address)
	require.NoError(t, err)
	assert.NotEmpty(t, challenge.SessionID)
	assert.Equal(t, bytes.Repeat([]byte{0x42}, nonceSize), challenge.Nonce)
	assert.Equal(t, f.now.Add(model.PendingSessionDuration), challenge.ExpiresAt)
}

func TestAuth_BeginLogin_InvalidAddress(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.auth.BeginLogin(context.Background(), "not-an-address")
	require.ErrorIs(t, err, model.ErrInvalidAddress)
}

func TestAuth_BeginLogin_StoreError(t *testing.T) {
	f := newAuthFixture(t)
	f.loginStore.On("Create", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	_, err := f.auth.BeginLogin(context.Background(), f.address)
	require.ErrorIs(t, err, assert.AnError)
}

func TestAuth_CompleteLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	p := f.pending(false, f.now.Add(time.Minute))

	f.loginStore.On("GetBySessionID", ctx, p.SessionID).Return(p, nil).Once()
	f.loginStore.On("Consume", ctx, p.SessionID).Return(nil).Once()
	f.tokens.On("Create", ctx, mock.MatchedBy(func(rt model.RefreshToken) bool {
		return rt.Address == f.address
	})).Return(nil).Once()

	result, err := f.auth.CompleteLogin(ctx, p.SessionID, f.sign(p))
	require.NoError(t, err)
	assert.Equal(t, f.address, result.Address)

	got, err := f.jwt.ParseAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, f.address, got)

	got, _, err = f.jwt.ParseRefreshToken(result.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, f.address, got)
}

func TestAuth_CompleteLogin_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		consumed  bool
		expiresIn time.Duration
		signature func(f *authFixture, p model.PendingLogin) []byte
		wantErr   error
	}{
		{
			name:      "consumed session",
			consumed:  true,
			expiresIn: time.Minute,
			signature: (*authFixture).sign,
			wantErr:   model.ErrSessionConsumed,
		},
		{
			name:      "expired session",
			expiresIn: -time.Second,
			signature: (*authFixture).sign,
			wantErr:   model.ErrSessionExpired,
		},
		{
			name:      "signature over another nonce",
			expiresIn: time.Minute,
			signature: func(f *authFixture, p model.PendingLogin) []byte {
				return ed25519.Sign(f.key, account.LoginMessage(p.SessionID, []byte("other")))
			},
			wantErr: model.ErrBadSignature,
		},
		{
			name:      "truncated signature",
			expiresIn: time.Minute,
			signature: func(f *authFixture, p model.PendingLogin) []byte {
				return f.sign(p)[:10]
			},
			wantErr: model.ErrBadSignature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newAuthFixture(t)
			ctx := context.Background()
			p := f.pending(tt.consumed, f.now.Add(tt.expiresIn))

			f.loginStore.On("GetBySessionID", ctx, p.SessionID).Return(p, nil).Once()

			_, err := f.auth.CompleteLogin(ctx, p.SessionID, tt.signature(f, p))
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, model.ErrAuthorization)
		})
	}
}

func TestAuth_CompleteLogin_UnknownSession(t *testing.T) {
	f := newAuthFixture(t)
	f.loginStore.On("GetBySessionID", mock.Anything, "missing").Return(model.PendingLogin{}, model.ErrNotFound).Once()

	_, err := f.auth.CompleteLogin(context.Background(), "missing", []byte("sig"))
	require.ErrorIs(t, err, model.ErrSessionExpired)
}

func TestAuth_CompleteLogin_ConsumeRace(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	p := f.pending(false, f.now.Add(time.Minute))

	f.loginStore.On("GetBySessionID", ctx, p.SessionID).Return(p, nil).Once()
	f.loginStore.On("Consume", ctx, p.SessionID).Return(model.ErrSessionConsumed).Once()

	_, err := f.auth.CompleteLogin(ctx, p.SessionID, f.sign(p))
	require.ErrorIs(t, err, model.ErrSessionConsumed)
}
