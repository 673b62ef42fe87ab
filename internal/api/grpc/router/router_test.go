package router

import (
	"context"
	"testing"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/cipherledger-server/internal/api/ledgerapi"
	"github.com/dtroode/cipherledger-server/internal/mocks"
	"github.com/dtroode/cipherledger-server/internal/testutil"
)

type tokenService struct {
	*mocks.TokenService
	*mocks.TokenParser
}

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	r := New(
		mocks.NewLedgerService(t),
		mocks.NewEventSubscriber(t),
		mocks.NewAuthService(t),
		tokenService{mocks.NewTokenService(t), mocks.NewTokenParser(t)},
		mocks.NewContextManager(t),
		testutil.MakeNoopLogger(),
	)
	s := r.Register()
	require.NotNil(t, s)

	info := s.GetServiceInfo()
	assert.Contains(t, info, "cipherledger.v1.Ledger")
	assert.Contains(t, info, "cipherledger.v1.Auth")
	assert.Contains(t, info, "grpc.health.v1.Health")
	assert.Contains(t, info, "grpc.reflection.v1.ServerReflection")
}

func TestRequiresAuth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method string
		want   bool
	}{
		{method: ledgerapi.Ledger_Initialize_FullMethodName, want: true},
		{method: ledgerapi.Ledger_AuthenticateUser_FullMethodName, want: true},
		{method: ledgerapi.Ledger_RequestDeposit_FullMethodName, want: true},
		{method: ledgerapi.Ledger_StoreDeposit_FullMethodName, want: true},
		{method: ledgerapi.Ledger_RequestTransfer_FullMethodName, want: true},
		{method: ledgerapi.Ledger_ProcessTransfer_FullMethodName, want: true},
		{method: ledgerapi.Ledger_GetEncryptedBalance_FullMethodName, want: false},
		{method: ledgerapi.Ledger_SubscribeEvents_FullMethodName, want: false},
		{method: ledgerapi.Auth_BeginLogin_FullMethodName, want: false},
		{method: ledgerapi.Auth_Refresh_FullMethodName, want: false},
		{method: "/grpc.health.v1.Health/Check", want: false},
		{method: "/grpc.reflection.v1.ServerReflection/ServerReflectionInfo", want: false},
		{method: "/grpc.reflection.v1alpha.ServerReflection/ServerReflectionInfo", want: false},
		{method: "/grpc.reflectionx.Fake/Call", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()

			meta := interceptors.NewServerCallMeta(tt.method, nil, nil)
			assert.Equal(t, tt.want, requiresAuth(context.Background(), meta))
		})
	}
}
