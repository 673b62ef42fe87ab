package middleware

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/cipherledger-server/internal/mocks"
	"github.com/dtroode/cipherledger-server/internal/model"
	"github.com/dtroode/cipherledger-server/internal/testutil"
)

func TestAuthenticate_AuthFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		mdAuthHeader string
		address      model.Address
		parseErr     error
		wantErr      bool
	}{
		{
			name:    "missing authorization header",
			wantErr: true,
		},
		{
			name:         "invalid token",
			mdAuthHeader: "Bearer invalid",
			parseErr:     model.ErrInvalidToken,
			wantErr:      true,
		},
		{
			name:         "empty address from token",
			mdAuthHeader: "Bearer token",
			wantErr:      true,
		},
		{
			name:         "valid token",
			mdAuthHeader: "Bearer token",
			address:      "alice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cm := mocks.NewContextManager(t)
			if !tt.wantErr {
				cm.On("SetAddressToContext", mock.Anything, tt.address).Return(context.Background()).Once()
			}

			parser := mocks.NewTokenParser(t)
			if tt.mdAuthHeader != "" {
				parser.On("GetAddress", mock.Anything, mock.AnythingOfType("string")).Return(tt.address, tt.parseErr).Once()
			}
			m := NewAuthenticate(parser, cm, testutil.MakeNoopLogger())

			ctx := context.Background()
			if tt.mdAuthHeader != "" {
				ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", tt.mdAuthHeader))
			}

			newCtx, err := m.AuthFunc(ctx)

			if tt.wantErr {
				st, ok := status.FromError(err)
				assert.True(t, ok)
				assert.Equal(t, codes.Unauthenticated, st.Code())
				assert.Nil(t, newCtx)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, newCtx)
		})
	}
}
