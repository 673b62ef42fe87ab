package context

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"

	"github.com/dtroode/cipherledger-server/internal/model"
)

func TestManager_SetAndGetAddress(t *testing.T) {
	m := NewManager()
	ctx := m.SetAddressToContext(stdctx.Background(), "alice")

	got, ok := m.GetAddressFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, model.Address("alice"), got)
}

func TestManager_GetAddress_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetAddressFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_GetAddress_IgnoresMetadata(t *testing.T) {
	m := NewManager()
	md := metadata.New(map[string]string{"address": "mallory"})
	ctx := metadata.NewIncomingContext(stdctx.Background(), md)

	_, ok := m.GetAddressFromContext(ctx)
	assert.False(t, ok)
}

func TestGate_Require(t *testing.T) {
	t.Parallel()

	m := NewManager()
	gate := NewGate(m)

	tests := []struct {
		name     string
		ctx      stdctx.Context
		identity model.Address
		wantErr  error
	}{
		{
			name:     "caller matches",
			ctx:      m.SetAddressToContext(stdctx.Background(), "alice"),
			identity: "alice",
		},
		{
			name:     "caller differs",
			ctx:      m.SetAddressToContext(stdctx.Background(), "bob"),
			identity: "alice",
			wantErr:  model.ErrUnauthorized,
		},
		{
			name:     "anonymous caller",
			ctx:      stdctx.Background(),
			identity: "alice",
			wantErr:  model.ErrUnauthorized,
		},
		{
			name:     "empty identity",
			ctx:      m.SetAddressToContext(stdctx.Background(), "alice"),
			identity: "",
			wantErr:  model.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := gate.Require(tt.ctx, tt.identity)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, model.ErrAuthorization)
				return
			}
			require.NoError(t, err)
		})
	}
}
