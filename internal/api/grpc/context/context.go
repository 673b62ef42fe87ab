package context

import (
	"context"

	"github.com/dtroode/cipherledger-server/internal/model"
)

type addressKey struct{}

var _ model.ContextManager = (*Manager)(nil)

// Manager represents a gRPC context manager for caller address operations.
// The address lives in a private context value so that client metadata can
// never impersonate an authenticated caller.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetAddressToContext returns a copy of ctx carrying the authenticated address.
func (m *Manager) SetAddressToContext(ctx context.Context, address model.Address) context.Context {
	return context.WithValue(ctx, addressKey{}, address)
}

// GetAddressFromContext returns the authenticated address of the call.
func (m *Manager) GetAddressFromContext(ctx context.Context) (model.Address, bool) {
	address, ok := ctx.Value(addressKey{}).(model.Address)
	if !ok || address == "" {
		return "", false
	}
	return address, true
}

var _ model.AuthGate = (*Gate)(nil)

// Gate authorizes ledger calls against the address the authentication
// interceptor placed into the context.
type Gate struct {
	contextManager model.ContextManager
}

// NewGate creates a Gate reading the caller from contextManager.
func NewGate(contextManager model.ContextManager) *Gate {
	return &Gate{contextManager: contextManager}
}

// Require fails with ErrUnauthorized unless the caller is identity.
func (g *Gate) Require(ctx context.Context, identity model.Address) error {
	caller, ok := g.contextManager.GetAddressFromContext(ctx)
	if !ok || identity == "" || caller != identity {
		return model.ErrUnauthorized
	}
	return nil
}
