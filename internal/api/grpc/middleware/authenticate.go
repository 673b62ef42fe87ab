package middleware

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/cipherledger-server/internal/logger"
	"github.com/dtroode/cipherledger-server/internal/model"
)

var (
	errMissingToken = errors.New("missing authorization token")
	errInvalidToken = errors.New("invalid authorization token")
)

// TokenParser resolves the caller address from a bearer access token.
type TokenParser interface {
	GetAddress(ctx context.Context, token string) (model.Address, error)
}

// Authenticate validates bearer tokens and injects the caller address into context.
type Authenticate struct {
	tokenParser    TokenParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenParser TokenParser, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenParser: tokenParser, contextManager: contextManager, logger: logger}
}

// AuthFunc parses the Authorization header, validates the token and returns
// a context carrying the caller address.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	var tokenString string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if authHeaders := md.Get("authorization"); len(authHeaders) > 0 {
			tokenString = strings.TrimPrefix(authHeaders[0], "Bearer ")
		}
	}

	address, authErr := m.authenticate(ctx, tokenString)
	if authErr != nil {
		m.logger.Debug("Authenticate middleware: rejected call", "error", authErr.Error())
		return nil, status.Error(codes.Unauthenticated, authErr.Error())
	}

	return m.contextManager.SetAddressToContext(ctx, address), nil
}

func (m *Authenticate) authenticate(ctx context.Context, tokenString string) (model.Address, error) {
	if tokenString == "" {
		return "", errMissingToken
	}

	address, err := m.tokenParser.GetAddress(ctx, tokenString)
	if err != nil || address == "" {
		return "", errInvalidToken
	}

	return address, nil
}
