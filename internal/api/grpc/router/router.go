package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/dtroode/cipherledger-server/internal/api/grpc/handler"
	"github.com/dtroode/cipherledger-server/internal/api/grpc/middleware"
	"github.com/dtroode/cipherledger-server/internal/api/ledgerapi"
	"github.com/dtroode/cipherledger-server/internal/logger"
	"github.com/dtroode/cipherledger-server/internal/model"
)

// openPrefixes cover the services callable without a token: login and token
// rotation, health checks and server reflection.
var openPrefixes = []string{
	"/cipherledger.v1.Auth/",
	"/grpc.health.v1.Health/",
	"/grpc.reflection.",
}

// publicMethods are the ledger calls anyone may make without a token.
var publicMethods = map[string]struct{}{
	ledgerapi.Ledger_GetUserIndex_FullMethodName:        {},
	ledgerapi.Ledger_GetEncryptedBalance_FullMethodName: {},
	ledgerapi.Ledger_GetDepositRequest_FullMethodName:   {},
	ledgerapi.Ledger_DepositCompleted_FullMethodName:    {},
	ledgerapi.Ledger_GetTransferRequest_FullMethodName:  {},
	ledgerapi.Ledger_TransferCompleted_FullMethodName:   {},
	ledgerapi.Ledger_EncryptedSupply_FullMethodName:     {},
	ledgerapi.Ledger_GetServerManager_FullMethodName:    {},
	ledgerapi.Ledger_GetTokenContract_FullMethodName:    {},
	ledgerapi.Ledger_ListEvents_FullMethodName:          {},
	ledgerapi.Ledger_SubscribeEvents_FullMethodName:     {},
}

// TokenService issues, rotates and parses tokens.
type TokenService interface {
	handler.TokenService
	middleware.TokenParser
}

// Router represents a gRPC router for ledger operations.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	ledgerService  handler.LedgerService
	subscriber     handler.EventSubscriber
	authService    handler.AuthService
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	ledgerService handler.LedgerService,
	subscriber handler.EventSubscriber,
	authService handler.AuthService,
	tokenService TokenService,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		ledgerService:  ledgerService,
		subscriber:     subscriber,
		authService:    authService,
		tokenService:   tokenService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// requiresAuth reports whether a call must carry a valid access token.
func requiresAuth(_ context.Context, c interceptors.CallMeta) bool {
	method := c.FullMethod()
	for _, prefix := range openPrefixes {
		if strings.HasPrefix(method, prefix) {
			return false
		}
	}
	_, public := publicMethods[method]
	return !public
}

// Register registers all gRPC services and middleware.
// It sets up the gRPC server with panic recovery, request logging and
// authentication interceptors.
//
// Returns the configured gRPC server instance.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recoverer := middleware.NewRecovery(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	opts = append(opts,
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recoverer.Option()),
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoverer.Option()),
			logging.HandleGRPCStream,
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
	)

	s := grpc.NewServer(opts...)
	r.registerAuthRoutes(s)
	r.registerLedgerRoutes(s)
	healthpb.RegisterHealthServer(s, health.NewServer())
	reflection.Register(s)

	return s
}

func (r *Router) registerAuthRoutes(server *grpc.Server) {
	authHandler := handler.NewAuth(r.authService, r.tokenService, r.logger)
	ledgerapi.RegisterAuthServer(server, authHandler)
}

func (r *Router) registerLedgerRoutes(server *grpc.Server) {
	ledgerHandler := handler.NewLedger(r.ledgerService, r.subscriber, r.logger)
	ledgerapi.RegisterLedgerServer(server, ledgerHandler)
}
