package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"


	grpcctx "github.com/dtroode/cipherledger-server/internal/api/grpc/context"
	"github.com/dtroode/cipherledger-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/cipherledger-server/internal/api/grpc/server"
	"github.com/dtroode/cipherledger-server/internal/archive"
	"github.com/dtroode/cipherledger-server/internal/config"
	"github.com/dtroode/cipherledger-server/internal/custody"
	"github.com/dtroode/cipherledger-server/internal/events"
	"github.com/dtroode/cipherledger-server/internal/hasher"
	"github.com/dtroode/cipherledger-server/internal/logger"
	"github.com/dtroode/cipherledger-server/internal/model"
	"github.com/dtroode/cipherledger-server/internal/repository/postgres"
	"github.com/dtroode/cipherledger-server/internal/scheduler"
	"github.com/dtroode/cipherledger-server/internal/service"
	storage "github.com/dtroode/cipherledger-server/internal/storage/minio"
	"github.com/dtroode/cipherledger-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithOptions(logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	ledgerRepo := postgres.NewLedgerRepository(db, time.Now)
	loginRepo := postgres.NewLoginRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)

	sinks := []model.EventSink{}
	hub := events.NewHub(events.DefaultSubscriberBuffer)
	sinks = append(sinks, hub)

	if cfg.Redis.Addr != "" {
		redisClient, err := events.NewRedisClient(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Fatal("failed to connect to redis", "error", err)
		}
		defer redisClient.Close()
		sinks = append(sinks, events.NewRedisSink(redisClient, cfg.Redis.Channel))
	}

	dispatcher := events.NewDispatcher(cfg.Events.Workers, cfg.Events.QueueSize, logger, sinks...)
	defer dispatcher.Stop()

	ctxMgr := grpcctx.NewManager()

	ledgerService := service.NewLedger(
		ledgerRepo,
		hasher.NewKeccak(),
		grpcctx.NewGate(ctxMgr),
		newCustody(cfg.Custody, logger),
		dispatcher,
		cfg.Ledger.RequestTTL,
		logger,
	)

	if cfg.Ledger.Authority != "" {
		initialized, err := ledgerService.Bootstrap(ctx, model.InitializeParams{
			Authority:      model.Address(cfg.Ledger.Authority),
			CustodyAsset:   cfg.Ledger.CustodyAsset,
			CustodyAccount: cfg.Ledger.CustodyAccount,
		})
		if err != nil {
			logger.Fatal("failed to bootstrap ledger", "error", err)
		}
		if initialized {
			logger.Info("ledger bootstrapped from configuration", "authority", cfg.Ledger.Authority)
		}
	}

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	tokenService := service.NewTokenService(tokenManager, refreshTokenRepo, cfg.JWT.RefreshTTL, logger)
	authService := service.NewAuth(loginRepo, tokenService, logger)

	jobs := scheduler.New(logger)
	if err := jobs.AddPurge(ctx, cfg.Scheduler.PurgeSpec, ledgerService); err != nil {
		logger.Fatal("failed to schedule request purge", "error", err)
	}
	if cfg.Storage.Enabled {
		storageClient, err := storage.Connect(ctx, cfg.Storage)
		if err != nil {
			logger.Fatal("failed to initialize storage client", "error", err)
		}
		archiver := archive.NewArchiver(ledgerService, storageClient, cfg.Scheduler.ArchiveBatch, logger)
		if err := jobs.AddArchive(ctx, cfg.Scheduler.ArchiveSpec, archiver); err != nil {
			logger.Fatal("failed to schedule event archive", "error", err)
		}
	}
	jobs.Start()

	r := router.New(ledgerService, hub, authService, tokenService, ctxMgr, logger)
	s := r.Register()
	server := grpcServer.NewGRPCServer(s, fmt.Sprintf(":%s", cfg.GRPC.Port))

	sl := grpcServer.NewSecurityLayer(cfg.GRPC)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(server)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := jobs.Stop(shutdownCtx); err != nil {
		logger.Error("error during scheduler shutdown", "error", err)
	}
	if err := server.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", server.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func newCustody(cfg config.Custody, logger *logger.Logger) model.Custody {
	if !cfg.Enabled {
		return custody.NewDisabled(logger)
	}
	return custody.NewRemote(cfg.Endpoint, cfg.Timeout, logger)
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
