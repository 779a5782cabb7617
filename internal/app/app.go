package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	emailadapter "github.com/DaliGabriel/yo-compro/internal/adapter/email"
	mongoadapter "github.com/DaliGabriel/yo-compro/internal/adapter/mongo"
	natsadapter "github.com/DaliGabriel/yo-compro/internal/adapter/nats"
	redisadapter "github.com/DaliGabriel/yo-compro/internal/adapter/redis"
	s3adapter "github.com/DaliGabriel/yo-compro/internal/adapter/storage/s3"
	"github.com/DaliGabriel/yo-compro/internal/app/config"
	"github.com/DaliGabriel/yo-compro/internal/platform/logger"
	httpport "github.com/DaliGabriel/yo-compro/internal/port/http"
	"github.com/DaliGabriel/yo-compro/internal/repository"
	"github.com/DaliGabriel/yo-compro/internal/service"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type App struct {
	cfg         *config.Config
	log         logger.Logger
	server      *httpport.Server
	mongoClient *mongo.Client
	redisClient *redis.Client
	natsConn    *nats.Conn
}

func New(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	appLogger, err := logger.NewZapLogger(logger.ZapLoggerConfig{
		Level:      cfg.Logger.Level,
		Encoding:   cfg.Logger.Encoding,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	appLogger.Infof("Configuration loaded: Env=%s, HTTP port: %s", cfg.Env, cfg.HTTPServer.Port)

	mongoClient, err := mongoadapter.NewClient(ctx, cfg.MongoDB)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MongoDB client: %w", err)
	}
	appLogger.Info("MongoDB client initialized")

	buyerRepo := mongoadapter.NewBuyerRequestRepository(mongoClient, cfg.MongoDB)
	listingRepo := mongoadapter.NewSellerListingRepository(mongoClient, cfg.MongoDB)

	// Redis, NATS and MinIO are supporting infrastructure; the matching
	// pipeline works without them, so a connection failure degrades instead
	// of aborting startup.
	var listingCache repository.ListingCache
	redisClient, err := redisadapter.NewClient(ctx, cfg.Redis)
	if err != nil {
		appLogger.Warnf("Redis unavailable, listing cache disabled: %v", err)
	} else {
		listingCache = redisadapter.NewListingCacheRepository(redisClient)
		appLogger.Info("Redis listing cache initialized")
	}

	var msgPublisher natsadapter.MessagePublisher
	natsConn, err := natsadapter.NewConnection(cfg.NATS)
	if err != nil {
		appLogger.Warnf("NATS unavailable, event publishing disabled: %v", err)
	} else {
		msgPublisher, err = natsadapter.NewPublisher(natsConn)
		if err != nil {
			appLogger.Warnf("Failed to create NATS publisher: %v", err)
		} else {
			appLogger.Info("NATS publisher initialized")
		}
	}

	var photoStorage repository.PhotoStorage
	photoStorage, err = s3adapter.NewPhotoStorage(ctx, cfg.MinIO, appLogger)
	if err != nil {
		appLogger.Warnf("MinIO unavailable, photo uploads disabled: %v", err)
		photoStorage = nil
	} else {
		appLogger.Info("MinIO photo storage initialized")
	}

	emailSender, err := emailadapter.NewSMTPSender(cfg.SMTP, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SMTP sender: %w", err)
	}
	appLogger.Info("SMTP sender initialized")

	notifier := service.NewNotifierService(emailSender, appLogger)
	matchSvc := service.NewMatchService(buyerRepo, notifier, msgPublisher, appLogger)
	buyerSvc := service.NewBuyerRequestService(buyerRepo, msgPublisher, appLogger)
	listingSvc := service.NewListingService(listingRepo, listingCache, photoStorage, msgPublisher, cfg.Cache.ListingTTL, appLogger)

	httpLogger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize HTTP logger: %w", err)
	}

	handler := httpport.NewHandler(buyerSvc, listingSvc, matchSvc, appLogger)
	server := httpport.NewServer(cfg.HTTPServer, handler, httpLogger)
	appLogger.Info("HTTP server instance created")

	return &App{
		cfg:         cfg,
		log:         appLogger,
		server:      server,
		mongoClient: mongoClient,
		redisClient: redisClient,
		natsConn:    natsConn,
	}, nil
}

func (a *App) Run() {
	a.log.Info("Starting application components...")

	go func() {
		if err := a.server.Start(); err != nil {
			a.log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()
	a.log.Infof("HTTP server listening on port %s", a.cfg.HTTPServer.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	a.log.Infof("Received shutdown signal: %v. Shutting down...", receivedSignal)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTPServer.TimeoutGraceful+5*time.Second)
	defer cancel()

	if err := a.server.Stop(shutdownCtx); err != nil {
		a.log.Errorf("Error during HTTP server graceful shutdown: %v", err)
	} else {
		a.log.Info("HTTP server stopped")
	}

	if a.natsConn != nil {
		a.natsConn.Close()
		a.log.Info("NATS connection closed")
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Errorf("Error closing Redis client: %v", err)
		} else {
			a.log.Info("Redis client closed")
		}
	}

	if a.mongoClient != nil {
		if err := a.mongoClient.Disconnect(shutdownCtx); err != nil {
			a.log.Errorf("Error disconnecting from MongoDB: %v", err)
		} else {
			a.log.Info("MongoDB connection closed")
		}
	}

	a.log.Info("Application shut down successfully")
}
