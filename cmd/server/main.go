package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/zeolike/listing-service/internal/adapter/geo"
	natsadapter "github.com/zeolike/listing-service/internal/adapter/messaging/nats"
	"github.com/zeolike/listing-service/internal/adapter/repository/cache"
	"github.com/zeolike/listing-service/internal/adapter/repository/mongodb"
	"github.com/zeolike/listing-service/internal/adapter/storage/s3"
	"github.com/zeolike/listing-service/internal/config"
	"github.com/zeolike/listing-service/internal/listing/usecase"
	"github.com/zeolike/listing-service/internal/mailer"
	"github.com/zeolike/listing-service/internal/platform/logger"
	"github.com/zeolike/listing-service/internal/platform/metrics"
	"github.com/zeolike/listing-service/internal/port/http/handler"
	"github.com/zeolike/listing-service/internal/port/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: cfg.LogEncoding})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	ctx := context.Background()

	mongoClient, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		appLogger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	db := mongoClient.Database(cfg.MongoDB)

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		appLogger.Fatal("Failed to ensure indexes", zap.Error(err))
	}
	appLogger.Info("MongoDB connected", zap.String("database", cfg.MongoDB))

	listingRepo := mongodb.NewListingRepository(db, appLogger)
	favoriteRepo := mongodb.NewFavoriteRepository(db, appLogger)
	propertyRepo := mongodb.NewPropertyRepository(db, appLogger)

	listingCache, err := cache.NewListingCache(cfg.RedisAddress)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Redis connected", zap.String("address", cfg.RedisAddress))

	publisher, err := natsadapter.NewPublisher(cfg.NATSURL)
	if err != nil {
		appLogger.Fatal("Failed to connect to NATS", zap.Error(err))
	}
	appLogger.Info("NATS connected", zap.String("url", cfg.NATSURL))

	storage, err := s3.NewS3Storage(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket, cfg.MinIOUseSSL, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize photo storage", zap.Error(err))
	}

	smtpMailer := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPEmail, cfg.SMTPPassword)
	googleClient := geo.NewGoogleClient(cfg.GoogleMapsAPIKey, cfg.GeoTimeout)
	walkScoreClient := geo.NewWalkScoreClient(cfg.WalkScoreAPIKey, cfg.GeoTimeout)

	listingUC := usecase.NewListingUsecase(listingRepo, favoriteRepo, listingCache, publisher, smtpMailer, appLogger)
	favoriteUC := usecase.NewFavoriteUsecase(favoriteRepo, listingRepo, publisher, appLogger)
	photoUC := usecase.NewPhotoUsecase(storage, listingRepo, listingCache, appLogger)
	neighborhoodUC := usecase.NewNeighborhoodUsecase(listingRepo, googleClient, walkScoreClient, appLogger)
	propertyUC := usecase.NewPropertyUsecase(propertyRepo)

	metricsManager := metrics.NewManager("listing_service")
	go func() {
		if err := metrics.StartServer(cfg.MetricsPort, appLogger, metricsManager.Registry); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Metrics server stopped", zap.Error(err))
		}
	}()

	listingHandler := handler.NewListingHandler(listingUC, photoUC, neighborhoodUC, metricsManager, appLogger)
	favoriteHandler := handler.NewFavoriteHandler(favoriteUC, metricsManager, appLogger)
	propertyHandler := handler.NewPropertyHandler(propertyUC, appLogger)

	mux := router.New(listingHandler, favoriteHandler, propertyHandler, cfg.JWTSecret, metricsManager, appLogger)

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		appLogger.Info("HTTP server starting", zap.String("port", cfg.HTTPPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	appLogger.Info("Shutdown signal received", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP server shutdown failed", zap.Error(err))
	}

	publisher.Close()
	if err := listingCache.Close(); err != nil {
		appLogger.Error("Failed to close Redis client", zap.Error(err))
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		appLogger.Error("Failed to disconnect MongoDB", zap.Error(err))
	}

	appLogger.Info("Application shut down")
}
