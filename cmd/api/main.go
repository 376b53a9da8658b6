package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/pageza/mess-menu/backend/config"
	"github.com/pageza/mess-menu/backend/internal/database"
	"github.com/pageza/mess-menu/backend/internal/logging"
	"github.com/pageza/mess-menu/backend/internal/middleware"
	"github.com/pageza/mess-menu/backend/internal/models"
	"github.com/pageza/mess-menu/backend/internal/router"
	"github.com/pageza/mess-menu/backend/internal/server"
	"github.com/pageza/mess-menu/backend/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.Environment, cfg.LogLevel)
	if cfg.Environment != config.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	menus := service.NewMenuStore()
	if cfg.SeedMenu {
		today := time.Now().Format(models.DateLayout)
		menus.Seed(today, service.SampleDay())
		logger.WithField("date", today).Info("seeded sample menu")
	}

	// Rate limiting is optional; run without it if Redis is unavailable
	var limiter *middleware.RateLimiter
	redisClient, err := database.NewRedisClient(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Warn("rate limiting disabled")
	} else {
		defer redisClient.Close()
		limiter = middleware.NewWriteRateLimiter(redisClient, cfg.RateLimitWindow, cfg.RateLimitRequests, logger)
	}

	var objects service.ObjectStore
	if cfg.ArchiveEnabled() {
		s3cfg, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			logger.WithError(err).Warn("menu archiving disabled")
		} else {
			objects = s3cfg
			logger.WithField("bucket", cfg.S3BucketName).Info("menu archiving enabled")
		}
	}

	engine := router.SetupRouter(router.Dependencies{
		Menus:          menus,
		Cart:           service.NewCartService(models.DefaultCatalog()),
		Archive:        service.NewArchiveService(menus, objects, cfg.S3Prefix),
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimiter:    limiter,
	})
	srv := server.NewServer(cfg.Addr(), engine, logger)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.WithError(err).Fatal("server error")
		}
		return
	case sig := <-quit:
		logger.WithField("signal", sig.String()).Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("server shutdown error")
		return
	}
	logger.Info("server stopped")
}
