package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-url-shortener/internal/config"
	"github.com/sbilibin2017/gw-url-shortener/internal/handlers"
	"github.com/sbilibin2017/gw-url-shortener/internal/jwt"
	"github.com/sbilibin2017/gw-url-shortener/internal/logger"
	"github.com/sbilibin2017/gw-url-shortener/internal/migrations"
	"github.com/sbilibin2017/gw-url-shortener/internal/repositories"
	"github.com/sbilibin2017/gw-url-shortener/internal/router"
	"github.com/sbilibin2017/gw-url-shortener/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-url-shortener/docs"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title URL Shortener API
// @version 1.0.0
// @description HTTP service for shortening URLs with optional ownership, click accounting and JWT authentication
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.New(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, cache, click-event publisher and HTTP
// server, applies migrations and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.DatabaseMaxOpenConns)
	db.SetMaxIdleConns(cfg.DatabaseMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Apply migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	logger.Log.Info("Migrations applied")

	// Connect to Redis (optional)
	var cache services.URLCache
	var cacheInvalidator services.URLCacheInvalidator
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()

		cacheRepo := repositories.NewURLCacheRepository(rdb, cfg.CacheExpiration)
		cache = cacheRepo
		cacheInvalidator = cacheRepo
		logger.Log.Infof("Redis cache enabled at %s", cfg.RedisAddr)
	}

	// Connect to Kafka (optional)
	var clickWriter services.KafkaWriter
	if cfg.KafkaAddr != "" {
		kw := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaAddr),
			Topic:        cfg.KafkaClicksTopic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		}
		defer kw.Close()
		clickWriter = kw
		logger.Log.Infof("Click events published to %s topic %s", cfg.KafkaAddr, cfg.KafkaClicksTopic)
	}

	// Initialize JWT service
	tokens := jwt.New(cfg.JWTSecret, cfg.JWTExpiration, cfg.JWTRefreshSecret, cfg.JWTRefreshExpiration)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	urlReadRepo := repositories.NewURLReadRepository(db)
	urlWriteRepo := repositories.NewURLWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	urlService := services.NewURLService(urlReadRepo, urlWriteRepo, cache, clickWriter, cfg.BaseURL)
	userURLService := services.NewUserURLService(urlReadRepo, urlWriteRepo, cacheInvalidator)

	// Initialize router
	r := router.New(db, tokens, authService, router.Handlers{
		Register:  handlers.NewRegisterHandler(authService),
		Login:     handlers.NewLoginHandler(authService),
		Refresh:   handlers.NewRefreshHandler(authService),
		Logout:    handlers.NewLogoutHandler(authService),
		Shorten:   handlers.NewShortenHandler(urlService),
		Resolve:   handlers.NewResolveHandler(urlService),
		Redirect:  handlers.NewRedirectHandler(urlService),
		ListURLs:  handlers.NewListURLsHandler(userURLService),
		UpdateURL: handlers.NewUpdateURLHandler(userURLService),
		DeleteURL: handlers.NewDeleteURLHandler(userURLService),
	})

	srv := &http.Server{
		Addr:    cfg.RunAddr,
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.RunAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}

	logger.Log.Info("Server stopped gracefully")
	return nil
}
