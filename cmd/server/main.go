package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/KeerthikaArumugam/clear-case-tracker/docs"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/auth"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/cache"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/config"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/handler"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/kv"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/logger"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/metrics"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/repository"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/router"
	"github.com/KeerthikaArumugam/clear-case-tracker/internal/service"
)

// @title Clear Case Tracker API
// @version 1.0
// @description Complaint tracking API: signup and login, complaint submission and update threads, admin triage and reports.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logger)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	store, err := kv.NewStore(log, cfg.Storage)
	if err != nil {
		log.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn("Failed to close storage", zap.Error(err))
		}
	}()

	repos := repository.New(store, cfg.Storage.Namespace, log)

	cacheClient := cache.NewFromConfig(cfg.Cache.Redis)
	if cacheClient.Enabled() {
		log.Info("Report cache enabled", zap.String("addr", cfg.Cache.Redis.Addr))
		defer func() { _ = cacheClient.Close() }()
	} else {
		log.Info("Report cache disabled, tokens are only bound to the session")
	}

	m := metrics.New(cfg.Metrics)

	// Initialize services
	identity := service.NewIdentityService(repos, auth.SHA256Hasher{}, m, log, nil)
	complaints := service.NewComplaintService(repos, cacheClient, m, log, nil)
	reports := service.NewReportService(complaints, cacheClient, repos.Keys, nil)
	users := service.NewUserService(repos)

	if cfg.SeedOnStart {
		seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := identity.EnsureSeedData(seedCtx)
		cancel()
		if err != nil {
			log.Fatal("Failed to seed demo data", zap.Error(err))
		}
	}

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, m, handler.NewAuthMiddleware(identity, jwtService, tokenStore, log), router.Handlers{
		Auth:       handler.NewAuthHandler(identity, jwtService, tokenStore, log),
		Complaints: handler.NewComplaintHandler(complaints),
		Admin:      handler.NewAdminHandler(complaints, reports),
		Users:      handler.NewUserHandler(users),
		Seed:       handler.NewSeedHandler(identity),
	})

	docs.SwaggerInfo.Host = swaggerHost(cfg)
	log.Info("Swagger documentation available",
		zap.String("url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html"))

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("Starting server", zap.String("addr", addr), zap.String("storage", cfg.Storage.Type))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server start failed", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
}

// swaggerHost strips any scheme from SWAGGER_HOST; swagger expects a bare host.
func swaggerHost(cfg *config.Config) string {
	if cfg.SwaggerHost == "" {
		return "localhost:" + cfg.ServerPort
	}
	host := strings.TrimPrefix(cfg.SwaggerHost, "https://")
	return strings.TrimPrefix(host, "http://")
}
