package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vendordesk/vendordesk/internal/app"
	"github.com/vendordesk/vendordesk/internal/auth"
	"github.com/vendordesk/vendordesk/internal/observability"
	"github.com/vendordesk/vendordesk/internal/platform/db"
	"github.com/vendordesk/vendordesk/internal/suppliers"
	"github.com/vendordesk/vendordesk/internal/uploads"
)

const suppliersCollection = "suppliers"

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	client, err := db.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Error("connect mongo", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := db.Disconnect(client); err != nil {
			logger.Warn("mongo disconnect", slog.Any("error", err))
		}
	}()

	passwordHash := cfg.AdminPasswordHash
	if passwordHash == "" {
		passwordHash, err = auth.HashPassword(cfg.AdminPassword)
		if err != nil {
			logger.Error("hash admin password", slog.Any("error", err))
			os.Exit(1)
		}
	}

	tokenIssuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	userRepo := auth.NewStaticRepository(auth.User{
		ID:           "1",
		Email:        cfg.AdminEmail,
		Name:         cfg.AdminName,
		PasswordHash: passwordHash,
	})
	authService := auth.NewService(userRepo, tokenIssuer)
	authHandler := auth.NewHandler(logger, authService)

	supplierRepo := suppliers.NewRepository(client.Database(cfg.MongoDB).Collection(suppliersCollection))
	supplierService := suppliers.NewService(supplierRepo)
	supplierHandler := suppliers.NewHandler(logger, supplierService)

	uploadStore, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		logger.Error("init upload store", slog.Any("error", err))
		os.Exit(1)
	}
	uploadHandler := uploads.NewHandler(logger, uploadStore, cfg.UploadMaxBytes)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		TokenIssuer:      tokenIssuer,
		AuthHandler:      authHandler,
		SuppliersHandler: supplierHandler,
		UploadsHandler:   uploadHandler,
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
