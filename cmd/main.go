package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	configs "github.com/Payphone-Digital/content-gateway/config"
	"github.com/Payphone-Digital/content-gateway/internal/constants"
	"github.com/Payphone-Digital/content-gateway/internal/handler"
	"github.com/Payphone-Digital/content-gateway/internal/router"
	"github.com/Payphone-Digital/content-gateway/internal/service"
	"github.com/Payphone-Digital/content-gateway/pkg/content"
	"github.com/Payphone-Digital/content-gateway/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Initialize Zap logger
	if err := logger.InitLogger(config); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.GetLogger().Info("Application starting",
		zap.String("app_name", config.App.Name),
		zap.String("environment", config.App.Environment),
		zap.String("version", constants.AppVersion),
	)

	// Content client
	client := content.New(config.Content.BaseURL,
		content.WithTimeout(config.Content.Timeout),
		content.WithAPIPath(config.Content.APIPath),
		content.WithErrorHook(content.ZapErrorHook(logger.GetLogger())),
		content.WithLogger(logger.GetLogger()),
	)

	logger.GetLogger().Info("Content client initialized",
		zap.String("base_url", client.BaseURL()),
		zap.Duration("timeout", config.Content.Timeout),
		zap.Bool("empty_on_error", config.Content.EmptyOnError),
	)

	// Services
	contentService := service.NewContentService(client, config.Content.EmptyOnError)

	// Handlers
	contentHandler := handler.NewContentHandler(contentService)
	healthHandler := handler.NewHealthHandler(contentService.BaseURL())

	r := router.NewRouter(
		contentHandler,
		healthHandler,
		config,
	).SetupRoutes()

	srv := &http.Server{
		Addr:    config.Address(),
		Handler: r,
	}

	go func() {
		logger.GetLogger().Info("Server starting",
			zap.String("port", config.App.Port),
			zap.String("host", "0.0.0.0"),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.GetLogger().Fatal("Failed to start server",
				zap.Error(err),
				zap.String("port", config.App.Port),
			)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.GetLogger().Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), config.App.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.LogError(err, "Server forced to shutdown",
			zap.Duration("shutdown_timeout", config.App.ShutdownTimeout),
		)
	}
	logger.GetLogger().Info("Server exited")
}
