package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"listing-app/config"
	"listing-app/consumers"
	"listing-app/controllers"
	"listing-app/middleware"
	"listing-app/repositories"
	"listing-app/services"
	"listing-app/templates"
	"listing-app/utils"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// a. Cargar configuración
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return err
	}

	logger, err := utils.NewLogger(cfg.LogLevel, cfg.Env)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	logger.Infow("Configuration loaded",
		"port", cfg.Port,
		"env", cfg.Env,
		"api_base_url", cfg.APIBaseURL,
		"memcached_host", cfg.MemcachedHost,
		"rabbitmq", cfg.RabbitMQURL != "",
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// b. Repositorios
	apiRepo := repositories.NewPropertyAPIRepository(cfg.APIBaseURL, cfg.APIToken, cfg.APITimeout, nil)
	cacheRepo := repositories.NewCacheRepository(cfg.MemcachedHost, cfg.CatalogCacheTTL, logger)

	// c. Servicios
	forms := services.NewFormRegistry(cfg.FormTTL)
	defer forms.Stop()

	catalogService := services.NewCatalogService(apiRepo, cacheRepo, cfg.CatalogCacheTTL, logger)
	propertyService := services.NewPropertyService(apiRepo, logger)
	bookingService := services.NewBookingService(apiRepo, forms, cfg.BookingFee, logger)

	// d. Consumidor de RabbitMQ (opcional)
	consumer := startConsumer(cfg, catalogService, logger)

	// e. Router
	views, err := templates.Load()
	if err != nil {
		return err
	}
	sessions := middleware.NewSessionManager(cfg.SessionLifetime, cfg.IsProduction())

	pageController := controllers.NewPageController(catalogService, propertyService, bookingService, sessions, logger)
	apiController := controllers.NewAPIController(catalogService, propertyService, bookingService, logger)
	router := controllers.NewRouter(pageController, apiController, views, logger)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.CORS(cfg.AllowedOrigins)(sessions.LoadAndSave(router)),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// f. Servidor HTTP en goroutine
	serverErr := make(chan error, 1)
	go func() {
		logger.Infof("Starting HTTP server on port %s...", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// g. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("failed to start server: %w", err)
	case sig := <-quit:
		logger.Infof("Received %s, shutting down...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Errorw("Error shutting down server", "error", err)
	} else {
		logger.Infof("HTTP server shut down successfully")
	}

	if consumer != nil {
		if err := consumer.Close(); err != nil {
			logger.Errorw("Error closing RabbitMQ consumer", "error", err)
		}
	}

	logger.Infof("listing-app shut down complete")
	return nil
}

// startConsumer arranca el consumidor si hay RABBITMQ_URL. Si falla se sigue
// sin invalidación: el caché expira solo por TTL.
func startConsumer(cfg *config.Config, catalog services.CatalogService, logger *zap.SugaredLogger) *consumers.RabbitMQConsumer {
	if cfg.RabbitMQURL == "" {
		logger.Infof("RABBITMQ_URL not set, catalog cache invalidation disabled")
		return nil
	}

	consumer, err := consumers.NewRabbitMQConsumer(cfg.RabbitMQURL, cfg.PropertiesQueue, catalog, logger)
	if err != nil {
		logger.Warnw("Failed to create RabbitMQ consumer", "error", err)
		return nil
	}
	if err := consumer.Start(); err != nil {
		logger.Warnw("Error starting RabbitMQ consumer", "error", err)
		consumer.Close()
		return nil
	}
	return consumer
}
