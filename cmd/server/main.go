// @title AI Draft Add-on API
// @version 1.0
// @description HTTP endpoints of the Gmail add-on that drafts, replies to and summarizes email.
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@example.com
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"aidraft-addon/config"
	"aidraft-addon/internal/addon"
	"aidraft-addon/internal/cards"
	"aidraft-addon/internal/handlers"
	"aidraft-addon/internal/logger"
	"aidraft-addon/internal/middleware"
	"aidraft-addon/internal/services"
	"aidraft-addon/internal/utils"

	_ "aidraft-addon/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"
	shutdownTimeout    = 15 * time.Second
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console", nil)
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, nil)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	// Initialize services
	gateway, err := newGateway(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize AI gateway")
	}

	gmailService := services.NewGmailService(log)
	calendarService := services.NewCalendarService(log)
	summaryService := services.NewSummaryService(gateway, log)

	builder := cards.NewBuilder(cfg.PublicBaseURL)
	router := addon.NewRouter(gmailService)
	dispatcher := addon.NewDispatcher(gmailService, calendarService, gateway, summaryService, builder, log)

	// Initialize handlers
	addonHandler := handlers.NewAddonHandler(router, dispatcher, builder, log)

	// Initialize Gin
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger.Component(log, "http")))

	// Public routes
	r.GET("/api/health", handlers.Health(cfg.AIProvider))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Add-on host callbacks
	keys := utils.NewGoogleKeySet(utils.GoogleCertsURL, nil)
	hostRoutes := r.Group("/addon")
	hostRoutes.Use(middleware.AuthMiddleware(cfg, keys.Keyfunc, logger.Component(log, "auth")))
	{
		hostRoutes.POST("/homepage", addonHandler.Homepage)
		hostRoutes.POST("/actions/:action", addonHandler.Action)
	}

	if cfg.AddonAudience == "" {
		log.Warn().Msg("ADDON_AUDIENCE is not set, add-on requests are not authenticated")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("provider", cfg.AIProvider).
			Str("public_base_url", cfg.PublicBaseURL).
			Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Graceful shutdown with timeout
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Dur("timeout", shutdownTimeout).Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error shutting down")
		return
	}
	log.Info().Msg("Server shut down gracefully")
}

// newGateway returns the AI client for cfg.AIProvider.
func newGateway(cfg *config.Config, log zerolog.Logger) (services.AIGateway, error) {
	if cfg.AIProvider == config.ProviderOpenAI {
		return services.NewOpenAIService(cfg, log), nil
	}

	tokens, err := vertexTokenSource(cfg)
	if err != nil {
		return nil, err
	}
	if tokens == nil {
		log.Warn().Str("endpoint", cfg.VertexURL()).Msg("No Vertex credentials, calling endpoint unauthenticated")
	}
	return services.NewVertexService(cfg, tokens, log), nil
}

// vertexTokenSource prefers VERTEX_ACCESS_TOKEN, then application default
// credentials. A custom VERTEX_ENDPOINT may run without credentials.
func vertexTokenSource(cfg *config.Config) (oauth2.TokenSource, error) {
	if cfg.VertexAccessToken != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.VertexAccessToken}), nil
	}

	tokens, err := google.DefaultTokenSource(context.Background(), cloudPlatformScope)
	if err != nil {
		if cfg.VertexEndpoint != "" {
			return nil, nil
		}
		return nil, err
	}
	return tokens, nil
}
