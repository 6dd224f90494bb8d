package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/analyzer"
	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/api"
	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/api/middleware"
	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/cache"
	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/odds"
	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/providers/apifootball"
	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/services"
	"github.com/jean-rgsocd/chatbot-whatsapp-ia/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	logger := logrus.StandardLogger()
	if cfg.IsDevelopment() {
		logrus.SetLevel(logrus.DebugLevel)
		gin.SetMode(gin.DebugMode)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
		gin.SetMode(gin.ReleaseMode)
	}

	// Cache backends: in-process memo stores by default, redis when configured
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	liveCacheTTL := time.Duration(cfg.LiveCacheTTL) * time.Second
	var memoCache, liveCache cache.Store
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logrus.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient := redis.NewClient(opt)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logrus.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		memoCache = cache.NewRedisStore(redisClient, cacheTTL, logger)
		liveCache = cache.NewRedisStore(redisClient, liveCacheTTL, logger)
		logrus.Info("Using Redis cache backend")
	} else {
		memoCache = cache.NewMemoryStore(cacheTTL)
		liveCache = cache.NewMemoryStore(liveCacheTTL)
	}

	// Upstream client
	apiClient := apifootball.NewClient(cfg.APISportsKey, apifootball.Options{
		BaseURL:        cfg.APISportsBaseURL,
		Timeout:        cfg.APITimeout,
		RequestsPerSec: cfg.APIRateLimit,
		Cache:          memoCache,
		LiveCache:      liveCache,
	}, logger)

	// Analysis pipeline
	thresholds := analyzerThresholds(cfg)
	enricher := odds.NewEnricher(cfg.PreferredBookmakers)
	radar := services.NewRadarService(apiClient, logger)
	tipster := services.NewTipsterService(apiClient, radar, enricher, thresholds, logger)
	opta := services.NewOptaService(apiClient, cfg.Season, logger)

	// Bot surface
	sessions := services.NewSessionStore(time.Duration(cfg.SessionTTLMinutes) * time.Minute)
	bot := services.NewBotService(tipster, opta, sessions, logger)
	sender := buildSender(cfg, logger)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.CorsOrigins))

	api.SetupRoutes(router, bot, tipster, opta, sender, cfg, logger)

	// Setup server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}

func analyzerThresholds(cfg *config.Config) analyzer.Thresholds {
	t := analyzer.DefaultThresholds()
	if cfg.PowerDiffStrong > 0 {
		t.PowerDiffStrong = cfg.PowerDiffStrong
	}
	if cfg.PowerDiffSlight > 0 {
		t.PowerDiffSlight = cfg.PowerDiffSlight
	}
	return t
}

func buildSender(cfg *config.Config, logger *logrus.Logger) services.MessageSender {
	limiter := services.NewMessageRateLimiter(cfg.MessageRateLimit, time.Duration(cfg.MessageRateWindowMinutes)*time.Minute)

	switch cfg.WhatsAppProvider {
	case "twilio":
		return services.NewTwilioWhatsAppService(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, limiter, logger)
	case "meta":
		return services.NewMetaWhatsAppService(cfg.MetaAccessToken, cfg.MetaPhoneNumberID, limiter, logger)
	default:
		logrus.Warn("WHATSAPP_PROVIDER not set to twilio or meta; outbound messages are logged only")
		return services.NewMockMessageSender(logger)
	}
}
