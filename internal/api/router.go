package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/api/handlers"
	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/services"
	"github.com/jean-rgsocd/chatbot-whatsapp-ia/pkg/config"
)

// SetupRoutes configures the webhook and REST surfaces on the router.
func SetupRoutes(router *gin.Engine, bot *services.BotService, tipster *services.TipsterService, opta *services.OptaService, sender services.MessageSender, cfg *config.Config, logger *logrus.Logger) {
	webhookHandler := handlers.NewWebhookHandler(bot, logger)
	metaHandler := handlers.NewMetaWebhookHandler(bot, sender, cfg.MetaVerifyToken, logger)
	analysisHandler := handlers.NewAnalysisHandler(tipster, logger)
	playerHandler := handlers.NewPlayerHandler(opta, logger)

	router.GET("/health", handlers.HealthCheck)

	// WhatsApp entry points
	router.POST("/webhook", webhookHandler.HandleTwilio)
	router.GET("/webhook/meta", metaHandler.Verify)
	router.POST("/webhook/meta", metaHandler.Receive)

	// REST surface mirroring the bot commands
	v1 := router.Group("/api/v1")
	{
		v1.GET("/fixtures", analysisHandler.ListFixtures)
		v1.GET("/fixtures/live", analysisHandler.ListLiveFixtures)
		v1.POST("/analyze/game", analysisHandler.AnalyzeGame)
		v1.GET("/analyze/live/:id", analysisHandler.AnalyzeLive)
		v1.GET("/players/:id", playerHandler.AnalyzePlayer)
	}
}
