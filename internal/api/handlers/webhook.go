package handlers

import (
	"encoding/xml"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/services"
)

// WebhookHandler answers the Twilio WhatsApp webhook with inline TwiML.
type WebhookHandler struct {
	bot    *services.BotService
	logger *logrus.Logger
}

// NewWebhookHandler creates the Twilio webhook handler.
func NewWebhookHandler(bot *services.BotService, logger *logrus.Logger) *WebhookHandler {
	return &WebhookHandler{bot: bot, logger: logger}
}

type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

// HandleTwilio processes one inbound message. Twilio retries non-200
// answers, so even internal failures reply 200 with an apology body.
func (h *WebhookHandler) HandleTwilio(c *gin.Context) {
	body := c.PostForm("Body")
	from := c.PostForm("From")
	if from == "" {
		from = "unknown"
	}

	reply := h.safeReply(c, from, body)

	c.XML(http.StatusOK, twimlResponse{Message: reply})
}

func (h *WebhookHandler) safeReply(c *gin.Context, from, body string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Errorf("webhook panic for %s: %v", from, r)
			reply = "Ocorreu um erro interno. A equipe já foi notificada."
		}
	}()
	return h.bot.HandleCommand(c.Request.Context(), from, body)
}
