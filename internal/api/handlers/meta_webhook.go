package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jean-rgsocd/chatbot-whatsapp-ia/internal/services"
)

// MetaWebhookHandler serves the Meta Cloud API webhook: GET for the
// subscription handshake, POST for inbound messages. Replies go out
// through the configured sender instead of the HTTP response.
type MetaWebhookHandler struct {
	bot         *services.BotService
	sender      services.MessageSender
	verifyToken string
	logger      *logrus.Logger
}

// NewMetaWebhookHandler creates the Meta webhook handler.
func NewMetaWebhookHandler(bot *services.BotService, sender services.MessageSender, verifyToken string, logger *logrus.Logger) *MetaWebhookHandler {
	return &MetaWebhookHandler{
		bot:         bot,
		sender:      sender,
		verifyToken: verifyToken,
		logger:      logger,
	}
}

// Verify answers the hub challenge during webhook registration.
func (h *MetaWebhookHandler) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == h.verifyToken {
		c.String(http.StatusOK, challenge)
		return
	}
	c.Status(http.StatusForbidden)
}

type metaWebhookPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Messages []struct {
					From string `json:"from"`
					Text struct {
						Body string `json:"body"`
					} `json:"text"`
					Type string `json:"type"`
				} `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// Receive processes inbound Cloud API notifications. Meta expects 200 for
// every delivery; processing failures are logged, never surfaced.
func (h *MetaWebhookHandler) Receive(c *gin.Context) {
	var payload metaWebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warnf("meta webhook: unreadable payload: %v", err)
		c.Status(http.StatusOK)
		return
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, message := range change.Value.Messages {
				if message.Type != "text" || message.From == "" {
					continue
				}
				reply := h.bot.HandleCommand(c.Request.Context(), message.From, message.Text.Body)
				if err := h.sender.SendMessage(message.From, reply); err != nil {
					h.logger.Errorf("meta webhook: reply to %s: %v", message.From, err)
				}
			}
		}
	}
	c.Status(http.StatusOK)
}
