package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// MetaWhatsAppService sends messages through the Meta Cloud API, the
// alternative transport to Twilio.
type MetaWhatsAppService struct {
	httpClient    *http.Client
	accessToken   string
	phoneNumberID string
	baseURL       string
	logger        *logrus.Logger
	rateLimiter   *MessageRateLimiter
}

// NewMetaWhatsAppService creates a Meta Cloud API sender.
func NewMetaWhatsAppService(accessToken, phoneNumberID string, rateLimiter *MessageRateLimiter, logger *logrus.Logger) *MetaWhatsAppService {
	return &MetaWhatsAppService{
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		accessToken:   accessToken,
		phoneNumberID: phoneNumberID,
		baseURL:       "https://graph.facebook.com/v17.0",
		logger:        logger,
		rateLimiter:   rateLimiter,
	}
}

type metaTextMessage struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             metaText `json:"text"`
}

type metaText struct {
	Body string `json:"body"`
}

// SendMessage delivers one WhatsApp message via the Cloud API.
func (s *MetaWhatsAppService) SendMessage(to, body string) error {
	if s.rateLimiter != nil {
		if err := s.rateLimiter.Allow(to); err != nil {
			return fmt.Errorf("rate limit exceeded: %w", err)
		}
	}

	payload := metaTextMessage{
		MessagingProduct: "whatsapp",
		To:               strings.TrimPrefix(to, "whatsapp:"),
		Type:             "text",
		Text:             metaText{Body: body},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", s.baseURL, s.phoneNumberID)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Errorf("meta cloud send to %s: %v", to, err)
		return fmt.Errorf("failed to send WhatsApp message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("meta cloud API returned status %d", resp.StatusCode)
	}
	return nil
}
