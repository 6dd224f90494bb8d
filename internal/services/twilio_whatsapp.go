package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioWhatsAppService sends WhatsApp messages through the Twilio API.
type TwilioWhatsAppService struct {
	client         *twilio.RestClient
	fromNumber     string
	logger         *logrus.Logger
	circuitBreaker *simpleCircuitBreaker
	rateLimiter    *MessageRateLimiter
}

// simpleCircuitBreaker guards the messaging API: after threshold
// consecutive failures it rejects sends until the timeout elapses.
// Webhook handlers send concurrently, so state is mutex-protected.
type simpleCircuitBreaker struct {
	mu          sync.Mutex
	failures    int
	lastFailure time.Time
	threshold   int
	timeout     time.Duration
}

func newSimpleCircuitBreaker(threshold int, timeout time.Duration) *simpleCircuitBreaker {
	return &simpleCircuitBreaker{threshold: threshold, timeout: timeout}
}

func (cb *simpleCircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.failures < cb.threshold {
		return true
	}
	return time.Since(cb.lastFailure) > cb.timeout
}

func (cb *simpleCircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	cb.failures = 0
	cb.mu.Unlock()
}

func (cb *simpleCircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	cb.failures++
	cb.lastFailure = time.Now()
	cb.mu.Unlock()
}

// NewTwilioWhatsAppService creates a Twilio-backed sender. fromNumber is
// the sandbox or business number without the whatsapp: prefix.
func NewTwilioWhatsAppService(accountSID, authToken, fromNumber string, rateLimiter *MessageRateLimiter, logger *logrus.Logger) *TwilioWhatsAppService {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioWhatsAppService{
		client:         client,
		fromNumber:     fromNumber,
		logger:         logger,
		circuitBreaker: newSimpleCircuitBreaker(5, 30*time.Second),
		rateLimiter:    rateLimiter,
	}
}

// SendMessage delivers one WhatsApp message via Twilio.
func (s *TwilioWhatsAppService) SendMessage(to, body string) error {
	if !s.circuitBreaker.Allow() {
		return fmt.Errorf("messaging service temporarily unavailable")
	}
	if s.rateLimiter != nil {
		if err := s.rateLimiter.Allow(to); err != nil {
			return fmt.Errorf("rate limit exceeded: %w", err)
		}
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(whatsAppAddress(to))
	params.SetFrom(whatsAppAddress(s.fromNumber))
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		s.circuitBreaker.RecordFailure()
		s.logger.Errorf("twilio send to %s: %v", to, err)
		return fmt.Errorf("failed to send WhatsApp message: %w", err)
	}

	s.circuitBreaker.RecordSuccess()
	if resp.Sid != nil {
		s.logger.Debugf("twilio message sent (SID: %s)", *resp.Sid)
	}
	return nil
}

// whatsAppAddress ensures the whatsapp: channel prefix Twilio expects.
func whatsAppAddress(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}
