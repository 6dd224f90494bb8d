package services

import (
	"github.com/sirupsen/logrus"
)

// MessageSender delivers outbound WhatsApp messages. The Twilio webhook
// replies inline via TwiML, so this interface is used by the Meta webhook
// and by any proactive notification path.
type MessageSender interface {
	SendMessage(to, body string) error
}

// MockMessageSender logs instead of sending; the development default.
type MockMessageSender struct {
	logger *logrus.Logger
}

// NewMockMessageSender creates the logging sender.
func NewMockMessageSender(logger *logrus.Logger) *MockMessageSender {
	return &MockMessageSender{logger: logger}
}

func (s *MockMessageSender) SendMessage(to, body string) error {
	s.logger.Infof("MOCK WhatsApp: send to %s: %s", to, body)
	return nil
}
