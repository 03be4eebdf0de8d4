package email

import (
	"github.com/Amsa221/softskills-project/internal/logger"
)

// NoopProvider logs instead of sending. Used in tests and when mail is
// disabled in config.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(msg *Message) error {
	logger.Debug("email suppressed (noop provider)", "to", msg.To, "subject", msg.Subject)
	return nil
}
