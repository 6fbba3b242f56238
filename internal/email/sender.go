package email

import (
	"context"

	"bankwise_support_backend/platform/config"
	"bankwise_support_backend/platform/logger"
)

// Sender delivers one notification email.
type Sender interface {
	Send(ctx context.Context, toEmail, subject, body string) error
}

// NewSender returns the SMTP sender when the email channel is enabled, and
// a logging no-op sender otherwise.
func NewSender(cfg config.EmailConfig, log *logger.Logger) Sender {
	if !cfg.GetEmailEnabled() {
		log.Info("email channel disabled by configuration")
		return &disabledSender{log: log}
	}
	return NewSMTPSender(cfg)
}

type disabledSender struct {
	log *logger.Logger
}

func (s *disabledSender) Send(_ context.Context, toEmail, subject, _ string) error {
	s.log.Debug("email suppressed, channel disabled", "to", toEmail, "subject", subject)
	return nil
}
