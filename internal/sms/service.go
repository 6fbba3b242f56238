package sms

import (
	"context"

	"bankwise_support_backend/platform/config"
	"bankwise_support_backend/platform/logger"
	"bankwise_support_backend/platform/phone"
)

// BulkSend is one delivery outcome inside a bulk result.
type BulkSend struct {
	PhoneNumber string `json:"phone_number"`
	MessageSID  string `json:"message_sid,omitempty"`
	Error       string `json:"error,omitempty"`
}

// BulkResult summarizes a bulk delivery.
type BulkResult struct {
	Success         bool       `json:"success"`
	TotalNumbers    int        `json:"total_numbers"`
	SuccessfulSends []BulkSend `json:"successful_sends"`
	FailedSends     []BulkSend `json:"failed_sends"`
}

// Service sends SMS messages through the configured sender. When Twilio is
// disabled the mock sender is used, so internal notification flows still
// produce a delivery record.
type Service struct {
	sender  Sender
	enabled bool
	log     *logger.Logger
}

func NewService(cfg config.SMSConfig, log *logger.Logger) *Service {
	svc := &Service{enabled: cfg.GetSMSEnabled(), log: log}
	if svc.enabled {
		svc.sender = NewTwilioClient(cfg, log)
	} else {
		log.Info("twilio disabled by configuration, using mock sms sender")
		svc.sender = NewMockClient(log)
	}
	return svc
}

// Enabled reports whether the real SMS channel is configured.
func (s *Service) Enabled() bool { return s.enabled }

// Send delivers one message and logs the outcome.
func (s *Service) Send(ctx context.Context, to, message string) (SendResult, error) {
	normalized := phone.NormalizeE164(to)
	res, err := s.sender.Send(ctx, normalized, message)
	if err != nil {
		s.log.SMSEvent(normalized, false, err.Error())
		return SendResult{}, err
	}
	s.log.SMSEvent(res.To, true, "sid "+res.MessageSID)
	return res, nil
}

// SendBulk delivers one message to each number and collects per-number
// outcomes. A bulk send succeeds when at least one delivery succeeded.
func (s *Service) SendBulk(ctx context.Context, numbers []string, message string) BulkResult {
	result := BulkResult{
		TotalNumbers:    len(numbers),
		SuccessfulSends: []BulkSend{},
		FailedSends:     []BulkSend{},
	}

	for _, number := range numbers {
		res, err := s.Send(ctx, number, message)
		if err != nil {
			result.FailedSends = append(result.FailedSends, BulkSend{
				PhoneNumber: number,
				Error:       err.Error(),
			})
			continue
		}
		result.SuccessfulSends = append(result.SuccessfulSends, BulkSend{
			PhoneNumber: number,
			MessageSID:  res.MessageSID,
		})
	}

	result.Success = len(result.SuccessfulSends) > 0
	return result
}
