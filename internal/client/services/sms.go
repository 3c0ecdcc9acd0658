package services

import (
	"context"
	"fmt"

	"github.com/nayeemhs/orderdesk/internal/client/api"
	"github.com/nayeemhs/orderdesk/internal/client/models"
	"github.com/nayeemhs/orderdesk/internal/client/notify"
	"github.com/nayeemhs/orderdesk/internal/logging"
)

// SMSService sends bulk SMS to customer numbers and reports the remaining
// gateway balance. Admin only; nothing here is cached, the balance is read
// fresh each time.
type SMSService struct {
	client   api.Client
	notifier notify.Notifier
	logger   logging.Logger
}

func NewSMSService(client api.Client, notifier notify.Notifier, logger logging.Logger) *SMSService {
	return &SMSService{
		client:   client,
		notifier: notifier,
		logger:   logger.With("component", "sms"),
	}
}

// Send validates and submits a bulk SMS. Rejections, including the gateway's
// rate limit, are surfaced through the notifier.
func (s *SMSService) Send(ctx context.Context, input models.SMSInput) {
	if err := models.Validate(input); err != nil {
		s.notifier.Error("Validation Error", err.Error())
		return
	}
	if err := s.client.SendSMS(ctx, input.Numbers, input.Message); err != nil {
		s.logger.Warn(ctx, "sms send rejected", "recipients", len(input.Numbers), "error", err)
		return
	}
	s.notifier.Success("Success", fmt.Sprintf("SMS sent to %d recipient(s)", len(input.Numbers)))
}

// Balance returns the remaining SMS gateway credit.
func (s *SMSService) Balance(ctx context.Context) (float64, error) {
	return s.client.SMSBalance(ctx)
}
