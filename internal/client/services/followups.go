package services

import (
	"context"

	"github.com/nayeemhs/orderdesk/internal/client/api"
	"github.com/nayeemhs/orderdesk/internal/client/cache"
	"github.com/nayeemhs/orderdesk/internal/client/models"
	"github.com/nayeemhs/orderdesk/internal/client/notify"
	"github.com/nayeemhs/orderdesk/internal/logging"
)

// FollowUpsService manages scheduled customer follow-ups.
type FollowUpsService struct {
	client   api.Client
	cache    *cache.Collection[models.FollowUp]
	notifier notify.Notifier
	logger   logging.Logger
}

func NewFollowUpsService(client api.Client, notifier notify.Notifier, logger logging.Logger) *FollowUpsService {
	return &FollowUpsService{
		client:   client,
		cache:    cache.NewCollection("followups", client.FollowUps),
		notifier: notifier,
		logger:   logger.With("component", "followups"),
	}
}

func (s *FollowUpsService) FollowUps(ctx context.Context) ([]models.FollowUp, error) {
	return s.cache.Get(ctx)
}

func (s *FollowUpsService) Create(ctx context.Context, input models.FollowUpInput) {
	if err := models.Validate(input); err != nil {
		s.notifier.Error("Validation Error", err.Error())
		return
	}
	if err := s.client.CreateFollowUp(ctx, input); err != nil {
		s.logger.Warn(ctx, "follow-up create rejected", "error", err)
		return
	}
	s.notifier.Success("Success", "Follow-up created successfully")
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn(ctx, "follow-up cache refresh failed", "error", err)
	}
}

func (s *FollowUpsService) Update(ctx context.Context, id string, input models.FollowUpInput) {
	if err := models.Validate(input); err != nil {
		s.notifier.Error("Validation Error", err.Error())
		return
	}
	if err := s.client.UpdateFollowUp(ctx, id, input); err != nil {
		s.logger.Warn(ctx, "follow-up update rejected", "id", id, "error", err)
		return
	}
	s.notifier.Success("Success", "Follow-up updated successfully")
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn(ctx, "follow-up cache refresh failed", "error", err)
	}
}

// Complete marks a follow-up as done, carrying the rest of its fields over
// unchanged. The error is returned so the screen can keep the row on failure.
func (s *FollowUpsService) Complete(ctx context.Context, f *models.FollowUp) error {
	input := models.FollowUpInput{
		OrderID:      f.OrderID,
		FollowUpDate: f.FollowUpDate,
		Notes:        f.Notes,
		Status:       models.FollowUpStatusCompleted,
		Priority:     f.Priority,
	}
	if err := s.client.UpdateFollowUp(ctx, f.FollowUpID, input); err != nil {
		return err
	}
	s.notifier.Success("Success", "Follow-up marked as completed")
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn(ctx, "follow-up cache refresh failed", "error", err)
	}
	return nil
}

func (s *FollowUpsService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteFollowUp(ctx, id); err != nil {
		return err
	}
	s.notifier.Success("Success", "Follow-up deleted successfully")
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn(ctx, "follow-up cache refresh failed", "error", err)
	}
	return nil
}
