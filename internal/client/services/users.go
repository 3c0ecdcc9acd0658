package services

import (
	"context"

	"github.com/nayeemhs/orderdesk/internal/client/api"
	"github.com/nayeemhs/orderdesk/internal/client/cache"
	"github.com/nayeemhs/orderdesk/internal/client/models"
	"github.com/nayeemhs/orderdesk/internal/client/notify"
	"github.com/nayeemhs/orderdesk/internal/logging"
)

// UsersService manages panel accounts. Admin only; the routes gate keeps
// Moderators away from the screen, and the backend enforces the same rule.
type UsersService struct {
	client   api.Client
	cache    *cache.Collection[models.User]
	notifier notify.Notifier
	logger   logging.Logger
}

func NewUsersService(client api.Client, notifier notify.Notifier, logger logging.Logger) *UsersService {
	return &UsersService{
		client:   client,
		cache:    cache.NewCollection("users", client.Users),
		notifier: notifier,
		logger:   logger.With("component", "users"),
	}
}

func (s *UsersService) Users(ctx context.Context) ([]models.User, error) {
	return s.cache.Get(ctx)
}

func (s *UsersService) Create(ctx context.Context, input models.UserInput) {
	if err := models.Validate(input); err != nil {
		s.notifier.Error("Validation Error", err.Error())
		return
	}
	if err := s.client.CreateUser(ctx, input); err != nil {
		s.logger.Warn(ctx, "user create rejected", "error", err)
		return
	}
	s.notifier.Success("Success", "User created successfully")
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn(ctx, "user cache refresh failed", "error", err)
	}
}

func (s *UsersService) Update(ctx context.Context, id string, input models.UserInput) {
	if err := models.Validate(input); err != nil {
		s.notifier.Error("Validation Error", err.Error())
		return
	}
	if err := s.client.UpdateUser(ctx, id, input); err != nil {
		s.logger.Warn(ctx, "user update rejected", "id", id, "error", err)
		return
	}
	s.notifier.Success("Success", "User updated successfully")
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn(ctx, "user cache refresh failed", "error", err)
	}
}

func (s *UsersService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.notifier.Success("Success", "User deleted successfully")
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn(ctx, "user cache refresh failed", "error", err)
	}
	return nil
}
