package services

import (
	"context"

	"github.com/nayeemhs/orderdesk/internal/client/api"
	"github.com/nayeemhs/orderdesk/internal/client/cache"
	"github.com/nayeemhs/orderdesk/internal/client/models"
	"github.com/nayeemhs/orderdesk/internal/client/notify"
	"github.com/nayeemhs/orderdesk/internal/logging"
)

// OrdersService exposes the order collection and its mutations. Create and
// Update surface their outcome through the notifier and never fail the
// caller; Delete and Dispatch return the error so the screen can keep the
// row selected on failure.
type OrdersService struct {
	client   api.Client
	cache    *cache.Collection[models.Order]
	notifier notify.Notifier
	logger   logging.Logger
}

func NewOrdersService(client api.Client, notifier notify.Notifier, logger logging.Logger) *OrdersService {
	return &OrdersService{
		client:   client,
		cache:    cache.NewCollection("orders", client.Orders),
		notifier: notifier,
		logger:   logger.With("component", "orders"),
	}
}

// Orders returns the cached order list, fetching it when stale.
func (s *OrdersService) Orders(ctx context.Context) ([]models.Order, error) {
	return s.cache.Get(ctx)
}

// Create validates and submits a new order. A validation failure or a
// rejected request is reported through the notifier; the cache is refreshed
// only on success.
func (s *OrdersService) Create(ctx context.Context, input models.OrderInput) {
	if err := models.Validate(input); err != nil {
		s.notifier.Error("Validation Error", err.Error())
		return
	}
	if err := s.client.CreateOrder(ctx, input); err != nil {
		s.logger.Warn(ctx, "order create rejected", "error", err)
		return
	}
	s.notifier.Success("Success", "Order created successfully")
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn(ctx, "order cache refresh failed", "error", err)
	}
}

// Update validates and submits changes to an existing order.
func (s *OrdersService) Update(ctx context.Context, id string, input models.OrderInput) {
	if err := models.Validate(input); err != nil {
		s.notifier.Error("Validation Error", err.Error())
		return
	}
	if err := s.client.UpdateOrder(ctx, id, input); err != nil {
		s.logger.Warn(ctx, "order update rejected", "id", id, "error", err)
		return
	}
	s.notifier.Success("Success", "Order updated successfully")
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn(ctx, "order cache refresh failed", "error", err)
	}
}

// Delete removes an order. The error is returned so the caller can keep its
// selection when the delete is rejected.
func (s *OrdersService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteOrder(ctx, id); err != nil {
		return err
	}
	s.notifier.Success("Success", "Order deleted successfully")
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn(ctx, "order cache refresh failed", "error", err)
	}
	return nil
}

// Dispatch hands the order to the courier.
func (s *OrdersService) Dispatch(ctx context.Context, id string) error {
	if err := s.client.DispatchOrder(ctx, id); err != nil {
		return err
	}
	s.notifier.Success("Success", "Order dispatched to courier")
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn(ctx, "order cache refresh failed", "error", err)
	}
	return nil
}
