package services

import (
	"context"

	"github.com/nayeemhs/orderdesk/internal/client/api"
	"github.com/nayeemhs/orderdesk/internal/client/cache"
	"github.com/nayeemhs/orderdesk/internal/client/models"
	"github.com/nayeemhs/orderdesk/internal/client/notify"
	"github.com/nayeemhs/orderdesk/internal/logging"
)

// ProductsService exposes the product catalogue and its mutations.
type ProductsService struct {
	client   api.Client
	cache    *cache.Collection[models.Product]
	notifier notify.Notifier
	logger   logging.Logger
}

func NewProductsService(client api.Client, notifier notify.Notifier, logger logging.Logger) *ProductsService {
	return &ProductsService{
		client:   client,
		cache:    cache.NewCollection("products", client.Products),
		notifier: notifier,
		logger:   logger.With("component", "products"),
	}
}

func (s *ProductsService) Products(ctx context.Context) ([]models.Product, error) {
	return s.cache.Get(ctx)
}

// ByID resolves a product from the cached catalogue. Used when rendering
// orders, which carry only the product id.
func (s *ProductsService) ByID(ctx context.Context, id string) (*models.Product, error) {
	products, err := s.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, nil
}

func (s *ProductsService) Create(ctx context.Context, input models.ProductInput) {
	if err := models.Validate(input); err != nil {
		s.notifier.Error("Validation Error", err.Error())
		return
	}
	if err := s.client.CreateProduct(ctx, input); err != nil {
		s.logger.Warn(ctx, "product create rejected", "error", err)
		return
	}
	s.notifier.Success("Success", "Product created successfully")
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn(ctx, "product cache refresh failed", "error", err)
	}
}

func (s *ProductsService) Update(ctx context.Context, id string, input models.ProductInput) {
	if err := models.Validate(input); err != nil {
		s.notifier.Error("Validation Error", err.Error())
		return
	}
	if err := s.client.UpdateProduct(ctx, id, input); err != nil {
		s.logger.Warn(ctx, "product update rejected", "id", id, "error", err)
		return
	}
	s.notifier.Success("Success", "Product updated successfully")
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn(ctx, "product cache refresh failed", "error", err)
	}
}

func (s *ProductsService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.notifier.Success("Success", "Product deleted successfully")
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn(ctx, "product cache refresh failed", "error", err)
	}
	return nil
}
