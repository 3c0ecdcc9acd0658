// Package api is the single chokepoint for all HTTP calls to the
// order-management backend. It injects the bearer token on every outgoing
// request and owns the response policy for auth, rate-limit, and server
// failures.
package api

import (
	"context"

	"github.com/nayeemhs/orderdesk/internal/client/models"
)

// Client is the REST surface the services layer depends on.
type Client interface {
	Close() error

	Login(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context) (*models.User, error)

	Orders(ctx context.Context) ([]models.Order, error)
	CreateOrder(ctx context.Context, input models.OrderInput) error
	UpdateOrder(ctx context.Context, id string, input models.OrderInput) error
	DeleteOrder(ctx context.Context, id string) error
	DispatchOrder(ctx context.Context, id string) error

	Products(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, input models.ProductInput) error
	UpdateProduct(ctx context.Context, id string, input models.ProductInput) error
	DeleteProduct(ctx context.Context, id string) error

	Users(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, input models.UserInput) error
	UpdateUser(ctx context.Context, id string, input models.UserInput) error
	DeleteUser(ctx context.Context, id string) error

	Tasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, input models.TaskInput) error
	UpdateTask(ctx context.Context, id string, input models.TaskInput) error
	DeleteTask(ctx context.Context, id string) error

	FollowUps(ctx context.Context) ([]models.FollowUp, error)
	CreateFollowUp(ctx context.Context, input models.FollowUpInput) error
	UpdateFollowUp(ctx context.Context, id string, input models.FollowUpInput) error
	DeleteFollowUp(ctx context.Context, id string) error

	SendSMS(ctx context.Context, numbers []string, message string) error
	SMSBalance(ctx context.Context) (float64, error)
}
