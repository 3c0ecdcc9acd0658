package services

import (
	"context"
	"sync"

	"github.com/nayeemhs/orderdesk/internal/client/models"
	"github.com/nayeemhs/orderdesk/internal/client/session"
)

// fakeClient implements api.Client with overridable function fields.
// A nil field means "succeed with a zero value".
type fakeClient struct {
	loginFn       func(ctx context.Context, email, password string) (string, error)
	currentUserFn func(ctx context.Context) (*models.User, error)

	ordersFn        func(ctx context.Context) ([]models.Order, error)
	ordersCalls     int
	createOrderFn   func(ctx context.Context, input models.OrderInput) error
	updateOrderFn   func(ctx context.Context, id string, input models.OrderInput) error
	deleteOrderFn   func(ctx context.Context, id string) error
	dispatchOrderFn func(ctx context.Context, id string) error

	productsFn      func(ctx context.Context) ([]models.Product, error)
	productsCalls   int
	createProductFn func(ctx context.Context, input models.ProductInput) error
	updateProductFn func(ctx context.Context, id string, input models.ProductInput) error
	deleteProductFn func(ctx context.Context, id string) error

	usersFn      func(ctx context.Context) ([]models.User, error)
	createUserFn func(ctx context.Context, input models.UserInput) error
	updateUserFn func(ctx context.Context, id string, input models.UserInput) error
	deleteUserFn func(ctx context.Context, id string) error

	tasksFn      func(ctx context.Context) ([]models.Task, error)
	createTaskFn func(ctx context.Context, input models.TaskInput) error
	updateTaskFn func(ctx context.Context, id string, input models.TaskInput) error
	deleteTaskFn func(ctx context.Context, id string) error

	followUpsFn      func(ctx context.Context) ([]models.FollowUp, error)
	createFollowUpFn func(ctx context.Context, input models.FollowUpInput) error
	updateFollowUpFn func(ctx context.Context, id string, input models.FollowUpInput) error
	deleteFollowUpFn func(ctx context.Context, id string) error

	sendSMSFn    func(ctx context.Context, numbers []string, message string) error
	smsBalanceFn func(ctx context.Context) (float64, error)
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, email, password)
	}
	return "tok", nil
}

func (f *fakeClient) CurrentUser(ctx context.Context) (*models.User, error) {
	if f.currentUserFn != nil {
		return f.currentUserFn(ctx)
	}
	return &models.User{ID: "u1", Email: "a@b.c", Role: models.RoleAdmin}, nil
}

func (f *fakeClient) Orders(ctx context.Context) ([]models.Order, error) {
	f.ordersCalls++
	if f.ordersFn != nil {
		return f.ordersFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) CreateOrder(ctx context.Context, input models.OrderInput) error {
	if f.createOrderFn != nil {
		return f.createOrderFn(ctx, input)
	}
	return nil
}

func (f *fakeClient) UpdateOrder(ctx context.Context, id string, input models.OrderInput) error {
	if f.updateOrderFn != nil {
		return f.updateOrderFn(ctx, id, input)
	}
	return nil
}

func (f *fakeClient) DeleteOrder(ctx context.Context, id string) error {
	if f.deleteOrderFn != nil {
		return f.deleteOrderFn(ctx, id)
	}
	return nil
}

func (f *fakeClient) DispatchOrder(ctx context.Context, id string) error {
	if f.dispatchOrderFn != nil {
		return f.dispatchOrderFn(ctx, id)
	}
	return nil
}

func (f *fakeClient) Products(ctx context.Context) ([]models.Product, error) {
	f.productsCalls++
	if f.productsFn != nil {
		return f.productsFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) CreateProduct(ctx context.Context, input models.ProductInput) error {
	if f.createProductFn != nil {
		return f.createProductFn(ctx, input)
	}
	return nil
}

func (f *fakeClient) UpdateProduct(ctx context.Context, id string, input models.ProductInput) error {
	if f.updateProductFn != nil {
		return f.updateProductFn(ctx, id, input)
	}
	return nil
}

func (f *fakeClient) DeleteProduct(ctx context.Context, id string) error {
	if f.deleteProductFn != nil {
		return f.deleteProductFn(ctx, id)
	}
	return nil
}

func (f *fakeClient) Users(ctx context.Context) ([]models.User, error) {
	if f.usersFn != nil {
		return f.usersFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) CreateUser(ctx context.Context, input models.UserInput) error {
	if f.createUserFn != nil {
		return f.createUserFn(ctx, input)
	}
	return nil
}

func (f *fakeClient) UpdateUser(ctx context.Context, id string, input models.UserInput) error {
	if f.updateUserFn != nil {
		return f.updateUserFn(ctx, id, input)
	}
	return nil
}

func (f *fakeClient) DeleteUser(ctx context.Context, id string) error {
	if f.deleteUserFn != nil {
		return f.deleteUserFn(ctx, id)
	}
	return nil
}

func (f *fakeClient) Tasks(ctx context.Context) ([]models.Task, error) {
	if f.tasksFn != nil {
		return f.tasksFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) CreateTask(ctx context.Context, input models.TaskInput) error {
	if f.createTaskFn != nil {
		return f.createTaskFn(ctx, input)
	}
	return nil
}

func (f *fakeClient) UpdateTask(ctx context.Context, id string, input models.TaskInput) error {
	if f.updateTaskFn != nil {
		return f.updateTaskFn(ctx, id, input)
	}
	return nil
}

func (f *fakeClient) DeleteTask(ctx context.Context, id string) error {
	if f.deleteTaskFn != nil {
		return f.deleteTaskFn(ctx, id)
	}
	return nil
}

func (f *fakeClient) FollowUps(ctx context.Context) ([]models.FollowUp, error) {
	if f.followUpsFn != nil {
		return f.followUpsFn(ctx)
	}
	return nil, nil
}

func (f *fakeClient) CreateFollowUp(ctx context.Context, input models.FollowUpInput) error {
	if f.createFollowUpFn != nil {
		return f.createFollowUpFn(ctx, input)
	}
	return nil
}

func (f *fakeClient) UpdateFollowUp(ctx context.Context, id string, input models.FollowUpInput) error {
	if f.updateFollowUpFn != nil {
		return f.updateFollowUpFn(ctx, id, input)
	}
	return nil
}

func (f *fakeClient) DeleteFollowUp(ctx context.Context, id string) error {
	if f.deleteFollowUpFn != nil {
		return f.deleteFollowUpFn(ctx, id)
	}
	return nil
}

func (f *fakeClient) SendSMS(ctx context.Context, numbers []string, message string) error {
	if f.sendSMSFn != nil {
		return f.sendSMSFn(ctx, numbers, message)
	}
	return nil
}

func (f *fakeClient) SMSBalance(ctx context.Context) (float64, error) {
	if f.smsBalanceFn != nil {
		return f.smsBalanceFn(ctx)
	}
	return 0, nil
}

// memStore is an in-memory session.Store.
type memStore struct {
	mu         sync.Mutex
	data       map[string]string
	replaceErr error
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}}
}

func (m *memStore) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", session.ErrNotFound
	}
	return v, nil
}

func (m *memStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStore) Replace(_ context.Context, token, userJSON string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.data = map[string]string{
		session.KeyToken: token,
		session.KeyUser:  userJSON,
	}
	return nil
}

func (m *memStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = map[string]string{}
	return nil
}

func (m *memStore) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
