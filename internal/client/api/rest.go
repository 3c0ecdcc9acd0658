package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nayeemhs/orderdesk/internal/client/models"
	"github.com/nayeemhs/orderdesk/internal/client/notify"
	"github.com/nayeemhs/orderdesk/internal/logging"
)

// RESTClient is the concrete Client talking JSON over HTTP.
//
// The token function is read on every request, so the client always sends
// whatever the persisted session currently holds. The session-expired handler
// is installed by the auth manager; the gateway itself never writes to the
// session store directly.
type RESTClient struct {
	baseURL  string
	http     *http.Client
	notifier notify.Notifier
	logger   logging.Logger

	onSessionExpired func(ctx context.Context)
}

// NewRESTClient builds a gateway client with a fixed request timeout.
// token is consulted per request; it returns "" when no session exists.
func NewRESTClient(baseURL string, timeout time.Duration, token func() string, notifier notify.Notifier, logger logging.Logger) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: &authTransport{base: http.DefaultTransport, token: token},
		},
		notifier: notifier,
		logger:   logger.With("component", "api"),
	}
}

// SetSessionExpiredHandler installs the callback invoked on any 401 response.
// The auth manager uses it to clear the session and route to the login screen.
func (c *RESTClient) SetSessionExpiredHandler(fn func(ctx context.Context)) {
	c.onSessionExpired = fn
}

func (c *RESTClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Message string `json:"message"`
}

// checkResponse applies the gateway response policy. Any status below 400
// passes through; everything else is converted to a typed error and a
// user-visible notification. No request is queued or replayed after a 401 —
// the failed call is simply rejected to its caller.
func (c *RESTClient) checkResponse(ctx context.Context, resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.logger.Warn(ctx, "session rejected by backend", "status", resp.StatusCode)
		c.notifier.Error("Session Expired", "Please log in again")
		if c.onSessionExpired != nil {
			c.onSessionExpired(ctx)
		}
		return ErrUnauthorized

	case resp.StatusCode == http.StatusForbidden:
		c.notifier.Error("Access Denied", "You do not have permission to perform this action")
		return ErrForbidden

	case resp.StatusCode == http.StatusTooManyRequests:
		c.notifier.Error("Too Many Requests", "Please wait before trying again")
		return ErrRateLimited

	case resp.StatusCode >= 500:
		c.logger.Error(ctx, "backend failure", "status", resp.StatusCode)
		c.notifier.Error("Server Error", "Something went wrong. Please try again later.")
		return ErrServer

	default:
		msg := backendMessage(body, resp.StatusCode)
		c.notifier.Error("Error", msg)
		return &APIError{Status: resp.StatusCode, Message: msg}
	}
}

func backendMessage(body []byte, status int) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Message != "" {
		return eb.Message
	}
	return http.StatusText(status)
}

// do sends one request and decodes the JSON response into out (when non-nil).
// Transport failures and timeouts surface as ErrUnavailable; no retry is
// attempted anywhere in this layer.
func (c *RESTClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		c.notifier.Error("Network Error", "Could not reach the server")
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := c.checkResponse(ctx, resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *RESTClient) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *RESTClient) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	return c.do(ctx, method, path, body, "application/json", out)
}

// ---- auth ----

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a token. Rejected credentials surface
// inline as an *APIError with the backend message: there is no session to
// expire yet, so the 401 policy (clear + redirect) deliberately does not
// apply to this endpoint.
func (c *RESTClient) Login(ctx context.Context, email, password string) (string, error) {
	b, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/login", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.notifier.Error("Network Error", "Could not reach the server")
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		msg := backendMessage(body, resp.StatusCode)
		return "", &APIError{Status: resp.StatusCode, Message: msg}
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if lr.Token == "" {
		return "", &APIError{Status: resp.StatusCode, Message: "login response carried no token"}
	}
	return lr.Token, nil
}

func (c *RESTClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.getJSON(ctx, "/api/auth/me", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ---- orders ----

func (c *RESTClient) Orders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	if err := c.getJSON(ctx, "/api/orders", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) CreateOrder(ctx context.Context, input models.OrderInput) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/orders", input, nil)
}

func (c *RESTClient) UpdateOrder(ctx context.Context, id string, input models.OrderInput) error {
	return c.sendJSON(ctx, http.MethodPut, "/api/orders/"+id, input, nil)
}

func (c *RESTClient) DeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/orders/"+id, nil, "", nil)
}

// DispatchOrder hands the order to the courier integration on the backend.
func (c *RESTClient) DispatchOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/api/orders/"+id+"/dispatch", nil, "", nil)
}

// ---- products ----

func (c *RESTClient) Products(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.getJSON(ctx, "/api/products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) CreateProduct(ctx context.Context, input models.ProductInput) error {
	return c.sendProduct(ctx, http.MethodPost, "/api/products", input)
}

func (c *RESTClient) UpdateProduct(ctx context.Context, id string, input models.ProductInput) error {
	return c.sendProduct(ctx, http.MethodPut, "/api/products/"+id, input)
}

func (c *RESTClient) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+id, nil, "", nil)
}

// sendProduct submits a product as multipart form data when an image file is
// attached, and as plain JSON otherwise.
func (c *RESTClient) sendProduct(ctx context.Context, method, path string, input models.ProductInput) error {
	if input.ImagePath == "" {
		return c.sendJSON(ctx, method, path, input, nil)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":               input.Name,
		"price":              strconv.FormatFloat(input.Price, 'f', -1, 64),
		"sales_price":        strconv.FormatFloat(input.SalesPrice, 'f', -1, 64),
		"production_price":   strconv.FormatFloat(input.ProductionPrice, 'f', -1, 64),
		"discount_price":     strconv.FormatFloat(input.DiscountPrice, 'f', -1, 64),
		"manufacturer_price": strconv.FormatFloat(input.ManufacturerPrice, 'f', -1, 64),
		"status":             input.Status,
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return fmt.Errorf("building form: %w", err)
		}
	}

	f, err := os.Open(input.ImagePath)
	if err != nil {
		return fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	part, err := mw.CreateFormFile("image", filepath.Base(input.ImagePath))
	if err != nil {
		return fmt.Errorf("building form: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("reading image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("building form: %w", err)
	}

	return c.do(ctx, method, path, &buf, mw.FormDataContentType(), nil)
}

// ---- users ----

func (c *RESTClient) Users(ctx context.Context) ([]models.User, error) {
	var out []models.User
	if err := c.getJSON(ctx, "/api/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) CreateUser(ctx context.Context, input models.UserInput) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/users", input, nil)
}

func (c *RESTClient) UpdateUser(ctx context.Context, id string, input models.UserInput) error {
	return c.sendJSON(ctx, http.MethodPut, "/api/users/"+id, input, nil)
}

func (c *RESTClient) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+id, nil, "", nil)
}

// ---- tasks ----

func (c *RESTClient) Tasks(ctx context.Context) ([]models.Task, error) {
	var out []models.Task
	if err := c.getJSON(ctx, "/api/tasks", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) CreateTask(ctx context.Context, input models.TaskInput) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/tasks", input, nil)
}

func (c *RESTClient) UpdateTask(ctx context.Context, id string, input models.TaskInput) error {
	return c.sendJSON(ctx, http.MethodPut, "/api/tasks/"+id, input, nil)
}

func (c *RESTClient) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+id, nil, "", nil)
}

// ---- follow-ups ----

func (c *RESTClient) FollowUps(ctx context.Context) ([]models.FollowUp, error) {
	var out []models.FollowUp
	if err := c.getJSON(ctx, "/api/follow-ups", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) CreateFollowUp(ctx context.Context, input models.FollowUpInput) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/follow-ups", input, nil)
}

func (c *RESTClient) UpdateFollowUp(ctx context.Context, id string, input models.FollowUpInput) error {
	return c.sendJSON(ctx, http.MethodPut, "/api/follow-ups/"+id, input, nil)
}

func (c *RESTClient) DeleteFollowUp(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/follow-ups/"+id, nil, "", nil)
}

// ---- sms ----

type smsRequest struct {
	Number  string `json:"number"`
	Message string `json:"message"`
}

type balanceResponse struct {
	Balance float64 `json:"balance"`
}

// SendSMS submits a message to the SMS gateway; recipients are comma-joined
// into a single number field, matching the gateway contract.
func (c *RESTClient) SendSMS(ctx context.Context, numbers []string, message string) error {
	req := smsRequest{Number: strings.Join(numbers, ","), Message: message}
	return c.sendJSON(ctx, http.MethodPost, "/sendSMS", req, nil)
}

func (c *RESTClient) SMSBalance(ctx context.Context) (float64, error) {
	var br balanceResponse
	if err := c.getJSON(ctx, "/getBalance", &br); err != nil {
		return 0, err
	}
	return br.Balance, nil
}
