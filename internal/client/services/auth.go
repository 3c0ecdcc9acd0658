// Package services contains the application services of the orderdesk
// client: the auth session manager and one service per backend resource.
// This file defines the session manager: restore-on-start with backend
// revalidation, login/logout lifecycle, and the forced teardown on a
// rejected session.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/nayeemhs/orderdesk/internal/client/api"
	"github.com/nayeemhs/orderdesk/internal/client/models"
	"github.com/nayeemhs/orderdesk/internal/client/notify"
	"github.com/nayeemhs/orderdesk/internal/client/routes"
	"github.com/nayeemhs/orderdesk/internal/client/session"
	"github.com/nayeemhs/orderdesk/internal/logging"
)

// SessionState tracks the manager's lifecycle. Uninitialized and Restoring
// occur only during startup; Authenticated and Anonymous are the stable
// states and flip via login/logout (or a 401 teardown).
type SessionState int

const (
	StateUninitialized SessionState = iota
	StateRestoring
	StateAuthenticated
	StateAnonymous
)

// ErrLoginInFlight is returned when Login is called while a previous login
// attempt has not resolved yet.
var ErrLoginInFlight = errors.New("login already in flight")

// AuthService owns the session lifecycle.
//
// Contract:
//   - Restore: rebuild the session from the persisted store, then revalidate
//     it against the backend; a failed revalidation tears the session down.
//   - Login: exchange credentials for a token, persist token and profile
//     as one atomic pair, and report the role-dependent landing screen.
//   - Logout: clear the persisted session.
//   - HandleSessionExpired: teardown invoked by the API gateway on any 401.
//
// All methods honor context cancellation.
type AuthService interface {
	Restore(ctx context.Context)
	Login(ctx context.Context, email, password string) (routes.Screen, error)
	Logout(ctx context.Context) routes.Screen
	HandleSessionExpired(ctx context.Context)

	User() *models.User

	// Token returns the live bearer token, or "" when there is none. The
	// API transport reads it on every request.
	Token() string

	IsAuthenticated() bool
	IsRestoring() bool
	IsLoggingIn() bool
}

type authService struct {
	client   api.Client
	store    session.Store
	notifier notify.Notifier
	logger   logging.Logger

	mu        sync.Mutex
	state     SessionState
	user      *models.User
	token     string
	loggingIn bool
}

// NewAuthService constructs an AuthService bound to the given API client and
// persisted session store.
func NewAuthService(client api.Client, store session.Store, notifier notify.Notifier, logger logging.Logger) AuthService {
	return &authService{
		client:   client,
		store:    store,
		notifier: notifier,
		logger:   logger.With("component", "auth"),
		state:    StateUninitialized,
	}
}

// Restore rebuilds the session from the persisted store. When both keys are
// present the session is optimistically Authenticated, then revalidated by
// fetching the current profile; any revalidation failure transitions to
// Anonymous and clears the store. A missing key short-circuits to Anonymous.
func (a *authService) Restore(ctx context.Context) {
	a.setState(StateRestoring)

	token, tokenErr := a.store.Get(ctx, session.KeyToken)
	userJSON, userErr := a.store.Get(ctx, session.KeyUser)
	if tokenErr != nil || userErr != nil || token == "" || userJSON == "" {
		a.toAnonymous()
		return
	}

	var u models.User
	if err := json.Unmarshal([]byte(userJSON), &u); err != nil {
		a.logger.Warn(ctx, "stored profile unreadable, discarding session", "error", err)
		_ = a.store.Clear(ctx)
		a.toAnonymous()
		return
	}

	// A token that is already past its expiry cannot survive revalidation,
	// so skip the network round trip and discard the session right away.
	if claims, err := api.PeekClaims(token); err == nil && claims.ExpiresAt != nil {
		if claims.ExpiresAt.Before(time.Now()) {
			a.logger.Info(ctx, "stored token expired, discarding session", "expired_at", claims.ExpiresAt)
			_ = a.store.Clear(ctx)
			a.toAnonymous()
			return
		}
	}

	a.mu.Lock()
	a.token = token
	a.user = &u
	a.state = StateAuthenticated
	a.mu.Unlock()

	// Revalidate: the stored token may have been revoked while we were away.
	fresh, err := a.client.CurrentUser(ctx)
	if err != nil {
		a.logger.Warn(ctx, "session revalidation failed", "error", err)
		_ = a.store.Clear(ctx)
		a.toAnonymous()
		return
	}

	if b, err := json.Marshal(fresh); err == nil {
		_ = a.store.Set(ctx, session.KeyUser, string(b))
	}

	a.mu.Lock()
	a.user = fresh
	a.mu.Unlock()
	a.logger.Info(ctx, "session restored", "email", fresh.Email, "role", fresh.Role)
}

// Login authenticates and returns the landing screen for the user's role.
// Only one attempt may be in flight at a time; concurrent calls fail fast
// with ErrLoginInFlight. Credentials are never persisted.
func (a *authService) Login(ctx context.Context, email, password string) (routes.Screen, error) {
	a.mu.Lock()
	if a.loggingIn {
		a.mu.Unlock()
		return routes.ScreenLogin, ErrLoginInFlight
	}
	a.loggingIn = true
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.loggingIn = false
		a.mu.Unlock()
	}()

	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		a.logger.Warn(ctx, "login rejected", "email", email, "error", err)
		// Transport failures are already surfaced by the API client.
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			a.notifier.Error("Error", apiErr.Message)
		}
		a.toAnonymous()
		return routes.ScreenLogin, err
	}

	// Hold the token in memory so the profile fetch below is authorized.
	// Nothing touches the store until the token/profile pair is complete.
	a.mu.Lock()
	a.token = token
	a.mu.Unlock()

	user, err := a.client.CurrentUser(ctx)
	if err != nil {
		a.notifier.Error("Error", "Login succeeded but fetching your profile failed")
		a.toAnonymous()
		return routes.ScreenLogin, err
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		a.toAnonymous()
		return routes.ScreenLogin, err
	}
	if err := a.store.Replace(ctx, token, string(userJSON)); err != nil {
		a.notifier.Error("Error", "Could not persist the session")
		a.toAnonymous()
		return routes.ScreenLogin, err
	}

	a.mu.Lock()
	a.user = user
	a.state = StateAuthenticated
	a.mu.Unlock()

	a.logger.Info(ctx, "login succeeded", "email", user.Email, "role", user.Role)
	a.notifier.Success("Success", "Login successful!")
	return routes.LandingFor(user.Role), nil
}

// Logout clears the persisted session and returns the public landing screen.
func (a *authService) Logout(ctx context.Context) routes.Screen {
	if err := a.store.Clear(ctx); err != nil {
		a.logger.Error(ctx, "clearing session store failed", "error", err)
	}
	a.toAnonymous()
	a.notifier.Success("Success", "Logged out successfully")
	return routes.ScreenHome
}

// HandleSessionExpired is installed as the API gateway's 401 callback.
// The gateway has already surfaced the "Session Expired" notice; this side
// owns the state: wipe storage and drop to Anonymous. The view layer reacts
// to the state change by falling back to the login prompt.
func (a *authService) HandleSessionExpired(ctx context.Context) {
	if err := a.store.Clear(ctx); err != nil {
		a.logger.Error(ctx, "clearing session store failed", "error", err)
	}
	a.toAnonymous()
}

func (a *authService) User() *models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user
}

func (a *authService) Token() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token
}

// IsAuthenticated holds exactly when both the token and the profile are
// present.
func (a *authService) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state == StateAuthenticated && a.token != "" && a.user != nil
}

func (a *authService) IsRestoring() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state == StateRestoring
}

func (a *authService) IsLoggingIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loggingIn
}

func (a *authService) setState(s SessionState) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = s
}

func (a *authService) toAnonymous() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = StateAnonymous
	a.user = nil
	a.token = ""
}
