// Package cli provides the interactive orderdesk terminal client.
//
// It wires the persisted session store, the REST API client, and the
// per-resource services into an interactive REPL. Typical flow: restore the
// previous session, revalidate it against the backend, and drop the user on
// the landing screen for their role.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/nayeemhs/orderdesk/internal/client/api"
	"github.com/nayeemhs/orderdesk/internal/client/config"
	"github.com/nayeemhs/orderdesk/internal/client/models"
	"github.com/nayeemhs/orderdesk/internal/client/notify"
	"github.com/nayeemhs/orderdesk/internal/client/routes"
	"github.com/nayeemhs/orderdesk/internal/client/services"
	"github.com/nayeemhs/orderdesk/internal/client/session"
	"github.com/nayeemhs/orderdesk/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	db       *sql.DB
	client   api.Client
	notifier notify.Notifier
	logger   logging.Logger

	auth      services.AuthService
	orders    *services.OrdersService
	products  *services.ProductsService
	users     *services.UsersService
	tasks     *services.TasksService
	followUps *services.FollowUpsService
	sms       *services.SMSService

	reader *bufio.Reader
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {

	ctx := context.Background()

	db, err := session.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing session database", "error", err)
		return nil, err
	}
	store := session.NewSQLiteStore(db)

	notifier := notify.NewWriterNotifier(os.Stdout)

	// The token closure reads the live session on every request, so a login
	// in one part of the app is immediately visible to all subsequent calls.
	// Late binding breaks the client/auth construction cycle.
	var auth services.AuthService
	token := func() string {
		if auth == nil {
			return ""
		}
		return auth.Token()
	}

	apiClient := api.NewRESTClient(c.BaseURL, c.RequestTimeout, token, notifier, logger)

	auth = services.NewAuthService(apiClient, store, notifier, logger)
	apiClient.SetSessionExpiredHandler(auth.HandleSessionExpired)

	return &App{
		config:    c,
		db:        db,
		client:    apiClient,
		notifier:  notifier,
		logger:    logger,
		auth:      auth,
		orders:    services.NewOrdersService(apiClient, notifier, logger),
		products:  services.NewProductsService(apiClient, notifier, logger),
		users:     services.NewUsersService(apiClient, notifier, logger),
		tasks:     services.NewTasksService(apiClient, notifier, logger),
		followUps: services.NewFollowUpsService(apiClient, notifier, logger),
		sms:       services.NewSMSService(apiClient, notifier, logger),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the previous session and starts the REPL. It blocks until the
// user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.auth.Restore(ctx)
	if a.isLoggedIn() {
		u := a.auth.User()
		printlnFn("Welcome back,", u.Name)
		a.openScreen(ctx, routes.LandingFor(u.Role))
	}

	a.Root(ctx)
}

func (a *App) Close() {
	_ = a.client.Close()
	_ = a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) role() models.Role {
	if u := a.auth.User(); u != nil {
		return u.Role
	}
	return ""
}

// gate applies the role policy for a screen. Public screens are always
// reachable, even mid restore. Anonymous users are pointed at login,
// authorized ones fall through, everyone else gets an access-denied notice
// and stays where they are.
func (a *App) gate(screen routes.Screen) bool {
	if !routes.Protected(screen) {
		return true
	}
	d := routes.Decide(a.auth.IsRestoring(), a.isLoggedIn(), a.role(), routes.RequiredRoles(screen))
	switch d {
	case routes.DecisionAllow:
		return true
	case routes.DecisionRedirectLogin:
		printlnFn("Please login first (type 'login')")
	case routes.DecisionDenied:
		a.notifier.Error("Access Denied", "You do not have permission to view this page")
	case routes.DecisionPending:
		printlnFn("Still restoring your session, try again in a moment")
	}
	return false
}

// openScreen gates and renders a screen in one step.
func (a *App) openScreen(ctx context.Context, screen routes.Screen) error {
	if !a.gate(screen) {
		return nil
	}
	switch screen {
	case routes.ScreenDashboard:
		return a.Dashboard(ctx)
	case routes.ScreenAnalytics:
		return a.Analytics(ctx)
	case routes.ScreenOrders:
		return a.ListOrders(ctx)
	case routes.ScreenProducts:
		return a.ListProducts(ctx)
	case routes.ScreenUsers:
		return a.ListUsers(ctx)
	case routes.ScreenTasks:
		return a.ListTasks(ctx)
	case routes.ScreenFollowUps:
		return a.ListFollowUps(ctx)
	case routes.ScreenSMS:
		return a.SMSBalance(ctx)
	}
	return nil
}
