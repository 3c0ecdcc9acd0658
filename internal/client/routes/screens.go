package routes

import "github.com/nayeemhs/orderdesk/internal/client/models"

// Screen identifies a top-level view of the admin panel.
type Screen string

const (
	ScreenHome      Screen = "home"
	ScreenLogin     Screen = "login"
	ScreenDashboard Screen = "dashboard"
	ScreenAnalytics Screen = "analytics"
	ScreenOrders    Screen = "orders"
	ScreenProducts  Screen = "products"
	ScreenUsers     Screen = "users"
	ScreenTasks     Screen = "tasks"
	ScreenFollowUps Screen = "followups"
	ScreenSMS       Screen = "sms"
)

// requiredRoles maps each protected screen to the roles admitted to it.
// Screens absent from the map are public. An entry with both roles is
// equivalent to "any authenticated user" but states the policy explicitly.
var requiredRoles = map[Screen][]models.Role{
	ScreenDashboard: {models.RoleAdmin},
	ScreenAnalytics: {models.RoleAdmin},
	ScreenUsers:     {models.RoleAdmin},
	ScreenSMS:       {models.RoleAdmin},
	ScreenOrders:    {models.RoleAdmin, models.RoleModerator},
	ScreenProducts:  {models.RoleAdmin, models.RoleModerator},
	ScreenTasks:     {models.RoleAdmin, models.RoleModerator},
	ScreenFollowUps: {models.RoleAdmin, models.RoleModerator},
}

// RequiredRoles returns the role set guarding s; nil means public.
func RequiredRoles(s Screen) []models.Role {
	return requiredRoles[s]
}

// Protected reports whether s requires an authenticated session.
func Protected(s Screen) bool {
	_, ok := requiredRoles[s]
	return ok
}

// LandingFor returns the screen a freshly logged-in user should land on:
// admins go to the dashboard, moderators to the order list.
func LandingFor(role models.Role) Screen {
	if role == models.RoleAdmin {
		return ScreenDashboard
	}
	return ScreenOrders
}
