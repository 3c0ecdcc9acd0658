// Package routes decides whether the current session may enter a screen.
// The gate is a pure function of session state and the screen's required
// roles; it performs no I/O and triggers no navigation itself.
package routes

import "github.com/nayeemhs/orderdesk/internal/client/models"

// Decision is the gate's verdict for one navigation attempt.
type Decision int

const (
	// DecisionPending: the session is still being restored; render a
	// loading placeholder and suspend the navigation decision.
	DecisionPending Decision = iota

	// DecisionRedirectLogin: no authenticated session; go to login.
	DecisionRedirectLogin

	// DecisionDenied: authenticated but the role is not allowed. The user
	// stays where they are and sees an access-denied view; no redirect.
	DecisionDenied

	// DecisionAllow: render the protected content.
	DecisionAllow
)

func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionDenied:
		return "denied"
	case DecisionAllow:
		return "allow"
	default:
		return "unknown"
	}
}

// Decide applies the authorization policy:
// restoring wins over everything, then authentication, then role membership.
// An empty requiredRoles set admits any authenticated user.
func Decide(restoring, authenticated bool, role models.Role, requiredRoles []models.Role) Decision {
	if restoring {
		return DecisionPending
	}
	if !authenticated {
		return DecisionRedirectLogin
	}
	if len(requiredRoles) == 0 {
		return DecisionAllow
	}
	for _, r := range requiredRoles {
		if role == r {
			return DecisionAllow
		}
	}
	return DecisionDenied
}
