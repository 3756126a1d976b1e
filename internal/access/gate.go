// Package access decides whether the current session may enter a view.
package access

import (
	"ats-client/internal/models"
	"ats-client/internal/session"
)

// DecisionKind enumerates gate outcomes.
type DecisionKind int

const (
	// Allow renders the requested view.
	Allow DecisionKind = iota
	// Pending renders a neutral waiting state while identity resolution
	// is in flight. Never a redirect: redirecting here would evict a
	// user who is mid-authentication.
	Pending
	// Redirect navigates to Decision.Target instead.
	Redirect
)

func (k DecisionKind) String() string {
	switch k {
	case Allow:
		return "allow"
	case Pending:
		return "pending"
	default:
		return "redirect"
	}
}

// Decision is the gate's verdict for one navigation attempt.
type Decision struct {
	Kind   DecisionKind
	Target string
}

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// Evaluate is pure and side-effect-free; the router performs the actual
// navigation. An empty allowedRoles slice means any authenticated user
// may enter.
func Evaluate(state session.State, identity *models.Identity, allowedRoles []models.Role) Decision {
	if state == session.StateLoading {
		return Decision{Kind: Pending}
	}

	if state == session.StateAbsent || identity == nil {
		return Decision{Kind: Redirect, Target: LoginPath}
	}

	if len(allowedRoles) > 0 && !roleAllowed(identity.Role, allowedRoles) {
		return Decision{Kind: Redirect, Target: DashboardPath}
	}

	return Decision{Kind: Allow}
}

func roleAllowed(role models.Role, allowed []models.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
