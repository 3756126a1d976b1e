// Package nav maps roles to their permitted views and wires access gate
// decisions to actual navigation.
package nav

import (
	"strings"

	"ats-client/internal/access"
	"ats-client/internal/common/metrics"
	"ats-client/internal/models"
	"ats-client/internal/session"
)

// View names every screen the shell can render. Most views are plain
// fetch-and-render collaborators; the router only decides which one is
// entered.
type View string

const (
	ViewLogin              View = "login"
	ViewAdminDashboard     View = "admin-dashboard"
	ViewRecruiterDashboard View = "recruiter-dashboard"
	ViewCandidateDashboard View = "candidate-dashboard"
	ViewCandidates         View = "candidates"
	ViewRecruiters         View = "recruiters"
	ViewInterviews         View = "interviews"
	ViewApplications       View = "applications"
	ViewMyJobs             View = "my-jobs"
	ViewPostJob            View = "post-job"
	ViewBrowseJobs         View = "browse-jobs"
	ViewMyApplications     View = "my-applications"
	ViewInterview          View = "interview"
)

// MenuItem is one entry of the role-specific navigation menu.
type MenuItem struct {
	Label string
	Icon  string
	Path  string
}

// route ties a path to its view and the roles allowed to enter it.
type route struct {
	view         View
	allowedRoles []models.Role
}

// Resolution is the outcome of resolving a path: either a view to render
// (possibly with a path parameter) or a redirect/pending verdict.
type Resolution struct {
	Decision access.Decision
	View     View
	// Param carries the trailing path parameter for parameterized
	// routes, e.g. the interview id.
	Param string
}

type Router struct {
	routes map[string]route
}

func NewRouter() *Router {
	admin := []models.Role{models.RoleAdmin}
	recruiter := []models.Role{models.RoleRecruiter}
	candidate := []models.Role{models.RoleCandidate}

	return &Router{
		routes: map[string]route{
			"/dashboard/candidates":      {view: ViewCandidates, allowedRoles: admin},
			"/dashboard/recruiters":      {view: ViewRecruiters, allowedRoles: admin},
			"/dashboard/interviews":      {view: ViewInterviews, allowedRoles: admin},
			"/dashboard/applications":    {view: ViewApplications, allowedRoles: admin},
			"/dashboard/jobs":            {view: ViewMyJobs, allowedRoles: recruiter},
			"/dashboard/post-job":        {view: ViewPostJob, allowedRoles: recruiter},
			"/dashboard/browse-jobs":     {view: ViewBrowseJobs, allowedRoles: candidate},
			"/dashboard/my-applications": {view: ViewMyApplications, allowedRoles: candidate},
			"/dashboard/interview":       {view: ViewInterview, allowedRoles: candidate},
		},
	}
}

// MenuFor returns the ordered navigation menu for a role. Every role
// variant is handled explicitly so adding a role is a visible change.
func MenuFor(role models.Role) []MenuItem {
	switch role {
	case models.RoleAdmin:
		return []MenuItem{
			{Label: "Dashboard", Icon: "dashboard", Path: "/dashboard"},
			{Label: "Candidates", Icon: "people", Path: "/dashboard/candidates"},
			{Label: "Recruiters", Icon: "people", Path: "/dashboard/recruiters"},
			{Label: "AI Interviews", Icon: "psychology", Path: "/dashboard/interviews"},
			{Label: "All Applications", Icon: "assignment", Path: "/dashboard/applications"},
		}
	case models.RoleRecruiter:
		return []MenuItem{
			{Label: "Dashboard", Icon: "dashboard", Path: "/dashboard"},
			{Label: "My Jobs", Icon: "work", Path: "/dashboard/jobs"},
			{Label: "Post New Job", Icon: "add", Path: "/dashboard/post-job"},
		}
	case models.RoleCandidate:
		return []MenuItem{
			{Label: "Dashboard", Icon: "dashboard", Path: "/dashboard"},
			{Label: "Browse Jobs", Icon: "search", Path: "/dashboard/browse-jobs"},
			{Label: "My Applications", Icon: "assignment", Path: "/dashboard/my-applications"},
		}
	default:
		return nil
	}
}

// Resolve maps a path to the view the session may enter. Unknown paths
// redirect to the dashboard root rather than failing: a stale or
// mistyped path is a soft reset, not an error.
func (r *Router) Resolve(path string, state session.State, identity *models.Identity) Resolution {
	if path == access.LoginPath {
		return Resolution{Decision: access.Decision{Kind: access.Allow}, View: ViewLogin}
	}

	if path == access.DashboardPath {
		return r.resolveLanding(state, identity)
	}

	base, param := splitParam(path)
	rt, known := r.routes[base]
	if !known {
		return Resolution{Decision: access.Decision{Kind: access.Redirect, Target: access.DashboardPath}}
	}

	decision := access.Evaluate(state, identity, rt.allowedRoles)
	metrics.GateDecisionsTotal.WithLabelValues(decision.Kind.String()).Inc()
	if decision.Kind != access.Allow {
		return Resolution{Decision: decision}
	}

	return Resolution{Decision: decision, View: rt.view, Param: param}
}

// resolveLanding dispatches the authenticated landing route to the
// role-specific default view. A missing or unrecognized role at this
// point resolves to the login redirect.
func (r *Router) resolveLanding(state session.State, identity *models.Identity) Resolution {
	decision := access.Evaluate(state, identity, nil)
	metrics.GateDecisionsTotal.WithLabelValues(decision.Kind.String()).Inc()
	if decision.Kind != access.Allow {
		return Resolution{Decision: decision}
	}

	switch identity.Role {
	case models.RoleAdmin:
		return Resolution{Decision: decision, View: ViewAdminDashboard}
	case models.RoleRecruiter:
		return Resolution{Decision: decision, View: ViewRecruiterDashboard}
	case models.RoleCandidate:
		return Resolution{Decision: decision, View: ViewCandidateDashboard}
	default:
		return Resolution{Decision: access.Decision{Kind: access.Redirect, Target: access.LoginPath}}
	}
}

// splitParam peels a trailing parameter off parameterized routes, so
// "/dashboard/interview/42" resolves against "/dashboard/interview".
func splitParam(path string) (base, param string) {
	const interviewPrefix = "/dashboard/interview/"
	if strings.HasPrefix(path, interviewPrefix) {
		return "/dashboard/interview", strings.TrimPrefix(path, interviewPrefix)
	}
	return path, ""
}
