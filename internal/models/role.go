package models

// Role identifies which of the three platform roles a user holds.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleRecruiter Role = "recruiter"
	RoleCandidate Role = "candidate"
)

// AllRoles lists every role the platform knows about. Consumers that
// branch on role (gate, router, menu builder) must handle all of them.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleRecruiter, RoleCandidate}
}
