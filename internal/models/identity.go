package models

// Identity is the authenticated user as reported by the platform.
// It is immutable for the lifetime of a session: replaced wholesale on
// login, cleared on logout.
type Identity struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     Role   `json:"role"`
}
