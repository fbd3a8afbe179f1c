package models

import "time"

type Role string

const (
	RoleReporter Role = "reporter"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleReporter, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// Staff reports whether the role may triage issues (change status,
// assign, read internal notes).
func (r Role) Staff() bool { return r == RoleStaff || r == RoleAdmin }

type Account struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Role       Role      `json:"role"`
	Department string    `json:"department"`
	Phone      string    `json:"phone,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Actor identifies who is performing an operation. Every lifecycle
// operation takes one explicitly; there is no ambient current user.
type Actor struct {
	ID   string
	Name string
	Role Role
}
