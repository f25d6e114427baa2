package sdk

import (
	"fmt"
	"time"
)

// Role is the fixed set of dashboard roles. Ordering in the UI reflects
// decreasing privilege, but roles are never compared numerically; access is
// always a set-membership test.
type Role string

const (
	RoleSuperAdmin Role = "SuperAdmin"
	RoleAdmin      Role = "Admin"
	RoleManager    Role = "Manager"
	RoleUser       Role = "User"
)

// Roles lists every valid role in decreasing privilege order.
var Roles = []Role{RoleSuperAdmin, RoleAdmin, RoleManager, RoleUser}

// Valid reports whether r is one of the fixed roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleUser:
		return true
	}
	return false
}

// ParseRole validates a raw role string from the API or user input.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, s)
	}
	return r, nil
}

// Identity is the authenticated user's profile as held by the session.
// A zero Identity (empty ID) means "unauthenticated".
type Identity struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           Role   `json:"role"`
	Organization   string `json:"organization,omitempty"`
	OrganizationID string `json:"organizationId,omitempty"`
	Department     string `json:"department,omitempty"`
	Avatar         string `json:"avatar,omitempty"`
	LastLogin      string `json:"lastLogin,omitempty"`
}

// Authenticated reports whether the identity refers to a logged-in user.
func (i Identity) Authenticated() bool { return i.ID != "" }

// Normalize fills optional fields so downstream rendering never needs
// presence checks. Unknown roles collapse to the least-privileged one
// rather than failing the whole login.
func (i Identity) Normalize() Identity {
	if !i.Role.Valid() {
		i.Role = RoleUser
	}
	if i.Organization == "" {
		i.Organization = "System"
	}
	if i.Department == "" {
		i.Department = "General"
	}
	return i
}

// Merge overlays the non-empty fields of patch onto i. The ID is never
// replaced; a profile update cannot change who is logged in.
func (i Identity) Merge(patch IdentityPatch) Identity {
	if patch.Name != nil {
		i.Name = *patch.Name
	}
	if patch.Email != nil {
		i.Email = *patch.Email
	}
	if patch.Organization != nil {
		i.Organization = *patch.Organization
	}
	if patch.Department != nil {
		i.Department = *patch.Department
	}
	if patch.Avatar != nil {
		i.Avatar = *patch.Avatar
	}
	return i
}

// IdentityPatch carries partial profile fields for an in-place update.
type IdentityPatch struct {
	Name         *string
	Email        *string
	Organization *string
	Department   *string
	Avatar       *string
}

// User is a user record as returned by the users CRUD endpoints.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	TenantID  string `json:"tenant_id,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// CreateUserInput is the payload for creating a user.
type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Password string `json:"password"`
}

// UpdateUserInput is the payload for updating a user. The password is never
// sent on update.
type UpdateUserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Organization is a tenant record as returned by the organizations endpoints.
type Organization struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Domain    string `json:"domain,omitempty"`
	Plan      string `json:"plan,omitempty"`
	UserCount int    `json:"userCount,omitempty"`
	Status    string `json:"status,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// OrganizationInput is the payload for creating or updating an organization.
type OrganizationInput struct {
	Name   string `json:"name"`
	Domain string `json:"domain,omitempty"`
	Plan   string `json:"plan,omitempty"`
}

// AuditEntry is a raw audit-log record from GET /api/audit. Entries are the
// source material for the notification feed.
type AuditEntry struct {
	ID             string    `json:"id"`
	Action         string    `json:"action"`
	Entity         string    `json:"entity,omitempty"`
	Details        string    `json:"details,omitempty"`
	UserID         string    `json:"userId,omitempty"`
	OrganizationID string    `json:"organizationId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// DashboardStats is the aggregate counters shown on the dashboard landing page.
type DashboardStats struct {
	TotalUsers    int `json:"totalUsers"`
	Organizations int `json:"organizations"`
}
