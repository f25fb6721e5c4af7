package domain

import "time"

// UserRole is the application role of an identity.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleSecretario UserRole = "secretario"
)

// IsValid reports whether the role is one of the closed set.
func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleSecretario
}

// AuthProvider identifies how an identity authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents an identity that can operate the application.
// PasswordHash is nil for externally-authenticated (Google) accounts.
type User struct {
	UserID         string       `json:"userID"`
	Name           string       `json:"nombre"`
	Email          string       `json:"email"`
	PasswordHash   *string      `json:"-"`
	Role           UserRole     `json:"rol"`
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID *string      `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// GoogleUserInfo holds the subset of the Google userinfo payload we consume.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}
