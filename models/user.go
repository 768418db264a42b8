package models

import "time"

// Roles assignable to a user account. RoleAdmin is only ever granted to the
// configured administrator identity (see the admin bootstrap in the auth
// service); every other account is created with RoleUser.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user, generated at creation time
	// (UUIDv7) and immutable afterwards.
	ID string `json:"id"`

	// Email is the unique login key of the account, stored case-sensitively.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It MUST never be serialized or exposed outside the persistence and
	// auth layers.
	PasswordHash string `json:"-"`

	// Name is the optional display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Role is either RoleUser or RoleAdmin.
	Role string `json:"role"`

	// EmailVerified reports whether the account's email has been confirmed.
	// Forced to true for the configured admin identity.
	EmailVerified bool `json:"emailVerified"`

	// LastLoginAt is the timestamp of the most recent successful login,
	// nil until the user logs in for the first time.
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`

	// CreatedAt and UpdatedAt are maintained by the persistence layer.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// View returns the client-facing projection of the account as served by the
// auth endpoints. The password hash and the internal timestamps are omitted.
func (u User) View() UserView {
	return UserView{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Role:          u.Role,
		EmailVerified: u.EmailVerified,
		LastLoginAt:   u.LastLoginAt,
	}
}

// UserView is the normalized user shape embedded in auth responses.
type UserView struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	Role          string     `json:"role"`
	EmailVerified bool       `json:"emailVerified"`
	LastLoginAt   *time.Time `json:"lastLoginAt,omitempty"`
}
