package domain

import "time"

// Role defines user permission level
type Role string

const (
	RoleHR       Role = "hr"       // Manage knowledge, documents, review queue, users
	RoleEmployee Role = "employee" // Ask questions, view own history
)

// Valid reports whether the role is one of the known roles
func (r Role) Valid() bool {
	return r == RoleHR || r == RoleEmployee
}

// User represents an account in the deployment
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Never serialize
	Name         string     `json:"name"`
	Role         Role       `json:"role"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// UserSummary provides a safe view of user data (no password hash)
type UserSummary struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        Role       `json:"role"`
	Active      bool       `json:"active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// ToSummary converts a User to UserSummary
func (u *User) ToSummary() *UserSummary {
	return &UserSummary{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		Active:      u.Active,
		LastLoginAt: u.LastLoginAt,
	}
}

// IsHR checks if the user has HR privileges
func (u *User) IsHR() bool {
	return u.Role == RoleHR
}

// CanAsk checks if the user can submit questions to the chatbot
func (u *User) CanAsk() bool {
	return u.Active
}
