package domain

import "time"

// AuthProvider identifies how the user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents the (single) authenticated owner of the financial data.
type User struct {
	UserID       string       `json:"userID"` // Primary Key (UUID)
	Username     string       `json:"username"`
	Name         string       `json:"name"`
	Email        string       `json:"email,omitempty"`
	PasswordHash string       `json:"-"`
	Provider     AuthProvider `json:"provider"`
	GoogleID     string       `json:"-"`

	// Refresh token state; only the hash is ever stored.
	RefreshTokenHash   string     `json:"-"`
	RefreshTokenExpiry *time.Time `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
