package models

import (
	"database/sql"
	"time"
)

// User is the DB representation of an application user. Local users carry a
// password hash; Google users carry a Google subject ID instead.
type User struct {
	UserID       string         `db:"user_id"`
	Username     string         `db:"username"`
	PasswordHash sql.NullString `db:"password_hash"`
	Name         string         `db:"name"`
	Email        sql.NullString `db:"email"`
	Provider     string         `db:"provider"`
	GoogleID     sql.NullString `db:"google_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	// Refresh token state; only the hash is ever stored.
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
