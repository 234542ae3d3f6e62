package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("user not found")
)

// User represents a client or admin account.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	DisplayName  *string
	Phone        *string
	CreatedAt    time.Time
	LastLoginAt  *time.Time
	IsActive     bool
	IsAdmin      bool
}

// Filter defines filter options for listing users.
type Filter struct {
	Email    string
	IsActive *bool // pointer to distinguish between false and not set

	Page     int
	PageSize int
}
