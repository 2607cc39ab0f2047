package domain

import "time"

// User is the domain model for registered accounts, customers and admins alike.
// ResetToken and ResetExpiresAt carry an in-flight password reset; both are nil
// when no reset is pending.
type User struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   string
	Role           Role
	ResetToken     *string
	ResetExpiresAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
