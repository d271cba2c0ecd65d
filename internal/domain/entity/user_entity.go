package entity

import (
	"time"
)

// User is the aggregate root for the account domain
// Passwords are stored as bcrypt hashes in PasswordHash; the plaintext never
// leaves the signup/login handlers.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
