package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered shopper account. The email doubles as the login
// identifier; the password is stored only as a bcrypt hash.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The user's login identifier, unique across accounts.
	PasswordHash string    // bcrypt hash of the user's password. Never the plaintext.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
