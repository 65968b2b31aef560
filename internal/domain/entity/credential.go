package entity

import "time"

// Credential binds an email/password pair to a user.
type Credential struct {
	UserID       string    // The user this credential logs in as.
	Email        string    // Normalized (lower-case) login email.
	PasswordHash string    // bcrypt hash of the password.
	CreatedAt    time.Time // Timestamp of the first login.
}
