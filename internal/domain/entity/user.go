// Package entity contains the core business objects of the marketplace,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// User is a marketplace account. The same user can act as an artisan (owning
// products) and as a buyer (sending inquiries, favoriting, reviewing).
type User struct {
	ID              string    `json:"id"`                        // Stable external identity.
	Email           string    `json:"email,omitempty"`           // Contact email, also the login identifier.
	FirstName       string    `json:"firstName,omitempty"`       // Given name.
	LastName        string    `json:"lastName,omitempty"`        // Family name.
	ProfileImageURL string    `json:"profileImageUrl,omitempty"` // Avatar URL.
	Bio             string    `json:"bio,omitempty"`             // Free-text artisan story.
	Location        string    `json:"location,omitempty"`        // Free-text location.
	IsVerified      bool      `json:"isVerified"`                // Set for verified identities.
	CreatedAt       time.Time `json:"createdAt"`                 // Timestamp of the first upsert.
	UpdatedAt       time.Time `json:"updatedAt"`                 // Timestamp of the last upsert.
}

// DisplayName returns "First Last", or fallback when both names are empty.
func (u *User) DisplayName(fallback string) string {
	if u == nil {
		return fallback
	}

	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return fallback
	}

	return name
}

// Merge copies the non-zero profile fields of patch onto u.
// ID and timestamps are left untouched.
func (u *User) Merge(patch *User) {
	if patch == nil {
		return
	}
	if patch.Email != "" {
		u.Email = patch.Email
	}
	if patch.FirstName != "" {
		u.FirstName = patch.FirstName
	}
	if patch.LastName != "" {
		u.LastName = patch.LastName
	}
	if patch.ProfileImageURL != "" {
		u.ProfileImageURL = patch.ProfileImageURL
	}
	if patch.Bio != "" {
		u.Bio = patch.Bio
	}
	if patch.Location != "" {
		u.Location = patch.Location
	}
	if patch.IsVerified {
		u.IsVerified = true
	}
}
