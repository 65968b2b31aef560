// Package model holds the GORM persistence models of the marketplace.
// They are exported so the GORM Gen tool can build type-safe queries from them.
package model

import "time"

// UserModel mirrors the 'users' table. IDs are opaque strings (UUIDs or identity provider uids).
type UserModel struct {
	ID              string `gorm:"type:varchar(128);primaryKey"`
	Email           string `gorm:"type:varchar(255);index"`
	FirstName       string `gorm:"type:varchar(100)"`
	LastName        string `gorm:"type:varchar(100)"`
	ProfileImageURL string `gorm:"type:text"`
	Bio             string `gorm:"type:text"`
	Location        string `gorm:"type:varchar(255)"`
	IsVerified      bool   `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// CredentialModel mirrors the 'credentials' table backing email/password login.
type CredentialModel struct {
	Email        string `gorm:"type:varchar(255);primaryKey"`
	UserID       string `gorm:"type:varchar(128);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}
