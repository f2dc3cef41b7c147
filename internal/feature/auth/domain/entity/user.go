// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user account.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users; the store enforces this.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// HashedPassword is the bcrypt hash of the user's password.
	// This never stores the plaintext.
	HashedPassword string `gorm:"size:255;not null"`

	// IsActive is reserved for future account gating; no current logic
	// reads it.
	IsActive bool `gorm:"not null;default:true"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time
}
