// Package entity defines the domain entities for the projects feature.
package entity

import (
	"time"

	authentity "nexus_backend/internal/feature/auth/domain/entity"
)

// Project represents a tracked project.
// Projects may be ownerless; when an owner is set it must reference an
// existing user (enforced by the store's foreign key).
type Project struct {
	ID uint `gorm:"primaryKey"`

	Name string `gorm:"size:255;not null"`

	// Description is optional free text.
	Description *string `gorm:"type:text"`

	// Completion is a percentage; the range is not validated.
	Completion int `gorm:"not null;default:0"`

	// OwnerID links the project to a user. Removing a user out of band
	// orphans the project rather than deleting it.
	OwnerID *uint           `gorm:"index"`
	Owner   *authentity.User `gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`

	CreatedAt time.Time
}
