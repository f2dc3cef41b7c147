// Package dto defines data transfer objects for the projects HTTP API.
package dto

import "nexus_backend/internal/feature/projects/domain/entity"

// CreateProjectReq represents the request body for POST /api/v1/projects.
// Completion defaults to 0 when omitted.
type CreateProjectReq struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Completion  int     `json:"completion"`
}

// UpdateProjectReq represents the request body for PUT /api/v1/projects/{id}.
// Every field is optional; omitted or null fields leave the stored value
// untouched.
type UpdateProjectReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Completion  *int    `json:"completion"`
}

// ProjectOut is the public JSON shape of a project.
type ProjectOut struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Completion  int     `json:"completion"`
	OwnerID     *uint   `json:"owner_id"`
}

// FromEntity converts a project entity to its response shape.
func FromEntity(p *entity.Project) ProjectOut {
	return ProjectOut{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Completion:  p.Completion,
		OwnerID:     p.OwnerID,
	}
}
