// Package adapters provides repository implementations for the projects feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"nexus_backend/internal/feature/projects/domain/entity"
	"nexus_backend/internal/feature/projects/usecase"
)

// projectGorm is the GORM implementation of the ProjectRepository interface.
type projectGorm struct {
	db *gorm.DB
}

// Compile-time check that projectGorm implements ProjectRepository.
var _ usecase.ProjectRepository = (*projectGorm)(nil)

// NewProjectRepository creates a new projectGorm with the given DB handle.
func NewProjectRepository(db *gorm.DB) *projectGorm {
	return &projectGorm{db: db}
}

// List returns all projects ordered by ID ascending.
func (r *projectGorm) List(ctx context.Context) ([]entity.Project, error) {
	var projects []entity.Project
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Create inserts the project and fills in its server-assigned ID.
func (r *projectGorm) Create(ctx context.Context, p *entity.Project) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// FindByID retrieves a project by ID.
func (r *projectGorm) FindByID(ctx context.Context, id uint) (*entity.Project, error) {
	var p entity.Project
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProjectNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Update applies the patch inside a single transaction so the row cannot
// change between the read and the write, and every exit path releases the
// transaction.
func (r *projectGorm) Update(ctx context.Context, id uint, patch usecase.ProjectPatch) (*entity.Project, error) {
	var p entity.Project
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrProjectNotFound
			}
			return err
		}
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = patch.Description
		}
		if patch.Completion != nil {
			p.Completion = *patch.Completion
		}
		return tx.Save(&p).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes the project. Deleting an ID that does not exist returns
// ErrProjectNotFound and has no side effect, on first and repeated calls.
func (r *projectGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Project{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrProjectNotFound
	}
	return nil
}
