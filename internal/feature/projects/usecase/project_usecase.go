package usecase

import (
	"context"

	"nexus_backend/internal/feature/projects/domain/entity"
)

// ProjectPatch describes a partial update. Nil fields leave the stored value
// untouched; non-nil fields overwrite it.
type ProjectPatch struct {
	Name        *string
	Description *string
	Completion  *int
}

// IsEmpty reports whether the patch changes nothing.
func (p ProjectPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Completion == nil
}

// ProjectRepository abstracts the persistence layer for project entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type ProjectRepository interface {
	// List returns all projects ordered by ID ascending.
	List(ctx context.Context) ([]entity.Project, error)

	// Create persists a new project and fills in its server-assigned ID.
	Create(ctx context.Context, p *entity.Project) error

	// FindByID retrieves a project by ID.
	// It returns ErrProjectNotFound if no such project exists.
	FindByID(ctx context.Context, id uint) (*entity.Project, error)

	// Update applies the patch to the project with the given ID inside one
	// transaction and returns the updated row.
	// It returns ErrProjectNotFound if no such project exists.
	Update(ctx context.Context, id uint, patch ProjectPatch) (*entity.Project, error)

	// Delete removes the project with the given ID.
	// It returns ErrProjectNotFound if no such project exists.
	Delete(ctx context.Context, id uint) error
}

// ProjectUsecase provides the project CRUD operations.
type ProjectUsecase struct {
	repo ProjectRepository
}

// NewProjectUsecase creates a new ProjectUsecase.
func NewProjectUsecase(repo ProjectRepository) *ProjectUsecase {
	return &ProjectUsecase{repo: repo}
}

// ListProjects returns all projects. The order is by ID ascending and stable
// across calls.
func (u *ProjectUsecase) ListProjects(ctx context.Context) ([]entity.Project, error) {
	return u.repo.List(ctx)
}

// CreateProject stores a new project and returns it with its assigned ID.
// No owner is assigned here; owner_id only changes through the store.
func (u *ProjectUsecase) CreateProject(ctx context.Context, name string, description *string, completion int) (*entity.Project, error) {
	p := &entity.Project{
		Name:        name,
		Description: description,
		Completion:  completion,
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProject returns the project with the given ID.
func (u *ProjectUsecase) GetProject(ctx context.Context, id uint) (*entity.Project, error) {
	return u.repo.FindByID(ctx, id)
}

// UpdateProject applies a partial update and returns the resulting row.
// An empty patch is a no-op read.
func (u *ProjectUsecase) UpdateProject(ctx context.Context, id uint, patch ProjectPatch) (*entity.Project, error) {
	if patch.IsEmpty() {
		return u.repo.FindByID(ctx, id)
	}
	return u.repo.Update(ctx, id, patch)
}

// DeleteProject removes the project with the given ID. Deletion is
// irrecoverable; there is no soft delete.
func (u *ProjectUsecase) DeleteProject(ctx context.Context, id uint) error {
	return u.repo.Delete(ctx, id)
}
