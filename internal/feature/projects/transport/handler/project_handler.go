// Package handler provides HTTP handlers for the projects feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nexus_backend/internal/feature/projects/domain/entity"
	"nexus_backend/internal/feature/projects/transport/http/dto"
	"nexus_backend/internal/feature/projects/usecase"
)

// ProjectUsecase defines the project operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type ProjectUsecase interface {
	ListProjects(ctx context.Context) ([]entity.Project, error)
	CreateProject(ctx context.Context, name string, description *string, completion int) (*entity.Project, error)
	GetProject(ctx context.Context, id uint) (*entity.Project, error)
	UpdateProject(ctx context.Context, id uint, patch usecase.ProjectPatch) (*entity.Project, error)
	DeleteProject(ctx context.Context, id uint) error
}

// ProjectHandler handles HTTP requests for project CRUD.
// No caller-identity check is applied anywhere here; see DESIGN.md.
type ProjectHandler struct {
	uc ProjectUsecase
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(uc ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// List handles GET /api/v1/projects.
// Returns every project ordered by ID ascending; an empty store yields [].
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.uc.ListProjects(c.Request.Context())
	if err != nil {
		slog.Error("list projects failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list projects"})
		return
	}

	out := make([]dto.ProjectOut, 0, len(projects))
	for i := range projects {
		out = append(out, dto.FromEntity(&projects[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /api/v1/projects.
// Returns 201 with the stored row including its server-assigned ID.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.CreateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create project validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := h.uc.CreateProject(c.Request.Context(), req.Name, req.Description, req.Completion)
	if err != nil {
		slog.Error("create project failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create project"})
		return
	}

	slog.Info("project created", "project_id", p.ID)
	c.JSON(http.StatusCreated, dto.FromEntity(p))
}

// Get handles GET /api/v1/projects/{id}.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	p, err := h.uc.GetProject(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err, "get project")
		return
	}
	c.JSON(http.StatusOK, dto.FromEntity(p))
}

// Update handles PUT /api/v1/projects/{id}.
// Only non-null fields in the payload overwrite stored values.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update project validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	patch := usecase.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
		Completion:  req.Completion,
	}
	p, err := h.uc.UpdateProject(c.Request.Context(), id, patch)
	if err != nil {
		h.renderError(c, err, "update project")
		return
	}

	slog.Info("project updated", "project_id", p.ID)
	c.JSON(http.StatusOK, dto.FromEntity(p))
}

// Delete handles DELETE /api/v1/projects/{id}.
// Returns 204 on success; a missing ID is 404 on first and repeated calls.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	if err := h.uc.DeleteProject(c.Request.Context(), id); err != nil {
		h.renderError(c, err, "delete project")
		return
	}

	slog.Info("project deleted", "project_id", id)
	c.Status(http.StatusNoContent)
}

// projectID parses the :id path parameter, rendering a 400 on failure.
// Any well-formed number is accepted; ids beyond the stored range fall
// through to the store and come back as a 404 like any other missing row.
func projectID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return 0, false
	}
	return uint(id), true
}

// renderError maps usecase errors to HTTP responses.
func (h *ProjectHandler) renderError(c *gin.Context, err error, op string) {
	if errors.Is(err, usecase.ErrProjectNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	slog.Error(op+" failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
