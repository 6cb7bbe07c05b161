package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"seedcodes/internal/httputil"
	"seedcodes/internal/models"
	"seedcodes/internal/service"
)

// defaultListLimit bounds list responses when no limit is given.
const defaultListLimit = 24

// ProjectHandler handles project HTTP requests plus the liveness and
// schema-introspection endpoints.
type ProjectHandler struct {
	projectService *service.ProjectService
	logger         *slog.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// Root returns the liveness message
// GET /
func (h *ProjectHandler) Root(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "SeedCodes API running",
	})
}

// Schema exposes the project schema for the workspace database viewer
// GET /schema
func (h *ProjectHandler) Schema(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"project": models.ProjectSchema(),
	})
}

// CreateProject creates a new project
// POST /api/projects
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req service.CreateProjectRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.projectService.Create(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// ListProjects retrieves projects, optionally filtered by tag
// GET /api/projects?tag=&limit=
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")

	limit := int64(defaultListLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			httputil.RespondError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	projects, err := h.projectService.List(r.Context(), tag, limit)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, projects)
}
