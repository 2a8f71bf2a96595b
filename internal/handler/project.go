package handler

import (
	"log/slog"
	"net/http"

	vaultSvc "vault/internal/domain/services/vault"
	"vault/internal/httputil"
)

// ProjectHandler handles project and membership HTTP requests
type ProjectHandler struct {
	projectService vaultSvc.ProjectService
	logger         *slog.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService vaultSvc.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// ListProjects retrieves the caller's projects
// GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	actor, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	projects, err := h.projectService.ListProjects(r.Context(), actor)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, projects)
}

// CreateProject creates a new project owned by the caller
// POST /api/projects
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	actor, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	var req vaultSvc.CreateProjectRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(r.Context(), actor, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, project)
}

// GetProject retrieves a project by ID
// GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	actor, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, project)
}

// ListMembers lists a project's memberships
// GET /api/projects/{id}/members
func (h *ProjectHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	actor, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	members, err := h.projectService.ListMembers(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, members)
}

// AddMember grants a user a role in a project
// POST /api/projects/{id}/members
func (h *ProjectHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	actor, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	var req vaultSvc.AddMemberRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.ProjectID = r.PathValue("id")

	membership, err := h.projectService.AddMember(r.Context(), actor, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, membership)
}

// RemoveMember revokes a user's membership
// DELETE /api/projects/{id}/members/{userID}
func (h *ProjectHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	actor, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	err := h.projectService.RemoveMember(r.Context(), actor, r.PathValue("id"), r.PathValue("userID"))
	if err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
