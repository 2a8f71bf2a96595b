package handler

import (
	"log/slog"
	"net/http"

	vaultSvc "vault/internal/domain/services/vault"
	"vault/internal/httputil"
)

// VersionHandler handles version chain HTTP requests
type VersionHandler struct {
	versionService vaultSvc.VersionService
	logger         *slog.Logger
}

// NewVersionHandler creates a new version handler
func NewVersionHandler(versionService vaultSvc.VersionService, logger *slog.Logger) *VersionHandler {
	return &VersionHandler{
		versionService: versionService,
		logger:         logger,
	}
}

// AddVersion appends a new version to a file's chain. Concurrent uploads
// race on the version number; the loser gets 409 and may retry.
// POST /api/files/{id}/versions
func (h *VersionHandler) AddVersion(w http.ResponseWriter, r *http.Request) {
	actor, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	var req vaultSvc.AddVersionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.FileID = r.PathValue("id")

	version, err := h.versionService.AddVersion(r.Context(), actor, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, version)
}

// ListVersions lists a file's versions ordered ascending
// GET /api/files/{id}/versions
func (h *VersionHandler) ListVersions(w http.ResponseWriter, r *http.Request) {
	actor, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	versions, err := h.versionService.ListVersions(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, versions)
}

// GetVersion retrieves a version by ID
// GET /api/versions/{id}
func (h *VersionHandler) GetVersion(w http.ResponseWriter, r *http.Request) {
	actor, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	version, err := h.versionService.GetVersion(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, version)
}
