package handler

import (
	"log/slog"
	"net/http"

	vaultSvc "vault/internal/domain/services/vault"
	"vault/internal/httputil"
)

// FolderHandler handles folder HTTP requests
type FolderHandler struct {
	folderService vaultSvc.FolderService
	logger        *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(folderService vaultSvc.FolderService, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		folderService: folderService,
		logger:        logger,
	}
}

// CreateFolder creates a new folder, optionally under a parent
// POST /api/projects/{id}/folders
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	actor, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	var req vaultSvc.CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.ProjectID = r.PathValue("id")

	folder, err := h.folderService.CreateFolder(r.Context(), actor, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, folder)
}

// Reparent moves a folder under a new parent. A null new_parent_id moves
// it to the project root.
// PATCH /api/projects/{id}/folders/{folderID}/parent
func (h *FolderHandler) Reparent(w http.ResponseWriter, r *http.Request) {
	actor, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	var req vaultSvc.ReparentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.ProjectID = r.PathValue("id")
	req.FolderID = r.PathValue("folderID")

	folder, err := h.folderService.Reparent(r.Context(), actor, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// ListChildren lists a folder's immediate children. Without a parent_id
// query parameter it lists the project's root folders.
// GET /api/projects/{id}/folders
func (h *FolderHandler) ListChildren(w http.ResponseWriter, r *http.Request) {
	actor, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	var parentID *string
	if v := r.URL.Query().Get("parent_id"); v != "" {
		parentID = &v
	}

	folders, err := h.folderService.ListChildren(r.Context(), actor, r.PathValue("id"), parentID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folders)
}

// ResolvePath returns the root-to-leaf folder chain
// GET /api/projects/{id}/folders/{folderID}/path
func (h *FolderHandler) ResolvePath(w http.ResponseWriter, r *http.Request) {
	actor, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	chain, err := h.folderService.ResolvePath(r.Context(), actor, r.PathValue("id"), r.PathValue("folderID"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, chain)
}
