package handler

import (
	"log/slog"
	"net/http"

	vaultSvc "vault/internal/domain/services/vault"
	"vault/internal/httputil"
)

// FileHandler handles file registry HTTP requests
type FileHandler struct {
	fileService vaultSvc.FileService
	logger      *slog.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(fileService vaultSvc.FileService, logger *slog.Logger) *FileHandler {
	return &FileHandler{
		fileService: fileService,
		logger:      logger,
	}
}

// CreateFile registers a file in a folder
// POST /api/projects/{id}/files
func (h *FileHandler) CreateFile(w http.ResponseWriter, r *http.Request) {
	actor, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	var req vaultSvc.CreateFileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.ProjectID = r.PathValue("id")

	file, err := h.fileService.CreateFile(r.Context(), actor, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, file)
}

// ListFiles lists the files owned directly by a folder. The folder_id
// query parameter is mandatory.
// GET /api/projects/{id}/files?folder_id=...
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	actor, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	folderID := r.URL.Query().Get("folder_id")

	files, err := h.fileService.ListFiles(r.Context(), actor, r.PathValue("id"), folderID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, files)
}

// GetFile retrieves a file by ID
// GET /api/files/{id}
func (h *FileHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	actor, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	file, err := h.fileService.GetFile(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, file)
}

// MoveFile moves a file to another folder in the same project
// PATCH /api/projects/{id}/files/{fileID}/folder
func (h *FileHandler) MoveFile(w http.ResponseWriter, r *http.Request) {
	actor, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	var req vaultSvc.MoveFileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.ProjectID = r.PathValue("id")
	req.FileID = r.PathValue("fileID")

	file, err := h.fileService.MoveFile(r.Context(), actor, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, file)
}
