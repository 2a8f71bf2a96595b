package handler

import (
	"log/slog"
	"net/http"

	vaultSvc "vault/internal/domain/services/vault"
	"vault/internal/httputil"
)

// MaintenanceHandler exposes batch hierarchy corrections
type MaintenanceHandler struct {
	maintenanceService vaultSvc.MaintenanceService
	logger             *slog.Logger
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(maintenanceService vaultSvc.MaintenanceService, logger *slog.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
		logger:             logger,
	}
}

// LinearizeChain re-parents the named folders into one chain in list order.
// The operation is all-or-nothing: unresolved names yield 422 and no change.
// POST /api/projects/{id}/maintenance/linearize
func (h *MaintenanceHandler) LinearizeChain(w http.ResponseWriter, r *http.Request) {
	actor, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	var req struct {
		FolderNames []string `json:"folder_names"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	projectID := r.PathValue("id")
	if err := h.maintenanceService.LinearizeChain(r.Context(), actor, projectID, req.FolderNames); err != nil {
		handleError(w, err)
		return
	}

	h.logger.Info("folder chain linearized", "project_id", projectID, "count", len(req.FolderNames))
	w.WriteHeader(http.StatusNoContent)
}
