package handler

import (
	"log/slog"
	"net/http"

	"vault/internal/domain/models/vault"
	vaultSvc "vault/internal/domain/services/vault"
	"vault/internal/httputil"
)

// AnnotationHandler handles annotation HTTP requests
type AnnotationHandler struct {
	annotationService vaultSvc.AnnotationService
	logger            *slog.Logger
}

// NewAnnotationHandler creates a new annotation handler
func NewAnnotationHandler(annotationService vaultSvc.AnnotationService, logger *slog.Logger) *AnnotationHandler {
	return &AnnotationHandler{
		annotationService: annotationService,
		logger:            logger,
	}
}

// AddAnnotation attaches an annotation to a version
// POST /api/versions/{id}/annotations
func (h *AnnotationHandler) AddAnnotation(w http.ResponseWriter, r *http.Request) {
	actor, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	var req vaultSvc.AddAnnotationRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.VersionID = r.PathValue("id")

	annotation, err := h.annotationService.AddAnnotation(r.Context(), actor, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, annotation)
}

// ListAnnotations lists a version's annotations
// GET /api/versions/{id}/annotations
func (h *AnnotationHandler) ListAnnotations(w http.ResponseWriter, r *http.Request) {
	actor, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	annotations, err := h.annotationService.ListAnnotations(r.Context(), actor, r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, annotations)
}

// SetStatus assigns a new review status to an annotation
// PATCH /api/annotations/{id}/status
func (h *AnnotationHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := getPrincipal(w, r)
	if !ok {
		return
	}

	var req struct {
		Status vault.AnnotationStatus `json:"status"`
	}
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	annotation, err := h.annotationService.SetStatus(r.Context(), actor, r.PathValue("id"), req.Status)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, annotation)
}
