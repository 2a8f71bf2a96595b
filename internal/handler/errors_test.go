package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vault/internal/domain"
	"vault/internal/httputil"
)

func TestHandleError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &domain.ValidationError{Message: "folder id is required"}, http.StatusBadRequest},
		{"not found", &domain.NotFoundError{Message: "file missing"}, http.StatusNotFound},
		{"forbidden", &domain.ForbiddenError{Message: "not a project member"}, http.StatusForbidden},
		{"cycle", &domain.CycleError{FolderID: "f1"}, http.StatusConflict},
		{"version conflict", &domain.VersionConflictError{FileID: "f1"}, http.StatusConflict},
		{"missing folders", &domain.MissingFoldersError{ProjectID: "p1", Names: []string{"2020"}}, http.StatusUnprocessableEntity},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handleError(rec, tc.err)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

			var problem httputil.ProblemDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
			assert.Equal(t, tc.status, problem.Status)
		})
	}
}

// Integrity faults map to 500 and the response detail hides the folder
// ids carried by the error.
func TestHandleError_CorruptHierarchyIsOpaque(t *testing.T) {
	rec := httptest.NewRecorder()
	handleError(rec, &domain.CorruptHierarchyError{FolderID: "folder-1", ParentID: "parent-1"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "folder-1")
	assert.NotContains(t, rec.Body.String(), "parent-1")
}

// Wrapped domain errors still map through errors.As.
func TestHandleError_WrappedError(t *testing.T) {
	rec := httptest.NewRecorder()
	handleError(rec, fmt.Errorf("lookup: %w", &domain.NotFoundError{Message: "gone"}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
