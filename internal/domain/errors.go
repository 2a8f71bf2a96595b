package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface keeps the handler layer free of per-kind
// switch statements.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a resource was not found
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input, detected at the boundary
	// before any store access
	ValidationError struct {
		Message string
	}

	// UnauthorizedError indicates authentication failure
	UnauthorizedError struct {
		Message string
	}

	// ForbiddenError indicates an access-control denial. Its message is
	// deliberately opaque: a non-member must not learn whether the
	// folder or file they asked about exists.
	ForbiddenError struct {
		Message string
	}

	// CycleError indicates a folder reparent that would make the folder
	// an ancestor of itself
	CycleError struct {
		FolderID string
	}

	// VersionConflictError indicates two concurrent uploads computed the
	// same next version number. The caller may retry.
	VersionConflictError struct {
		FileID string
	}

	// CorruptHierarchyError indicates a broken parent chain: a folder
	// references a parent that no longer resolves. This is a
	// data-integrity violation, not a normal runtime condition.
	CorruptHierarchyError struct {
		FolderID string
		ParentID string
	}

	// MissingFoldersError reports the folder names a batch operation
	// could not resolve. The batch is all-or-nothing, so nothing was
	// changed.
	MissingFoldersError struct {
		ProjectID string
		Names     []string
	}
)

// Error implementations
func (e *NotFoundError) Error() string     { return e.Message }
func (e *ValidationError) Error() string   { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }
func (e *ForbiddenError) Error() string    { return e.Message }

func (e *CycleError) Error() string {
	return fmt.Sprintf("reparenting folder %s would create a cycle", e.FolderID)
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("concurrent version upload for file %s", e.FileID)
}

func (e *CorruptHierarchyError) Error() string {
	return fmt.Sprintf("folder %s references missing parent %s", e.FolderID, e.ParentID)
}

func (e *MissingFoldersError) Error() string {
	return fmt.Sprintf("folders not found in project %s: %s", e.ProjectID, strings.Join(e.Names, ", "))
}

// StatusCode implementations (HTTPError interface)
func (e *NotFoundError) StatusCode() int        { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int      { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int    { return http.StatusUnauthorized }
func (e *ForbiddenError) StatusCode() int       { return http.StatusForbidden }
func (e *CycleError) StatusCode() int           { return http.StatusConflict }
func (e *VersionConflictError) StatusCode() int { return http.StatusConflict }
func (e *MissingFoldersError) StatusCode() int  { return http.StatusUnprocessableEntity }

// CorruptHierarchy is always a server fault.
func (e *CorruptHierarchyError) StatusCode() int { return http.StatusInternalServerError }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("already exists")
	ErrValidation       = errors.New("validation failed")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrCycle            = errors.New("cycle detected")
	ErrVersionConflict  = errors.New("version conflict")
	ErrCorruptHierarchy = errors.New("corrupt hierarchy")
)

// Is allows errors.Is() matching against the corresponding sentinels.
func (e *NotFoundError) Is(target error) bool         { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool       { return target == ErrValidation }
func (e *UnauthorizedError) Is(target error) bool     { return target == ErrUnauthorized }
func (e *ForbiddenError) Is(target error) bool        { return target == ErrForbidden }
func (e *CycleError) Is(target error) bool            { return target == ErrCycle }
func (e *VersionConflictError) Is(target error) bool  { return target == ErrVersionConflict }
func (e *CorruptHierarchyError) Is(target error) bool { return target == ErrCorruptHierarchy }

// ConflictError represents a name collision with an existing resource.
type ConflictError struct {
	Message      string
	ResourceType string // folder, file, project
	ResourceID   string
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) StatusCode() int { return http.StatusConflict }

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// Retryable reports whether the caller may retry the operation as-is.
// Only storage-level version conflicts qualify; every other error kind
// is terminal for the request.
func Retryable(err error) bool {
	return errors.Is(err, ErrVersionConflict)
}
