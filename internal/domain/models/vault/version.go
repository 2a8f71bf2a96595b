package vault

import (
	"time"
)

// PDFVersion is one immutable content snapshot of a file. Version numbers
// are contiguous per file, starting at 1. There is no update path once a
// version exists.
type PDFVersion struct {
	ID            string    `json:"id" db:"id"`
	FileID        string    `json:"file_id" db:"file_id"`
	VersionNumber int       `json:"version_number" db:"version_number"`
	ContentRef    string    `json:"content_ref" db:"content_ref"`
	Description   string    `json:"description" db:"description"`
	UploadedAt    time.Time `json:"uploaded_at" db:"uploaded_at"`
	UploadedByID  string    `json:"uploaded_by" db:"uploaded_by"`
}
