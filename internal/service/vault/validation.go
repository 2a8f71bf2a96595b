package vault

import (
	"fmt"

	"github.com/google/uuid"
	"vault/internal/domain"
)

// requireID validates an identifier at the boundary, before any store
// access. Missing and malformed ids are distinct failures so the caller's
// bug is visible in the message.
func requireID(field, value string) error {
	if value == "" {
		return &domain.ValidationError{Message: fmt.Sprintf("%s is required", field)}
	}
	if err := uuid.Validate(value); err != nil {
		return &domain.ValidationError{Message: fmt.Sprintf("%s is not a valid identifier", field)}
	}
	return nil
}

// validUUID adapts uuid validation to an ozzo-validation rule.
func validUUID(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // Required is checked separately
	}
	if err := uuid.Validate(s); err != nil {
		return fmt.Errorf("must be a valid identifier")
	}
	return nil
}
