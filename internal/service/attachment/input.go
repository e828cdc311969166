package attachment

import (
	"github.com/google/uuid"

	"github.com/casedesk/casedesk-backend/internal/domain"
)

// AttachInput holds the parameters for attaching catalog configs to a case.
// An empty ConfigIDs selection is not a validation error; it resolves to the
// none-added outcome.
type AttachInput struct {
	CaseID    uuid.UUID
	ConfigIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i AttachInput) Validate() error {
	var errs []domain.FieldError

	if i.CaseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "case_id", Message: "required"})
	}
	for _, id := range i.ConfigIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "config_ids", Message: "must not contain nil UUIDs"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the parameters for listing a case's attached configs.
type ListInput struct {
	CaseID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	if i.CaseID == uuid.Nil {
		return domain.NewValidationError("case_id", "required")
	}
	return nil
}
