package submission

import (
	"github.com/google/uuid"

	"github.com/casedesk/casedesk-backend/internal/domain"
)

// SubmitInput holds the parameters for submitting a case.
type SubmitInput struct {
	CaseID        uuid.UUID
	CaseConfigIDs []uuid.UUID
}

// Validate checks all fields and collects all errors. An empty selection is
// handled separately (ErrEmptySelection), not as a field error.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if i.CaseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "case_id", Message: "required"})
	}
	for _, id := range i.CaseConfigIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "case_config_ids", Message: "must not contain nil UUIDs"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
