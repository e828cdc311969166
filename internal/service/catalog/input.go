package catalog

import (
	"github.com/casedesk/casedesk-backend/internal/domain"
)

// ListInput holds the browse parameters. Zero values mean defaults: sort by
// label ascending, first page, configured default page size.
type ListInput struct {
	Type     string
	Sort     string
	Desc     bool
	Page     int
	PageSize int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Sort != "" && !domain.CatalogSort(i.Sort).Valid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "unknown sort column"})
	}
	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must not be negative"})
	}
	if i.PageSize < 0 {
		errs = append(errs, domain.FieldError{Field: "page_size", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
