package domain

import (
	"time"

	"github.com/google/uuid"
)

// Config is a catalog record available for attachment to any case.
// Configs are managed externally; this system only reads them.
type Config struct {
	ID        uuid.UUID
	Label     string
	Type      string
	Amount    float64
	CreatedAt time.Time
}

// CaseConfig is the case-specific copy created when a Config is attached to a
// case. Label is the uniqueness key: a case holds at most one CaseConfig per
// label. Rows are never mutated after creation.
type CaseConfig struct {
	ID        uuid.UUID
	CaseID    uuid.UUID
	Label     string
	Type      string
	Amount    float64
	CreatedAt time.Time
}

// CatalogSort names the columns the catalog view may sort by.
type CatalogSort string

const (
	CatalogSortLabel     CatalogSort = "label"
	CatalogSortType      CatalogSort = "type"
	CatalogSortAmount    CatalogSort = "amount"
	CatalogSortCreatedAt CatalogSort = "created_at"
)

// Valid reports whether the sort key is one of the whitelisted columns.
func (s CatalogSort) Valid() bool {
	switch s {
	case CatalogSortLabel, CatalogSortType, CatalogSortAmount, CatalogSortCreatedAt:
		return true
	}
	return false
}

// CatalogFilter contains filtering/pagination parameters for catalog listings.
// Sort must already be validated by the caller (CatalogSort.Valid).
type CatalogFilter struct {
	Type   string // optional: filter by config type, empty means all
	Sort   CatalogSort
	Desc   bool
	Limit  int
	Offset int
}
