package domain

import (
	"time"

	"github.com/google/uuid"
)

// CaseStatus is the lifecycle state of a case. A case is created Open and is
// closed exactly once by a successful submission; it is never reopened.
type CaseStatus string

const (
	CaseStatusOpen   CaseStatus = "Open"
	CaseStatusClosed CaseStatus = "Closed"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s CaseStatus) Valid() bool {
	return s == CaseStatusOpen || s == CaseStatusClosed
}

// Case is the parent business record configs are attached to.
type Case struct {
	ID        uuid.UUID
	Reference string
	Status    CaseStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsClosed reports whether the case has been closed. Closed cases are
// read-only: attach and submit both reject them.
func (c *Case) IsClosed() bool {
	return c.Status == CaseStatusClosed
}
