package domain

import "github.com/google/uuid"

// SubmissionEntry is one attached config in the outbound payload.
type SubmissionEntry struct {
	Label  string
	Type   string
	Amount float64
}

// Submission is the payload sent to the external commerce endpoint when a
// case's attached configs are submitted. Status is always CaseStatusClosed;
// the endpoint treats the submission as the close request.
type Submission struct {
	CaseID  uuid.UUID
	Status  CaseStatus
	Entries []SubmissionEntry
}
