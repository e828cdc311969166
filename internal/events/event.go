// Package events carries change notifications between the catalog and
// attachment components without giving them references to each other.
package events

import "github.com/google/uuid"

// Origin tags identify which operation produced an event. Subscribers may use
// them to skip refreshes they themselves triggered.
const (
	OriginAttach = "attach"
	OriginSubmit = "submit"
)

// CaseConfigsChanged signals that the set of configs attached to a case (or
// the case's lifecycle state) changed. It is ephemeral: delivered once to the
// subscribers active at publish time and never replayed.
type CaseConfigsChanged struct {
	CaseID uuid.UUID `json:"caseId"`
	Origin string    `json:"origin"`
}
