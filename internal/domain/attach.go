package domain

import "strings"

// Attach user-facing summary messages. The duplicate form is completed with
// the comma-joined duplicate labels.
const (
	attachMsgAll        = "All records added successfully."
	attachMsgNone       = "No records were added. All selected configs are already added to the Case."
	attachMsgDuplicates = "Records added, duplicate records were not added: "
)

// AttachResult reports the outcome of an attach operation.
type AttachResult struct {
	Added           int
	Duplicates      int
	DuplicateLabels []string
}

// Message renders the human-readable summary for the result. Exactly three
// forms exist: all added, none added, and a mix listing the skipped labels.
func (r AttachResult) Message() string {
	switch {
	case r.Added > 0 && r.Duplicates > 0:
		return attachMsgDuplicates + strings.Join(r.DuplicateLabels, ", ")
	case r.Added > 0:
		return attachMsgAll
	default:
		return attachMsgNone
	}
}
