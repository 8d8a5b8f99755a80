// Package transfer owns the transfer workflow: patient transfer requests,
// their approval lifecycle, and the atomic bed movements they trigger.
package transfer

import "time"

// Request priorities, highest urgency first.
const (
	PriorityEmergency = "Emergency"
	PriorityHigh      = "High"
	PriorityMedium    = "Medium"
	PriorityLow       = "Low"
)

// Request statuses. PENDING is the only non-terminal state.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

var validPriorities = map[string]bool{
	PriorityEmergency: true,
	PriorityHigh:      true,
	PriorityMedium:    true,
	PriorityLow:       true,
}

// ValidPriority reports whether p is a known priority.
func ValidPriority(p string) bool { return validPriorities[p] }

// ValidDecision reports whether s is a terminal request status.
func ValidDecision(s string) bool { return s == StatusApproved || s == StatusRejected }

// PriorityRank orders priorities for queue display: Emergency first,
// unknown values last.
func PriorityRank(p string) int {
	switch p {
	case PriorityEmergency:
		return 1
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 3
	default:
		return 4
	}
}

// Request maps to the transfer_requests table.
type Request struct {
	RequestID         int       `db:"request_id" json:"request_id"`
	PatientName       string    `db:"patient_name" json:"patient_name"`
	FromWard          string    `db:"from_ward" json:"from_ward"`
	RequiredSpecialty string    `db:"required_specialty" json:"required_specialty"`
	Priority          string    `db:"priority" json:"priority"`
	ClinicalNotes     *string   `db:"clinical_notes" json:"clinical_notes,omitempty"`
	Status            string    `db:"status" json:"status"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}
