// Package admission owns the admission ledger: one row per patient stay,
// open while discharged_at is null.
package admission

import "time"

// Admission maps to the admissions table.
type Admission struct {
	AdmissionID  int        `db:"admission_id" json:"admission_id"`
	BedID        int        `db:"bed_id" json:"bed_id"`
	PatientName  string     `db:"patient_name" json:"patient_name"`
	AdmittedAt   time.Time  `db:"admitted_at" json:"admitted_at"`
	DischargedAt *time.Time `db:"discharged_at" json:"discharged_at,omitempty"`
}

// Open reports whether the stay is still in progress.
func (a *Admission) Open() bool { return a.DischargedAt == nil }
