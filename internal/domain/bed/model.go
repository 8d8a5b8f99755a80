// Package bed owns the bed registry: the mapping of bed to ward, specialty,
// and occupancy status.
package bed

import "time"

// Bed occupancy statuses.
const (
	StatusAvailable = "AVAILABLE"
	StatusOccupied  = "OCCUPIED"
	StatusCleaning  = "CLEANING"
)

var validStatuses = map[string]bool{
	StatusAvailable: true,
	StatusOccupied:  true,
	StatusCleaning:  true,
}

// ValidStatus reports whether s is a known occupancy status.
func ValidStatus(s string) bool { return validStatuses[s] }

// Bed maps to the beds table. PatientName is populated only by List, joined
// from the bed's open admission for dashboard display.
type Bed struct {
	BedID         int       `db:"bed_id" json:"bed_id"`
	HospitalID    *int      `db:"hospital_id" json:"hospital_id,omitempty"`
	WardName      string    `db:"ward_name" json:"ward_name"`
	SpecialtyType string    `db:"specialty_type" json:"specialty_type"`
	CurrentStatus string    `db:"current_status" json:"current_status"`
	LastUpdatedAt time.Time `db:"last_updated_at" json:"last_updated_at"`
	PatientName   *string   `db:"patient_name" json:"patient_name,omitempty"`
}
