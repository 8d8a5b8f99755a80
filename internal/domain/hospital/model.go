// Package hospital is the read-only occupancy projection: per-hospital
// summaries, per-ward availability, and occupancy percentages computed from
// the bed registry.
package hospital

// Hospital is static reference data, maintained out of band.
type Hospital struct {
	ID       int     `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	Location string  `db:"location" json:"location"`
	Lat      float64 `db:"lat" json:"lat"`
	Lng      float64 `db:"lng" json:"lng"`
}

// WardAvailability is the per-ward bed count breakdown.
type WardAvailability struct {
	WardName      string `db:"ward_name" json:"ward_name"`
	AvailableBeds int    `db:"available_beds" json:"available_beds"`
	TotalBeds     int    `db:"total_beds" json:"total_beds"`
}

// Summary is one hospital with its capacity rollup and ward breakdown.
type Summary struct {
	Hospital
	TotalCapacity int                `json:"total_capacity"`
	AvailableBeds int                `json:"available_beds"`
	Wards         []WardAvailability `json:"wards"`
}

// BedCounts is the raw material for the occupancy percentage: total and
// available beds per hospital.
type BedCounts struct {
	Name      string
	Total     int
	Available int
}

// Occupancy is one row of the occupancy-by-hospital report.
type Occupancy struct {
	Name                string  `json:"name"`
	OccupancyPercentage float64 `json:"occupancy_percentage"`
}
