package hospital

import "context"

// Repository is the read boundary for the occupancy projection.
type Repository interface {
	// Summaries returns every hospital with capacity rollups and ward
	// breakdowns, ordered by name.
	Summaries(ctx context.Context) ([]*Summary, error)
	// WardAvailability returns the per-ward bed counts for one hospital.
	WardAvailability(ctx context.Context, hospitalID int) ([]*WardAvailability, error)
	// Counts returns total/available bed counts per hospital, ordered by
	// name. Hospitals with no beds appear with zero counts.
	Counts(ctx context.Context) ([]*BedCounts, error)
}
