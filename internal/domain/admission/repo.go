package admission

import "context"

// Repository is the persistence boundary for the admission ledger.
type Repository interface {
	// Open starts a stay on the given bed. Conflict when the bed already
	// has an open admission.
	Open(ctx context.Context, bedID int, patientName string) (*Admission, error)
	// CloseOpen discharges the bed's open admission, stamping discharged_at.
	// Closing a bed with no open admission is a no-op.
	CloseOpen(ctx context.Context, bedID int) error
	// Current returns the bed's open admission, or (nil, nil) when the bed
	// is empty.
	Current(ctx context.Context, bedID int) (*Admission, error)
	// HistoryByBed returns all admissions for a bed, newest first.
	HistoryByBed(ctx context.Context, bedID int) ([]*Admission, error)
}
