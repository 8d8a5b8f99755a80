package bed

import "context"

// Repository is the persistence boundary for the bed registry.
type Repository interface {
	Create(ctx context.Context, b *Bed) error
	// List returns beds ordered by bed_id ascending, each joined with the
	// patient name of its open admission, if any. specialty "" or "All"
	// disables filtering.
	List(ctx context.Context, specialty string) ([]*Bed, error)
	// UpdateStatus sets current_status and stamps last_updated_at, returning
	// the updated row. NotFound when the bed does not exist.
	UpdateStatus(ctx context.Context, bedID int, status string) (*Bed, error)
	// Delete is idempotent: deleting an absent bed is not an error.
	Delete(ctx context.Context, bedID int) error
}
