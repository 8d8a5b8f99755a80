package transfer

import "context"

// Repository is the persistence boundary for transfer requests.
type Repository interface {
	Create(ctx context.Context, r *Request) error
	// List returns requests ordered by priority urgency (Emergency first),
	// then newest first within the same priority. status "" disables the
	// optional status filter.
	List(ctx context.Context, status string) ([]*Request, error)
	GetByID(ctx context.Context, requestID int) (*Request, error)
	// UpdateStatus sets the request's status. NotFound when the request
	// does not exist.
	UpdateStatus(ctx context.Context, requestID int, status string) (*Request, error)
}
