package user

import "context"

// Repository is the persistence boundary for accounts.
type Repository interface {
	// Create inserts the account. Conflict when the username is taken.
	Create(ctx context.Context, u *User) error
	// GetByUsername finds an account. NotFound when absent.
	GetByUsername(ctx context.Context, username string) (*User, error)
	// UpdatePasswordHash replaces the stored hash. NotFound when the
	// username does not exist.
	UpdatePasswordHash(ctx context.Context, username, hash string) error
}
