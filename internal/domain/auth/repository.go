package auth

import "context"

// UserRepository defines credential store access. The document database
// holds only these account records; everything else lives in the row
// store.
type UserRepository interface {
	// FindByUsername returns the user or nil when no account exists.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// Create inserts a new account document.
	Create(ctx context.Context, u User) error
}
