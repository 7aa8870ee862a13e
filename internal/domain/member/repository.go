package member

import "context"

// Repository defines row store access for members. Reads are served
// through the collection cache; writes reach the store first and then
// invalidate the cached collection.
type Repository interface {
	// List retrieves all members.
	List(ctx context.Context) ([]Member, error)

	// GetByID retrieves a single member or ErrMemberNotFound.
	GetByID(ctx context.Context, id string) (Member, error)

	// Create appends a new member row.
	Create(ctx context.Context, m Member) error

	// Update overwrites the member row in place, preserving the stored
	// registration date, and returns the row as written.
	Update(ctx context.Context, m Member) (Member, error)

	// Delete removes the member row or returns ErrMemberNotFound.
	Delete(ctx context.Context, id string) error
}
