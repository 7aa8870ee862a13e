package visitor

import "context"

// Repository defines row store access for visitors, with the same
// read-through and write-then-invalidate policy as members.
type Repository interface {
	List(ctx context.Context) ([]Visitor, error)
	GetByID(ctx context.Context, id string) (Visitor, error)
	Create(ctx context.Context, v Visitor) error
	Update(ctx context.Context, v Visitor) (Visitor, error)
	Delete(ctx context.Context, id string) error
}
