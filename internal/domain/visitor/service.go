package visitor

import "context"

// Service defines business logic for visitor operations
type Service interface {
	Create(ctx context.Context, req CreateVisitorRequest) (VisitorResponse, error)
	List(ctx context.Context) ([]VisitorResponse, error)
	Get(ctx context.Context, id string) (VisitorResponse, error)
	Update(ctx context.Context, id string, req UpdateVisitorRequest) (VisitorResponse, error)
	Delete(ctx context.Context, id string) error
}
