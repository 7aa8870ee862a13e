package dashboard

import "context"

// Service computes the dashboard summary.
type Service interface {
	Stats(ctx context.Context) (Stats, error)
}
