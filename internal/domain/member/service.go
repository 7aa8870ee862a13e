package member

import "context"

// Service defines business logic for member operations
type Service interface {
	Create(ctx context.Context, req CreateMemberRequest) (MemberResponse, error)
	List(ctx context.Context) ([]MemberResponse, error)
	Get(ctx context.Context, id string) (MemberResponse, error)
	Update(ctx context.Context, id string, req UpdateMemberRequest) (MemberResponse, error)
	Delete(ctx context.Context, id string) error
}
