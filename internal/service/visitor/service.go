package visitor

import (
	"context"
	"time"

	"github.com/congrega/attendance-backend/internal/domain/visitor"
	"github.com/google/uuid"
)

type visitorServiceImpl struct {
	repo visitor.Repository
}

func NewVisitorService(repo visitor.Repository) visitor.Service {
	return &visitorServiceImpl{repo: repo}
}

// Create implements visitor.Service.
func (s *visitorServiceImpl) Create(ctx context.Context, req visitor.CreateVisitorRequest) (visitor.VisitorResponse, error) {
	if err := req.Validate(); err != nil {
		return visitor.VisitorResponse{}, err
	}

	v := visitor.Visitor{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Origin:       req.Origin,
		RegisteredAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return visitor.VisitorResponse{}, err
	}
	return visitor.ToResponse(v), nil
}

// List implements visitor.Service.
func (s *visitorServiceImpl) List(ctx context.Context) ([]visitor.VisitorResponse, error) {
	visitors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]visitor.VisitorResponse, 0, len(visitors))
	for _, v := range visitors {
		responses = append(responses, visitor.ToResponse(v))
	}
	return responses, nil
}

// Get implements visitor.Service.
func (s *visitorServiceImpl) Get(ctx context.Context, id string) (visitor.VisitorResponse, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return visitor.VisitorResponse{}, err
	}
	return visitor.ToResponse(v), nil
}

// Update implements visitor.Service.
func (s *visitorServiceImpl) Update(ctx context.Context, id string, req visitor.UpdateVisitorRequest) (visitor.VisitorResponse, error) {
	if err := req.Validate(); err != nil {
		return visitor.VisitorResponse{}, err
	}

	updated, err := s.repo.Update(ctx, visitor.Visitor{
		ID:     id,
		Name:   req.Name,
		Origin: req.Origin,
	})
	if err != nil {
		return visitor.VisitorResponse{}, err
	}
	return visitor.ToResponse(updated), nil
}

// Delete implements visitor.Service.
func (s *visitorServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
