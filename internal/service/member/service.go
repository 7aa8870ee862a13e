package member

import (
	"context"
	"time"

	"github.com/congrega/attendance-backend/internal/domain/member"
	"github.com/google/uuid"
)

type memberServiceImpl struct {
	repo member.Repository
}

func NewMemberService(repo member.Repository) member.Service {
	return &memberServiceImpl{repo: repo}
}

// Create implements member.Service.
func (s *memberServiceImpl) Create(ctx context.Context, req member.CreateMemberRequest) (member.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return member.MemberResponse{}, err
	}

	m := member.Member{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Surname:      req.Surname,
		Address:      req.Address,
		Phone:        req.Phone,
		RegisteredAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return member.MemberResponse{}, err
	}
	return member.ToResponse(m), nil
}

// List implements member.Service.
func (s *memberServiceImpl) List(ctx context.Context) ([]member.MemberResponse, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]member.MemberResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, member.ToResponse(m))
	}
	return responses, nil
}

// Get implements member.Service.
func (s *memberServiceImpl) Get(ctx context.Context, id string) (member.MemberResponse, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return member.MemberResponse{}, err
	}
	return member.ToResponse(m), nil
}

// Update implements member.Service.
func (s *memberServiceImpl) Update(ctx context.Context, id string, req member.UpdateMemberRequest) (member.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return member.MemberResponse{}, err
	}

	updated, err := s.repo.Update(ctx, member.Member{
		ID:      id,
		Name:    req.Name,
		Surname: req.Surname,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return member.MemberResponse{}, err
	}
	return member.ToResponse(updated), nil
}

// Delete implements member.Service.
func (s *memberServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
