package attendance

import (
	"context"
	"time"

	"github.com/congrega/attendance-backend/internal/domain/attendance"
	"github.com/congrega/attendance-backend/internal/pkg/validator"
	"github.com/google/uuid"
)

type attendanceServiceImpl struct {
	repo attendance.Repository
}

func NewAttendanceService(repo attendance.Repository) attendance.Service {
	return &attendanceServiceImpl{repo: repo}
}

// Upsert implements attendance.Service. A fresh record id and timestamp
// are generated here; the repository keeps the stored id when the
// (person, date) pair already has a row.
func (s *attendanceServiceImpl) Upsert(ctx context.Context, req attendance.UpsertRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec := attendance.Record{
		ID:         uuid.NewString(),
		Type:       req.Type,
		PersonID:   req.PersonID,
		PersonName: req.PersonName,
		Date:       req.Date,
		Present:    req.Present,
		CreatedAt:  time.Now().UTC(),
	}
	written, err := s.repo.Upsert(ctx, rec)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return attendance.ToResponse(written), nil
}

// ListByDate implements attendance.Service.
func (s *attendanceServiceImpl) ListByDate(ctx context.Context, date string) ([]attendance.RecordResponse, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return nil, validator.ValidationErrors{{Field: "date", Message: "date must be YYYY-MM-DD"}}
	}

	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]attendance.RecordResponse, 0)
	for _, rec := range records {
		if rec.Date == date {
			responses = append(responses, attendance.ToResponse(rec))
		}
	}
	return responses, nil
}

// ListByPerson implements attendance.Service.
func (s *attendanceServiceImpl) ListByPerson(ctx context.Context, personID, personType string) ([]attendance.RecordResponse, error) {
	if personType != attendance.TypeMember && personType != attendance.TypeVisitor {
		return nil, attendance.ErrInvalidPersonType
	}

	records, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]attendance.RecordResponse, 0)
	for _, rec := range records {
		if rec.PersonID == personID && rec.Type == personType {
			responses = append(responses, attendance.ToResponse(rec))
		}
	}
	return responses, nil
}
