package attendance

import (
	"time"

	"github.com/congrega/attendance-backend/internal/pkg/validator"
)

type UpsertRequest struct {
	Type       string `json:"type"`
	PersonID   string `json:"person_id"`
	PersonName string `json:"person_name"`
	Date       string `json:"date"`
	Present    bool   `json:"present"`
}

func (r UpsertRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Type != TypeMember && r.Type != TypeVisitor {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be member or visitor"})
	}
	if validator.IsEmpty(r.PersonID) {
		errs = append(errs, validator.ValidationError{Field: "person_id", Message: "person_id is required"})
	}
	if validator.IsEmpty(r.PersonName) {
		errs = append(errs, validator.ValidationError{Field: "person_name", Message: "person_name is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	PersonID   string    `json:"person_id"`
	PersonName string    `json:"person_name"`
	Date       string    `json:"date"`
	Present    bool      `json:"present"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:         rec.ID,
		Type:       rec.Type,
		PersonID:   rec.PersonID,
		PersonName: rec.PersonName,
		Date:       rec.Date,
		Present:    rec.Present,
		CreatedAt:  rec.CreatedAt,
	}
}
