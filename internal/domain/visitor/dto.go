package visitor

import (
	"time"

	"github.com/congrega/attendance-backend/internal/pkg/validator"
)

type CreateVisitorRequest struct {
	Name   string `json:"name"`
	Origin string `json:"origin"`
}

func (r CreateVisitorRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Origin) {
		errs = append(errs, validator.ValidationError{Field: "origin", Message: "origin is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateVisitorRequest = CreateVisitorRequest

type VisitorResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Origin       string    `json:"origin"`
	RegisteredAt time.Time `json:"registered_at"`
}

func ToResponse(v Visitor) VisitorResponse {
	return VisitorResponse{
		ID:           v.ID,
		Name:         v.Name,
		Origin:       v.Origin,
		RegisteredAt: v.RegisteredAt,
	}
}
