package member

import (
	"time"

	"github.com/congrega/attendance-backend/internal/pkg/validator"
)

type CreateMemberRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (r CreateMemberRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Surname) {
		errs = append(errs, validator.ValidationError{Field: "surname", Message: "surname is required"})
	}
	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{Field: "address", Message: "address is required"})
	}
	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateMemberRequest carries the same editable fields as create;
// registered_at is preserved from the stored row.
type UpdateMemberRequest = CreateMemberRequest

type MemberResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	RegisteredAt time.Time `json:"registered_at"`
}

func ToResponse(m Member) MemberResponse {
	return MemberResponse{
		ID:           m.ID,
		Name:         m.Name,
		Surname:      m.Surname,
		Address:      m.Address,
		Phone:        m.Phone,
		RegisteredAt: m.RegisteredAt,
	}
}
