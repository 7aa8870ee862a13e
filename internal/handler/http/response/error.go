package response

import (
	"errors"
	"net/http"

	"github.com/congrega/attendance-backend/internal/domain/attendance"
	"github.com/congrega/attendance-backend/internal/domain/auth"
	"github.com/congrega/attendance-backend/internal/domain/member"
	"github.com/congrega/attendance-backend/internal/domain/report"
	"github.com/congrega/attendance-backend/internal/domain/visitor"
	"github.com/congrega/attendance-backend/internal/pkg/validator"
	"github.com/congrega/attendance-backend/internal/repository/sheets"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrUsernameTaken):
		Conflict(w, "Username already registered")

	// Row store errors
	case errors.Is(err, sheets.ErrStoreUnavailable):
		ServiceUnavailable(w, "Row store unavailable")
	case errors.Is(err, sheets.ErrPositionInvalid):
		Conflict(w, "Row changed during update, please retry")

	// Domain errors
	case errors.Is(err, member.ErrMemberNotFound):
		NotFound(w, "Member not found")
	case errors.Is(err, visitor.ErrVisitorNotFound):
		NotFound(w, "Visitor not found")
	case errors.Is(err, attendance.ErrInvalidPersonType):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
