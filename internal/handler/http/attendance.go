package http

import (
	"encoding/json"
	"net/http"

	"github.com/congrega/attendance-backend/internal/domain/attendance"
	"github.com/congrega/attendance-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
	ListByPerson(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// Upsert implements AttendanceHandler. Submitting the same person and
// date twice amends the existing record instead of creating a second.
func (h *attendanceHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListByDate implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	result, err := h.attendanceService.ListByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListByPerson implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListByPerson(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "id")
	personType := r.URL.Query().Get("type")
	result, err := h.attendanceService.ListByPerson(r.Context(), personID, personType)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
