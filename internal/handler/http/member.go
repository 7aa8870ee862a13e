package http

import (
	"encoding/json"
	"net/http"

	"github.com/congrega/attendance-backend/internal/domain/member"
	"github.com/congrega/attendance-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type MemberHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type memberHandlerImpl struct {
	memberService member.Service
}

func NewMemberHandler(memberService member.Service) MemberHandler {
	return &memberHandlerImpl{memberService: memberService}
}

// Create implements MemberHandler.
func (h *memberHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req member.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.memberService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Member created", result)
}

// List implements MemberHandler.
func (h *memberHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.memberService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Get implements MemberHandler.
func (h *memberHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	result, err := h.memberService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Update implements MemberHandler.
func (h *memberHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req member.UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.memberService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Delete implements MemberHandler.
func (h *memberHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.memberService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Member deleted", nil)
}
