package http

import (
	"encoding/json"
	"net/http"

	"github.com/congrega/attendance-backend/internal/domain/visitor"
	"github.com/congrega/attendance-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type VisitorHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type visitorHandlerImpl struct {
	visitorService visitor.Service
}

func NewVisitorHandler(visitorService visitor.Service) VisitorHandler {
	return &visitorHandlerImpl{visitorService: visitorService}
}

// Create implements VisitorHandler.
func (h *visitorHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req visitor.CreateVisitorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.visitorService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Visitor created", result)
}

// List implements VisitorHandler.
func (h *visitorHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.visitorService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Get implements VisitorHandler.
func (h *visitorHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	result, err := h.visitorService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Update implements VisitorHandler.
func (h *visitorHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req visitor.UpdateVisitorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.visitorService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Delete implements VisitorHandler.
func (h *visitorHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.visitorService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Visitor deleted", nil)
}
