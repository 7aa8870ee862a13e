package http

import (
	"net/http"

	"github.com/congrega/attendance-backend/internal/domain/report"
	"github.com/congrega/attendance-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	ByDateRange(w http.ResponseWriter, r *http.Request)
	Individual(w http.ResponseWriter, r *http.Request)
	Collective(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// ByDateRange implements ReportHandler.
func (h *reportHandlerImpl) ByDateRange(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	personType := query.Get("type")
	if personType == "" {
		personType = report.TypeAll
	}

	result, err := h.reportService.ByDateRange(r.Context(), query.Get("start"), query.Get("end"), personType)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Individual implements ReportHandler.
func (h *reportHandlerImpl) Individual(w http.ResponseWriter, r *http.Request) {
	personID := chi.URLParam(r, "id")
	query := r.URL.Query()

	result, err := h.reportService.Individual(r.Context(), personID, query.Get("type"), query.Get("start"), query.Get("end"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Collective implements ReportHandler.
func (h *reportHandlerImpl) Collective(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	result, err := h.reportService.Collective(r.Context(), query.Get("start"), query.Get("end"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
