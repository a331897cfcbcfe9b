package http

import (
	"net/http"
	"strconv"

	"github.com/bizdesk/tardiness-backend-go/internal/domain/reportyear"
	"github.com/bizdesk/tardiness-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportYearHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Add(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
}

type reportYearHandlerImpl struct {
	reportYearService reportyear.Service
}

func NewReportYearHandler(reportYearService reportyear.Service) ReportYearHandler {
	return &reportYearHandlerImpl{
		reportYearService: reportYearService,
	}
}

// List implements ReportYearHandler.
func (h *reportYearHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	years, err := h.reportYearService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, years)
}

// Add implements ReportYearHandler.
func (h *reportYearHandlerImpl) Add(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	if err := h.reportYearService.Add(r.Context(), year); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Reporting year registered", year)
}

// Remove implements ReportYearHandler.
func (h *reportYearHandlerImpl) Remove(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	if err := h.reportYearService.Remove(r.Context(), year); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Reporting year removed", year)
}
