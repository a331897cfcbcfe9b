package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bizdesk/tardiness-backend-go/internal/domain/tardiness"
	"github.com/bizdesk/tardiness-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TardinessHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	UpdateTime(w http.ResponseWriter, r *http.Request)
}

type tardinessHandlerImpl struct {
	tardinessService tardiness.Service
}

func NewTardinessHandler(tardinessService tardiness.Service) TardinessHandler {
	return &tardinessHandlerImpl{
		tardinessService: tardinessService,
	}
}

// List implements TardinessHandler.
func (h *tardinessHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	filter := tardiness.ListFilter{
		Month:  int(now.Month()),
		Year:   now.Year(),
		Search: r.URL.Query().Get("search"),
		Cutoff: r.URL.Query().Get("cutoff"),
	}

	if v := r.URL.Query().Get("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "month must be a number", nil)
			return
		}
		filter.Month = month
	}
	if v := r.URL.Query().Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		filter.Year = year
	}
	filter.Refresh = r.URL.Query().Get("refresh") == "true"

	result, err := h.tardinessService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements TardinessHandler.
func (h *tardinessHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req tardiness.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.tardinessService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Lateness record created", result)
}

// UpdateTime implements TardinessHandler.
func (h *tardinessHandlerImpl) UpdateTime(w http.ResponseWriter, r *http.Request) {
	var req tardiness.UpdateTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode update request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.tardinessService.EditTime(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Arrival time updated", result)
}
