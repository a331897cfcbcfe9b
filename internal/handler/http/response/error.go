package response

import (
	"errors"
	"net/http"

	"github.com/bizdesk/tardiness-backend-go/internal/domain/reportyear"
	"github.com/bizdesk/tardiness-backend-go/internal/domain/tardiness"
	"github.com/bizdesk/tardiness-backend-go/internal/pkg/validator"
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
	// Tardiness domain errors
	case errors.Is(err, tardiness.ErrRecordNotFound):
		NotFound(w, "Lateness record not found")
	case errors.Is(err, tardiness.ErrDuplicateRecord):
		Conflict(w, "A lateness record already exists for this employee and date")
	case errors.Is(err, tardiness.ErrWindowNotLoaded):
		BadRequest(w, "No reporting window loaded for this month and year", nil)

	// Report year registry errors
	case errors.Is(err, reportyear.ErrYearExists):
		Conflict(w, "Reporting year already registered")
	case errors.Is(err, reportyear.ErrYearNotFound):
		NotFound(w, "Reporting year not found")
	case errors.Is(err, reportyear.ErrYearInvalid):
		BadRequest(w, "Reporting year is out of range", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
