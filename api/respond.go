package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/abdhesh369/my-portfolio/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	r.WriteJSONStatus(w, http.StatusOK, data)
}

// WriteJSONStatus sets the content type before the status line so the header
// is not lost.
func (r Responder) WriteJSONStatus(w http.ResponseWriter, status int, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

func (r Responder) WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var validationErr *errs.ValidationError
	if errors.As(err, &validationErr) {
		r.WriteValidationError(w, validationErr)
		return
	}

	var storageErr *errs.StorageError
	if errors.As(err, &storageErr) && storageErr.Kind == errs.KindNotFound {
		r.WriteJSONStatus(w, http.StatusNotFound, ErrorResponse{
			Error:   http.StatusText(http.StatusNotFound),
			Message: storageErr.Error(),
			Status:  "error",
		})
		return
	}

	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
		r.WriteJSONStatus(w, apiErr.StatusCode, ErrorResponse{
			Error:   http.StatusText(apiErr.StatusCode),
			Message: apiErr.Error(),
			Status:  "error",
			Field:   apiErr.Field,
			Details: apiErr.Details,
		})
		return
	}

	// Storage faults and anything unexpected: log the detail, answer generically
	event := r.logger.Error().Err(err)
	if storageErr != nil {
		event = event.Str("kind", string(storageErr.Kind)).Str("entity", storageErr.Entity)
	}
	if apiErr != nil {
		event = event.Str("fullError", apiErr.GetFullError())
	}
	event.Msg("request failed")

	r.WriteJSONStatus(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "Internal Server Error",
		Message: "An unexpected error occurred",
		Status:  "error",
	})
}

// WriteValidationError writes a standardized validation error response
func (r Responder) WriteValidationError(w http.ResponseWriter, err *errs.ValidationError) {
	messages := make([]string, 0, len(err.Errors))
	for _, fe := range err.Errors {
		messages = append(messages, fe.Field+": "+fe.Message)
	}
	fieldErrors := err.Errors
	if fieldErrors == nil {
		fieldErrors = []errs.FieldError{}
	}

	r.WriteJSONStatus(w, http.StatusBadRequest, ValidationErrorResponse{
		Error:   "Validation error",
		Message: strings.Join(messages, "; "),
		Errors:  fieldErrors,
		Status:  "validation_error",
	})
}

// readBody reads the whole request body, mapping an exceeded body limit to 413.
func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err == nil {
		return body, nil
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return nil, errs.NewMaxBodySizeExceededError(maxErr.Limit)
	}
	return nil, errs.NewMalformedPayloadError("request", err)
}

// parseID reads the {id} path parameter, which must be a positive integer.
func parseID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	if raw == "" || raw[0] < '0' || raw[0] > '9' {
		return 0, errs.InvalidID("id")
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, errs.InvalidID("id")
	}
	return id, nil
}
