package api

import (
	"time"

	"github.com/abdhesh369/my-portfolio/errs"
	"github.com/abdhesh369/my-portfolio/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler    projectHandler
	skillHandler      skillHandler
	experienceHandler experienceHandler
	messageHandler    messageHandler
	metaHandler       metaHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Not Found"`
	Message string `json:"message" example:"project 4 not found"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"id"`
	Details string `json:"details,omitempty" example:"must be a positive integer"`
}

// ValidationErrorResponse lists every rejected field of a request body.
type ValidationErrorResponse struct {
	Error   string            `json:"error" example:"Validation error"`
	Message string            `json:"message" example:"email: must be a valid email address"`
	Errors  []errs.FieldError `json:"errors"`
	Status  string            `json:"status" example:"validation_error"`
}

// MessageCreatedResponse acknowledges a contact-form submission.
type MessageCreatedResponse struct {
	Success bool           `json:"success" example:"true"`
	Message string         `json:"message" example:"Message sent successfully"`
	Data    models.Message `json:"data"`
}

// APIInfo is served at GET /api.
type APIInfo struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// HealthResponse is served at GET /healthz.
type HealthResponse struct {
	OK          bool      `json:"ok"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
	Uptime      string    `json:"uptime"`
}
