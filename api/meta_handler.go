package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	apiName    = "my-portfolio"
	apiVersion = "1.0.0"
)

type metaHandler struct {
	responder   Responder
	logger      zerolog.Logger
	environment string
	startupTime time.Time
	now         func() time.Time
}

func newMetaHandler(environment string, startupTime time.Time) metaHandler {
	logger := log.With().Str("handlerName", "metaHandler").Logger()

	return metaHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		environment: environment,
		startupTime: startupTime,
		now:         time.Now,
	}
}

// @Summary API index
// @Success 200 {object} APIInfo
// @Router /api [get]
func (h metaHandler) getAPIInfo() http.HandlerFunc {
	info := APIInfo{
		Name:    apiName,
		Version: apiVersion,
		Endpoints: []string{
			"GET /api/projects",
			"GET /api/projects/{id}",
			"POST /api/projects",
			"PUT /api/projects/{id}",
			"DELETE /api/projects/{id}",
			"GET /api/skills",
			"GET /api/skills/{id}",
			"POST /api/skills",
			"PUT /api/skills/{id}",
			"DELETE /api/skills/{id}",
			"GET /api/experiences",
			"GET /api/experiences/{id}",
			"POST /api/experiences",
			"PUT /api/experiences/{id}",
			"DELETE /api/experiences/{id}",
			"GET /api/messages",
			"GET /api/messages/{id}",
			"POST /api/messages",
			"DELETE /api/messages/{id}",
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, info)
	}
}

// @Summary Liveness check
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (h metaHandler) getHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := h.now().UTC()
		h.responder.WriteJSON(w, HealthResponse{
			OK:          true,
			Timestamp:   now,
			Environment: h.environment,
			Uptime:      now.Sub(h.startupTime).Round(time.Second).String(),
		})
	}
}

// notFound answers unknown API paths in JSON.
func (h metaHandler) notFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSONStatus(w, http.StatusNotFound, ErrorResponse{
			Error:   http.StatusText(http.StatusNotFound),
			Message: "no route for " + r.Method + " " + r.URL.Path,
			Status:  "error",
		})
	}
}
