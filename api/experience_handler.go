package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/abdhesh369/my-portfolio/database"
	"github.com/abdhesh369/my-portfolio/errs"
	"github.com/abdhesh369/my-portfolio/schema"
)

type experienceHandler struct {
	responder Responder
	logger    zerolog.Logger
	experienceRepo *database.ExperienceRepo
}

func newExperienceHandler(experienceRepo *database.ExperienceRepo) experienceHandler {
	logger := log.With().Str("handlerName", "experienceHandler").Logger()

	return experienceHandler{
		responder: NewResponder(logger),
		logger:    logger,
		experienceRepo: experienceRepo,
	}
}

// @Summary Get all experiences
// @Tags Experiences
// @Produce json
// @Success 200 {array} models.Experience
// @Router /api/experiences [get]
func (h experienceHandler) getAllExperiences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experiences, err := h.experienceRepo.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, experiences)
	}
}

// @Summary Get experience
// @Tags Experiences
// @Param id path int true "Experience ID"
// @Success 200 {object} models.Experience
// @Router /api/experiences/{id} [get]
func (h experienceHandler) getExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		experience, err := h.experienceRepo.GetByID(r.Context(), experienceID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if experience == nil {
			h.responder.WriteError(w, errs.NewNotFound("experience", experienceID))
			return
		}

		h.responder.WriteJSON(w, experience)
	}
}

// @Summary Create experience
// @Tags Experiences
// @Param experience body schema.ExperienceInsert true "Experience data"
// @Success 201 {object} models.Experience
// @Router /api/experiences [post]
func (h experienceHandler) createExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := readBody(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		payload, err := schema.ParseExperienceInsert(bodyBytes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		experience, err := h.experienceRepo.Create(r.Context(), payload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, experience)
	}
}

// @Summary Update experience
// @Tags Experiences
// @Param id path int true "Experience ID"
// @Param experience body schema.ExperiencePatch true "Fields to change"
// @Success 200 {object} models.Experience
// @Router /api/experiences/{id} [put]
func (h experienceHandler) updateExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		bodyBytes, err := readBody(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		patch, err := schema.ParseExperiencePatch(bodyBytes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		experience, err := h.experienceRepo.Update(r.Context(), experienceID, patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, experience)
	}
}

// @Summary Delete experience
// @Tags Experiences
// @Param id path int true "Experience ID"
// @Success 204
// @Router /api/experiences/{id} [delete]
func (h experienceHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.experienceRepo.Delete(r.Context(), experienceID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteNoContent(w)
	}
}
