package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/abdhesh369/my-portfolio/database"
	"github.com/abdhesh369/my-portfolio/errs"
	"github.com/abdhesh369/my-portfolio/schema"
)

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *database.SkillRepo
}

func newSkillHandler(skillRepo *database.SkillRepo) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
	}
}

// @Summary Get all skills
// @Tags Skills
// @Produce json
// @Success 200 {array} models.Skill
// @Router /api/skills [get]
func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, skills)
	}
}

// @Summary Get skill
// @Tags Skills
// @Param id path int true "Skill ID"
// @Success 200 {object} models.Skill
// @Router /api/skills/{id} [get]
func (h skillHandler) getSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, err := h.skillRepo.GetByID(r.Context(), skillID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFound("skill", skillID))
			return
		}

		h.responder.WriteJSON(w, skill)
	}
}

// @Summary Create skill
// @Tags Skills
// @Param skill body schema.SkillInsert true "Skill data"
// @Success 201 {object} models.Skill
// @Router /api/skills [post]
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := readBody(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		payload, err := schema.ParseSkillInsert(bodyBytes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, err := h.skillRepo.Create(r.Context(), payload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, skill)
	}
}

// @Summary Update skill
// @Tags Skills
// @Param id path int true "Skill ID"
// @Param skill body schema.SkillPatch true "Fields to change"
// @Success 200 {object} models.Skill
// @Router /api/skills/{id} [put]
func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		bodyBytes, err := readBody(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		patch, err := schema.ParseSkillPatch(bodyBytes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill, err := h.skillRepo.Update(r.Context(), skillID, patch)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, skill)
	}
}

// @Summary Delete skill
// @Tags Skills
// @Param id path int true "Skill ID"
// @Success 204
// @Router /api/skills/{id} [delete]
func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.skillRepo.Delete(r.Context(), skillID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteNoContent(w)
	}
}
