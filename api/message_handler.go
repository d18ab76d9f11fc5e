package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/abdhesh369/my-portfolio/database"
	"github.com/abdhesh369/my-portfolio/errs"
	"github.com/abdhesh369/my-portfolio/models"
	"github.com/abdhesh369/my-portfolio/schema"
)

const notifyTimeout = 10 * time.Second

// ContactNotifier is told about every stored contact message.
type ContactNotifier interface {
	NotifyContactMessage(ctx context.Context, message models.Message) error
}

type messageHandler struct {
	responder   Responder
	logger      zerolog.Logger
	messageRepo *database.MessageRepo
	notifier    ContactNotifier
}

func newMessageHandler(messageRepo *database.MessageRepo, notifier ContactNotifier) messageHandler {
	logger := log.With().Str("handlerName", "messageHandler").Logger()

	return messageHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		messageRepo: messageRepo,
		notifier:    notifier,
	}
}

// @Summary Get all contact messages
// @Tags Messages
// @Success 200 {array} models.Message
// @Router /api/messages [get]
func (h messageHandler) getAllMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.messageRepo.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, messages)
	}
}

// @Summary Get contact message
// @Tags Messages
// @Param id path int true "Message ID"
// @Success 200 {object} models.Message
// @Router /api/messages/{id} [get]
func (h messageHandler) getMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message, err := h.messageRepo.GetByID(r.Context(), messageID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if message == nil {
			h.responder.WriteError(w, errs.NewNotFound("message", messageID))
			return
		}

		h.responder.WriteJSON(w, message)
	}
}

// createMessage stores a contact-form submission
// @Summary Send contact message
// @Tags Messages
// @Accept json
// @Produce json
// @Param message body schema.MessageInsert true "Contact form"
// @Success 201 {object} MessageCreatedResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/messages [post]
func (h messageHandler) createMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := readBody(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		payload, err := schema.ParseMessageInsert(bodyBytes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message, err := h.messageRepo.Create(r.Context(), payload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.logger.Info().Int("messageID", message.ID).Msg("contact message stored")
		h.notify(r.Context(), *message)

		h.responder.WriteJSONStatus(w, http.StatusCreated, MessageCreatedResponse{
			Success: true,
			Message: "Message sent successfully",
			Data:    *message,
		})
	}
}

// notify never fails the request; the message is already stored.
func (h messageHandler) notify(ctx context.Context, message models.Message) {
	if h.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if err := h.notifier.NotifyContactMessage(ctx, message); err != nil {
		h.logger.Warn().Err(err).Int("messageID", message.ID).Msg("contact notification failed")
	}
}

// @Summary Delete contact message
// @Tags Messages
// @Param id path int true "Message ID"
// @Success 204
// @Router /api/messages/{id} [delete]
func (h messageHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.messageRepo.Delete(r.Context(), messageID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteNoContent(w)
	}
}
