package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdhesh369/my-portfolio/models"
)

const messageBody = `{"name":" Ada ","email":"Ada@Example.com","subject":"Hi","message":"Nice portfolio"}`

func TestMessageRoutes_CreateEnvelope(t *testing.T) {
	notifier := &recordingNotifier{}
	env := newTestEnv(t, WithNotifier(notifier))

	rec := env.do(t, http.MethodPost, "/api/messages", messageBody)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeJSON[MessageCreatedResponse](t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "Message sent successfully", body.Message)
	assert.Equal(t, "Ada", body.Data.Name)
	assert.Equal(t, "ada@example.com", body.Data.Email)
	assert.False(t, body.Data.CreatedAt.IsZero())

	received := notifier.received()
	require.Len(t, received, 1)
	assert.Equal(t, body.Data.ID, received[0].ID)
}

func TestMessageRoutes_NotifierFailureDoesNotFailRequest(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("smtp down")}
	env := newTestEnv(t, WithNotifier(notifier))

	rec := env.do(t, http.MethodPost, "/api/messages", messageBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, notifier.received(), 1)
}

func TestMessageRoutes_InvalidEmail(t *testing.T) {
	notifier := &recordingNotifier{}
	env := newTestEnv(t, WithNotifier(notifier))

	rec := env.do(t, http.MethodPost, "/api/messages", `{"name":"Ada","email":"not-an-email","message":"hi"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeJSON[ValidationErrorResponse](t, rec)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "email", body.Errors[0].Field)
	assert.Empty(t, notifier.received())
}

func TestMessageRoutes_OverlongMessageRejected(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/messages", `{"name":"Ada","email":"ada@example.com","message":"`+strings.Repeat("x", 5001)+`"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeJSON[ValidationErrorResponse](t, rec)
	assert.Equal(t, "message", body.Errors[0].Field)
}

func TestMessageRoutes_NoUpdate(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/messages", messageBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decodeJSON[MessageCreatedResponse](t, rec).Data.ID
	path := "/api/messages/" + strconv.Itoa(id)

	rec = env.do(t, http.MethodPut, path, `{"message":"edited"}`)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = env.do(t, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Nice portfolio", decodeJSON[models.Message](t, rec).Message)

	rec = env.do(t, http.MethodGet, "/api/messages", "")
	assert.Len(t, decodeJSON[[]models.Message](t, rec), 1)

	rec = env.do(t, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = env.do(t, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
