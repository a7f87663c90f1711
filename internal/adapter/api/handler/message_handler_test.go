package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starlinkwifi/internal/adapter/api"
	adapterrepo "starlinkwifi/internal/adapter/repository"
	"starlinkwifi/internal/usecase"
	"starlinkwifi/pkg/response"
)

func newMessageHandler(t *testing.T) (*echo.Echo, *MessageHandler, *usecase.MessageUseCase) {
	t.Helper()
	store, err := adapterrepo.NewLocalStore("")
	require.NoError(t, err)

	e := echo.New()
	e.Validator = api.NewValidator()

	uc := usecase.NewMessageUseCase(store, nil, "admin@starlinkwifi.com")
	return e, NewMessageHandler(uc), uc
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var res response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func TestCreateMessageHandler(t *testing.T) {
	e, h, uc := newMessageHandler(t)

	body := `{"name":"Jane","email":"jane@x.com","message":"Looking for weekly bundle"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateMessage(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)

	res := decodeResponse(t, rec)
	assert.True(t, res.Success)

	data, ok := res.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Jane", data["name"])
	assert.Equal(t, "received", data["status"])
	assert.Equal(t, false, data["read"])

	messages, err := uc.ListMessages(req.Context(), false, 0)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestCreateMessageHandlerRejectsBadEmail(t *testing.T) {
	e, h, _ := newMessageHandler(t)

	body := `{"name":"Jane","email":"not-an-email","message":"hi"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateMessage(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	res := decodeResponse(t, rec)
	assert.False(t, res.Success)
	require.NotNil(t, res.Error)
	assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
}

func TestCreateMessageHandlerRejectsMissingFields(t *testing.T) {
	e, h, _ := newMessageHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(`{"email":"jane@x.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateMessage(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	res := decodeResponse(t, rec)
	require.NotNil(t, res.Error)
	assert.Equal(t, "VALIDATION_ERROR", res.Error.Code)
}

func TestToggleReadHandler(t *testing.T) {
	e, h, uc := newMessageHandler(t)

	message, err := uc.CreateMessage(httptest.NewRequest(http.MethodGet, "/", nil).Context(),
		usecase.CreateMessageInput{Name: "Jane", Email: "jane@x.com", Message: "hi"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, "/v1/admin/messages/"+message.ID+"/read", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(message.ID)

	require.NoError(t, h.ToggleRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	res := decodeResponse(t, rec)
	data, ok := res.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["read"])
}

func TestToggleReadHandlerMissingMessage(t *testing.T) {
	e, h, _ := newMessageHandler(t)

	req := httptest.NewRequest(http.MethodPatch, "/v1/admin/messages/ghost/read", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	require.NoError(t, h.ToggleRead(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	res := decodeResponse(t, rec)
	require.NotNil(t, res.Error)
	assert.Equal(t, "NOT_FOUND", res.Error.Code)
}
