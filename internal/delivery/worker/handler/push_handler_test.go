package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"beacon/config"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/service"
	mockusecase "beacon/internal/mocks/usecase"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPushHandler(t *testing.T) (*PushHandler, *mockusecase.MockDispatchUsecase) {
	t.Helper()

	mockUC := mockusecase.NewMockDispatchUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:      &config.Config{},
		Logger:      slog.Default(),
		DispatchSvc: mockUC,
	})

	return h, mockUC
}

func pushRequest(t *testing.T, event *service.DispatchEvent, attributes map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	payload, err := json.Marshal(event)
	assert.NoError(t, err)

	envelope := PubSubMessage{}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(payload)
	envelope.Message.Attributes = attributes
	envelope.Message.MessageID = uuid.NewString()
	envelope.Subscription = "projects/test/subscriptions/dispatch"

	body, err := json.Marshal(envelope)
	assert.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_HandlePush(t *testing.T) {
	h, mockUC := newPushHandler(t)

	target := uuid.New()
	event := &service.DispatchEvent{
		RequestID: "req-123",
		UserIDs:   []string{target.String()},
		Title:     "Project approved",
		Body:      "Your robotics project was approved",
		Category:  "projects",
	}

	mockUC.EXPECT().Dispatch(mock.Anything, mock.AnythingOfType("*usecase.DispatchRequest")).
		RunAndReturn(func(_ context.Context, req *usecase.DispatchRequest) (*usecase.DispatchResult, error) {
			assert.Equal(t, []uuid.UUID{target}, req.UserIDs)
			assert.Equal(t, "Project approved", req.Message.Title)
			assert.Equal(t, "projects", req.Message.Category)

			return &usecase.DispatchResult{Success: 1}, nil
		})

	c, rec := pushRequest(t, event, nil)

	err := h.HandlePush(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_StoreOutageIsRetried(t *testing.T) {
	h, mockUC := newPushHandler(t)

	event := &service.DispatchEvent{
		UserIDs: []string{uuid.NewString()},
		Title:   "Hello",
		Body:    "World",
	}

	mockUC.EXPECT().Dispatch(mock.Anything, mock.AnythingOfType("*usecase.DispatchRequest")).
		Return(nil, domainerrors.ErrStoreUnavailable)

	c, rec := pushRequest(t, event, nil)

	err := h.HandlePush(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_ValidationFailureIsSwallowed(t *testing.T) {
	h, mockUC := newPushHandler(t)

	// Missing title makes the event permanently invalid; retrying would
	// never succeed, so the handler acks the message.
	event := &service.DispatchEvent{
		UserIDs: []string{uuid.NewString()},
	}

	mockUC.EXPECT().Dispatch(mock.Anything, mock.AnythingOfType("*usecase.DispatchRequest")).
		Return(nil, domainerrors.ErrDispatchValidation)

	c, rec := pushRequest(t, event, nil)

	err := h.HandlePush(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_NoRecipients(t *testing.T) {
	h, _ := newPushHandler(t)

	// Malformed ids are dropped; with nothing left the message is acked
	// without touching the dispatch service.
	event := &service.DispatchEvent{
		UserIDs: []string{"not-a-uuid"},
		Title:   "Hello",
		Body:    "World",
	}

	c, rec := pushRequest(t, event, nil)

	err := h.HandlePush(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_BadPayload(t *testing.T) {
	h, _ := newPushHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"%%%not-base64%%%"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.HandlePush(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
