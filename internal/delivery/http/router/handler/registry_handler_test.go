package handler

import (
	"log/slog"
	"net/http"
	"testing"

	domainerrors "beacon/internal/domain/errors"
	mockusecase "beacon/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRegistryHandler_Subscribe(t *testing.T) {
	userID := uuid.New()
	mockUC := mockusecase.NewMockRegistryUsecase(t)
	h := NewRegistryHandler(mockUC, slog.Default())

	mockUC.EXPECT().Subscribe(mock.Anything, userID, "fcm-token-abc").Return(nil)

	c, rec := newInboxContext(t, http.MethodPost, "/api/notifications/subscribe", `{"token":"fcm-token-abc"}`, userID)

	err := h.Subscribe(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
}

func TestRegistryHandler_Subscribe_MissingToken(t *testing.T) {
	userID := uuid.New()
	mockUC := mockusecase.NewMockRegistryUsecase(t)
	h := NewRegistryHandler(mockUC, slog.Default())

	c, rec := newInboxContext(t, http.MethodPost, "/api/notifications/subscribe", `{}`, userID)

	err := h.Subscribe(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestRegistryHandler_Subscribe_UnknownMember(t *testing.T) {
	userID := uuid.New()
	mockUC := mockusecase.NewMockRegistryUsecase(t)
	h := NewRegistryHandler(mockUC, slog.Default())

	mockUC.EXPECT().Subscribe(mock.Anything, userID, "fcm-token-abc").
		Return(domainerrors.ErrMemberNotFound)

	c, rec := newInboxContext(t, http.MethodPost, "/api/notifications/subscribe", `{"token":"fcm-token-abc"}`, userID)

	err := h.Subscribe(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "MEMBER_NOT_FOUND")
}

func TestRegistryHandler_Unsubscribe_AllTokens(t *testing.T) {
	userID := uuid.New()
	mockUC := mockusecase.NewMockRegistryUsecase(t)
	h := NewRegistryHandler(mockUC, slog.Default())

	mockUC.EXPECT().Unsubscribe(mock.Anything, userID, "").Return(int64(3), nil)

	c, rec := newInboxContext(t, http.MethodPost, "/api/notifications/unsubscribe", `{}`, userID)

	err := h.Unsubscribe(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
}
