package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpmiddleware "beacon/internal/delivery/http/middleware"
	httpvalidator "beacon/internal/delivery/http/validator"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	mockusecase "beacon/internal/mocks/usecase"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInboxContext(t *testing.T, method, target, body string, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = httpvalidator.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)
	c.Set("roles", []string{string(entity.RoleMember)})

	return c, rec
}

func TestInboxHandler_ListInbox(t *testing.T) {
	userID := uuid.New()
	mockUC := mockusecase.NewMockInboxUsecase(t)
	h := NewInboxHandler(mockUC, slog.Default())

	page := &usecase.InboxPage{
		Notifications: []*entity.NotificationRecord{
			{ID: uuid.New(), UserID: userID, Title: "Meeting tonight", Body: "7pm in the lab"},
		},
		UnreadCount: 3,
		Total:       1,
	}
	mockUC.EXPECT().ListInbox(mock.Anything, userID, 5, true).Return(page, nil)

	c, rec := newInboxContext(t, http.MethodGet, "/api/notifications?limit=5&unreadOnly=true", "", userID)

	err := h.ListInbox(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Meeting tonight")
	assert.Contains(t, rec.Body.String(), `"unreadCount":3`)
}

func TestInboxHandler_ListInbox_DefaultsWithoutQuery(t *testing.T) {
	userID := uuid.New()
	mockUC := mockusecase.NewMockInboxUsecase(t)
	h := NewInboxHandler(mockUC, slog.Default())

	mockUC.EXPECT().ListInbox(mock.Anything, userID, 0, false).
		Return(&usecase.InboxPage{Notifications: []*entity.NotificationRecord{}}, nil)

	c, rec := newInboxContext(t, http.MethodGet, "/api/notifications", "", userID)

	err := h.ListInbox(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInboxHandler_MarkRead_ByIDs(t *testing.T) {
	userID := uuid.New()
	id1 := uuid.New()
	id2 := uuid.New()
	mockUC := mockusecase.NewMockInboxUsecase(t)
	h := NewInboxHandler(mockUC, slog.Default())

	mockUC.EXPECT().MarkRead(mock.Anything, userID, []uuid.UUID{id1, id2}).Return(int64(2), nil)

	body := `{"notificationIds":["` + id1.String() + `","` + id2.String() + `"]}`
	c, rec := newInboxContext(t, http.MethodPatch, "/api/notifications", body, userID)

	err := h.MarkRead(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"updated":2`)
}

func TestInboxHandler_MarkRead_All(t *testing.T) {
	userID := uuid.New()
	mockUC := mockusecase.NewMockInboxUsecase(t)
	h := NewInboxHandler(mockUC, slog.Default())

	mockUC.EXPECT().MarkAllRead(mock.Anything, userID).Return(int64(7), nil)

	c, rec := newInboxContext(t, http.MethodPatch, "/api/notifications", `{"markAllAsRead":true}`, userID)

	err := h.MarkRead(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"updated":7`)
}

func TestInboxHandler_MarkRead_MissingSelector(t *testing.T) {
	userID := uuid.New()
	mockUC := mockusecase.NewMockInboxUsecase(t)
	h := NewInboxHandler(mockUC, slog.Default())

	c, rec := newInboxContext(t, http.MethodPatch, "/api/notifications", `{}`, userID)

	err := h.MarkRead(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

// Without an authenticated member on the context the handler must stop
// before reaching the usecase; the mock has no expectations, so any call
// with the zero UUID fails the test.
func TestInboxHandler_ListInbox_MissingUserID(t *testing.T) {
	mockUC := mockusecase.NewMockInboxUsecase(t)
	h := NewInboxHandler(mockUC, slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListInbox(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	httpmiddleware.NewErrorMiddleware(slog.Default()).HandleHTTPError(err, c)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestInboxHandler_MarkRead_MissingUserID(t *testing.T) {
	mockUC := mockusecase.NewMockInboxUsecase(t)
	h := NewInboxHandler(mockUC, slog.Default())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/api/notifications", strings.NewReader(`{"markAllAsRead":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.MarkRead(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
