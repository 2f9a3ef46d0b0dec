package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"beacon/internal/delivery/http/response"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InboxHandler holds dependencies for inbox-related handlers
type InboxHandler struct {
	uc     usecase.InboxUsecase
	logger *slog.Logger
}

// NewInboxHandler is the constructor for InboxHandler
func NewInboxHandler(uc usecase.InboxUsecase, logger *slog.Logger) *InboxHandler {
	return &InboxHandler{
		uc:     uc,
		logger: logger,
	}
}

// MarkReadRequest represents the request body for marking notifications as read
type MarkReadRequest struct {
	NotificationIDs []uuid.UUID `json:"notificationIds,omitempty" validate:"required_without=MarkAllAsRead"`
	MarkAllAsRead   bool        `json:"markAllAsRead,omitempty"`
}

// MarkReadResponse reports how many records were affected
type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}

// ListInbox handles retrieving a member's notification inbox
func (h *InboxHandler) ListInbox(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	limit := 0
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil {
			limit = parsedLimit
		}
	}

	unreadOnly := false
	if unreadStr := c.QueryParam("unreadOnly"); unreadStr != "" {
		unreadOnly, _ = strconv.ParseBool(unreadStr)
	}

	page, err := h.uc.ListInbox(c.Request().Context(), userID, limit, unreadOnly)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page, "Inbox retrieved successfully")
}

// MarkRead handles read-state transitions for one member's notifications
func (h *InboxHandler) MarkRead(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req MarkReadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mark-read input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	var updated int64
	if req.MarkAllAsRead {
		updated, err = h.uc.MarkAllRead(c.Request().Context(), userID)
	} else {
		updated, err = h.uc.MarkRead(c.Request().Context(), userID, req.NotificationIDs)
	}
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MarkReadResponse{Updated: updated}, "Notifications marked as read")
}

// getUserID extracts the authenticated member's ID from the context.
// A missing or mistyped value means the auth middleware never ran; the
// returned error stops the handler and renders as a 401.
func getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return userID, nil
}

// handleAppError handles application errors
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
