package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/http/response"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DispatchHandler holds dependencies for push dispatch handlers
type DispatchHandler struct {
	uc     usecase.DispatchUsecase
	logger *slog.Logger
}

// NewDispatchHandler is the constructor for DispatchHandler
func NewDispatchHandler(uc usecase.DispatchUsecase, logger *slog.Logger) *DispatchHandler {
	return &DispatchHandler{
		uc:     uc,
		logger: logger,
	}
}

// SendNotificationRequest represents the request body for dispatching a push.
// Exactly one of UserID, UserIDs or Topic selects the target.
type SendNotificationRequest struct {
	UserID   *uuid.UUID        `json:"userId,omitempty"`
	UserIDs  []uuid.UUID       `json:"userIds,omitempty"`
	Topic    string            `json:"topic,omitempty"`
	Title    string            `json:"title" validate:"required"`
	Body     string            `json:"body" validate:"required"`
	Icon     string            `json:"icon,omitempty"`
	URL      string            `json:"url,omitempty"`
	Category string            `json:"category,omitempty"`
	Data     map[string]string `json:"data,omitempty"`
	Async    bool              `json:"async,omitempty"`
}

// SendNotification handles dispatching a push to members or a broadcast topic
func (h *DispatchHandler) SendNotification(c echo.Context) error {
	var req SendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	dispatchReq := usecase.DispatchRequest{
		UserIDs: req.UserIDs,
		Topic:   req.Topic,
		Message: usecase.DispatchMessage{
			Title:    req.Title,
			Body:     req.Body,
			Icon:     req.Icon,
			URL:      req.URL,
			Category: req.Category,
			Data:     req.Data,
		},
	}
	if req.UserID != nil {
		dispatchReq.UserIDs = append([]uuid.UUID{*req.UserID}, dispatchReq.UserIDs...)
	}

	if req.Async {
		if err := h.uc.Enqueue(c.Request().Context(), &dispatchReq); err != nil {
			return handleAppError(c, err)
		}

		return response.Success(c, http.StatusAccepted, nil, "Notification queued for delivery")
	}

	result, err := h.uc.Dispatch(c.Request().Context(), &dispatchReq)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Notification dispatched")
}
