package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/http/response"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
)

// RegistryHandler holds dependencies for device-token registry handlers
type RegistryHandler struct {
	uc     usecase.RegistryUsecase
	logger *slog.Logger
}

// NewRegistryHandler is the constructor for RegistryHandler
func NewRegistryHandler(uc usecase.RegistryUsecase, logger *slog.Logger) *RegistryHandler {
	return &RegistryHandler{
		uc:     uc,
		logger: logger,
	}
}

// SubscribeRequest represents the request body for registering a device token
type SubscribeRequest struct {
	Token string `json:"token" validate:"required"`
}

// UnsubscribeRequest represents the request body for removing device tokens.
// An empty token removes every token of the authenticated member.
type UnsubscribeRequest struct {
	Token string `json:"token,omitempty"`
}

// SubscribeResponse acknowledges a registry mutation
type SubscribeResponse struct {
	OK bool `json:"ok"`
}

// Subscribe handles registering a device token for the authenticated member
func (h *RegistryHandler) Subscribe(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscribe input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.uc.Subscribe(c.Request().Context(), userID, req.Token); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SubscribeResponse{OK: true}, "Device token registered successfully")
}

// Unsubscribe handles removing one or all device tokens of the authenticated member
func (h *RegistryHandler) Unsubscribe(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req UnsubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unsubscribe input")
	}

	removed, err := h.uc.Unsubscribe(c.Request().Context(), userID, req.Token)
	if err != nil {
		return handleAppError(c, err)
	}

	h.logger.Debug("Device tokens deactivated",
		slog.String("user_id", userID.String()),
		slog.Int64("removed", removed),
	)

	return response.Success(c, http.StatusOK, SubscribeResponse{OK: true}, "Device token removed successfully")
}
