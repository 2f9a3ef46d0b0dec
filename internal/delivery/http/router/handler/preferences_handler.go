package handler

import (
	"log/slog"
	"net/http"

	"beacon/internal/delivery/http/response"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PreferencesHandler holds dependencies for notification preference handlers
type PreferencesHandler struct {
	uc     usecase.PreferencesUsecase
	logger *slog.Logger
}

// NewPreferencesHandler is the constructor for PreferencesHandler
func NewPreferencesHandler(uc usecase.PreferencesUsecase, logger *slog.Logger) *PreferencesHandler {
	return &PreferencesHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetPreferences handles retrieving the authenticated member's notification preferences
func (h *PreferencesHandler) GetPreferences(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	prefs, err := h.uc.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs, "Preferences retrieved successfully")
}

// UpdatePreferences handles a partial update of notification preferences.
// Keys absent from the body keep their current value.
func (h *PreferencesHandler) UpdatePreferences(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var patch usecase.PreferencesPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preferences input")
	}

	prefs, err := h.uc.UpdatePreferences(c.Request().Context(), userID, patch)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, prefs, "Preferences updated successfully")
}
