// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"beacon/internal/delivery/http/middleware"
	"beacon/internal/delivery/http/router/handler"
	"beacon/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	InboxHandler       *handler.InboxHandler
	RegistryHandler    *handler.RegistryHandler
	PreferencesHandler *handler.PreferencesHandler
	DispatchHandler    *handler.DispatchHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	inboxHandler       *handler.InboxHandler
	registryHandler    *handler.RegistryHandler
	preferencesHandler *handler.PreferencesHandler
	dispatchHandler    *handler.DispatchHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		inboxHandler:       params.InboxHandler,
		registryHandler:    params.RegistryHandler,
		preferencesHandler: params.PreferencesHandler,
		dispatchHandler:    params.DispatchHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Notification routes that require authentication
	apiGroup := e.Group("/api/notifications")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.GET("", r.inboxHandler.ListInbox)
		apiGroup.PATCH("", r.inboxHandler.MarkRead)

		apiGroup.POST("/subscribe", r.registryHandler.Subscribe)
		apiGroup.POST("/unsubscribe", r.registryHandler.Unsubscribe)

		apiGroup.GET("/preferences", r.preferencesHandler.GetPreferences)
		apiGroup.PATCH("/preferences", r.preferencesHandler.UpdatePreferences)
	}

	// Dispatch requires authentication and the "admin" role
	sendGroup := e.Group("/api/notifications/send")
	sendGroup.Use(r.authMiddleware.Authenticate)
	sendGroup.Use(r.authMiddleware.RequireRole(string(entity.RoleAdmin)))
	{
		sendGroup.POST("", r.dispatchHandler.SendNotification)
	}
}
