// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"iloveyou/internal/delivery/http/middleware"
	"iloveyou/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	ReminderHandler *handler.ReminderHandler
	CoupleHandler   *handler.CoupleHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	reminderHandler *handler.ReminderHandler
	coupleHandler   *handler.CoupleHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		reminderHandler: params.ReminderHandler,
		coupleHandler:   params.CoupleHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.PUT("/me/push-token", r.userHandler.UpdatePushToken)
	}

	// On-demand notification dispatch routes
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.POST("/test", r.userHandler.SendTestNotification)
		notificationGroup.POST("/reminders/:id", r.reminderHandler.SendReminderNow)
		notificationGroup.POST("/couple-reminders/:id", r.reminderHandler.SendCoupleReminderNow)
	}

	// Reminder state routes
	reminderGroup := e.Group("/reminders")
	reminderGroup.Use(r.authMiddleware.Authenticate)
	{
		reminderGroup.POST("/:id/complete", r.reminderHandler.CompleteReminder)
	}

	// Couple routes
	coupleGroup := e.Group("/couples")
	coupleGroup.Use(r.authMiddleware.Authenticate)
	{
		coupleGroup.GET("/:id/invite-qr", r.coupleHandler.GenerateInviteQR)
	}
}
