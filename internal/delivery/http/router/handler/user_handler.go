package handler

import (
	"log/slog"
	"net/http"

	"iloveyou/internal/delivery/http/middleware"
	"iloveyou/internal/delivery/http/response"
	"iloveyou/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for user-related handlers
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// UpdatePushTokenRequest represents the request body for updating the FCM token
type UpdatePushTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// UpdatePushToken stores the caller's current FCM token
func (h *UserHandler) UpdatePushToken(c echo.Context) error {
	uid := middleware.CallerUID(c)

	var req UpdatePushTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push token input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "token is required")
	}

	if err := h.uc.UpdatePushToken(c.Request().Context(), uid, req.Token); err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Push token updated successfully")
}

// SendTestNotification pushes a test notification to the caller's device
func (h *UserHandler) SendTestNotification(c echo.Context) error {
	uid := middleware.CallerUID(c)

	result, err := h.uc.SendTestNotification(c.Request().Context(), uid)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDispatchResultPayload(result), "Test notification processed")
}
