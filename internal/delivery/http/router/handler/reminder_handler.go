package handler

import (
	"log/slog"
	"net/http"

	"iloveyou/internal/delivery/http/middleware"
	"iloveyou/internal/delivery/http/response"
	"iloveyou/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ReminderHandler holds dependencies for reminder-related handlers
type ReminderHandler struct {
	uc     usecase.ReminderUsecase
	logger *slog.Logger
}

// NewReminderHandler is the constructor for ReminderHandler
func NewReminderHandler(uc usecase.ReminderUsecase, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{
		uc:     uc,
		logger: logger,
	}
}

// CompleteReminder marks a reminder completed on behalf of the caller
func (h *ReminderHandler) CompleteReminder(c echo.Context) error {
	uid := middleware.CallerUID(c)
	reminderID := c.Param("id")
	if reminderID == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "reminder id is required")
	}

	reminder, err := h.uc.CompleteReminder(c.Request().Context(), uid, reminderID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reminder, "Reminder completed successfully")
}

// SendReminderNow dispatches a personal reminder notification on demand
func (h *ReminderHandler) SendReminderNow(c echo.Context) error {
	uid := middleware.CallerUID(c)
	reminderID := c.Param("id")
	if reminderID == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "reminder id is required")
	}

	result, err := h.uc.SendReminderNow(c.Request().Context(), uid, reminderID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDispatchResultPayload(result), "Reminder dispatch processed")
}

// SendCoupleReminderNow dispatches a couple reminder on demand
func (h *ReminderHandler) SendCoupleReminderNow(c echo.Context) error {
	uid := middleware.CallerUID(c)
	reminderID := c.Param("id")
	if reminderID == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "reminder id is required")
	}

	result, err := h.uc.SendCoupleReminderNow(c.Request().Context(), uid, reminderID)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCoupleDispatchResultPayload(result), "Couple reminder dispatch processed")
}
