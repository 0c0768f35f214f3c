package handler

import (
	"log/slog"
	"net/http"

	"iloveyou/internal/delivery/http/middleware"
	"iloveyou/internal/delivery/http/response"
	"iloveyou/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CoupleHandler holds dependencies for couple-related handlers
type CoupleHandler struct {
	uc     usecase.CoupleUsecase
	logger *slog.Logger
}

// NewCoupleHandler is the constructor for CoupleHandler
func NewCoupleHandler(uc usecase.CoupleUsecase, logger *slog.Logger) *CoupleHandler {
	return &CoupleHandler{
		uc:     uc,
		logger: logger,
	}
}

// GenerateInviteQR renders the couple's invite QR code as a PNG image
func (h *CoupleHandler) GenerateInviteQR(c echo.Context) error {
	uid := middleware.CallerUID(c)
	coupleID := c.Param("id")
	if coupleID == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "couple id is required")
	}

	png, err := h.uc.GenerateInviteQR(c.Request().Context(), uid, coupleID)
	if err != nil {
		return handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
