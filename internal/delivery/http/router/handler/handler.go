// Package handler implements the callable HTTP endpoints.
package handler

import (
	"net/http"

	"iloveyou/internal/delivery/http/response"
	domainerrors "iloveyou/internal/domain/errors"
	"iloveyou/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// DispatchResultPayload is the JSON shape of a single dispatch outcome.
type DispatchResultPayload struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// CoupleDispatchResultPayload is the JSON shape of a couple dispatch outcome.
type CoupleDispatchResultPayload struct {
	Partner *DispatchResultPayload `json:"partner,omitempty"`
	Creator *DispatchResultPayload `json:"creator,omitempty"`
}

func newDispatchResultPayload(result *usecase.DispatchResult) *DispatchResultPayload {
	if result == nil {
		return nil
	}

	return &DispatchResultPayload{
		Success:   result.Success,
		MessageID: result.MessageID,
		Kind:      string(result.Kind),
		Reason:    result.Reason,
	}
}

func newCoupleDispatchResultPayload(result *usecase.CoupleDispatchResult) *CoupleDispatchResultPayload {
	if result == nil {
		return nil
	}

	return &CoupleDispatchResultPayload{
		Partner: newDispatchResultPayload(result.Partner),
		Creator: newDispatchResultPayload(result.Creator),
	}
}

// handleAppError maps application errors to the unified error response;
// anything else bubbles to the error middleware.
func handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
