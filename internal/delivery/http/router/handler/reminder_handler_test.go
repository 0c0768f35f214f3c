package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"iloveyou/internal/delivery/http/middleware"
	"iloveyou/internal/delivery/http/response"
	"iloveyou/internal/domain/entity"
	domainerrors "iloveyou/internal/domain/errors"
	mocksusecase "iloveyou/internal/mocks/usecase"
	"iloveyou/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReminderHandler(t *testing.T) (*ReminderHandler, *mocksusecase.MockReminderUsecase) {
	t.Helper()

	uc := mocksusecase.NewMockReminderUsecase(t)
	h := NewReminderHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return h, uc
}

func authedRequest(t *testing.T, method, target, uid, paramID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUID, uid)
	if paramID != "" {
		c.SetParamNames("id")
		c.SetParamValues(paramID)
	}

	return c, rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestReminderHandler_CompleteReminder_Success(t *testing.T) {
	h, uc := createTestReminderHandler(t)

	uc.EXPECT().
		CompleteReminder(mock.Anything, "user-1", "rem-1").
		Return(&entity.Reminder{ID: "rem-1", Completed: true}, nil).
		Once()

	c, rec := authedRequest(t, http.MethodPost, "/reminders/rem-1/complete", "user-1", "rem-1")

	require.NoError(t, h.CompleteReminder(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestReminderHandler_CompleteReminder_PermissionDenied(t *testing.T) {
	h, uc := createTestReminderHandler(t)

	uc.EXPECT().
		CompleteReminder(mock.Anything, "stranger", "rem-1").
		Return(nil, domainerrors.ErrPermissionDenied).
		Once()

	c, rec := authedRequest(t, http.MethodPost, "/reminders/rem-1/complete", "stranger", "rem-1")

	require.NoError(t, h.CompleteReminder(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "permission-denied", resp.Error.Code)
}

func TestReminderHandler_CompleteReminder_MissingID(t *testing.T) {
	h, _ := createTestReminderHandler(t)

	c, rec := authedRequest(t, http.MethodPost, "/reminders//complete", "user-1", "")

	require.NoError(t, h.CompleteReminder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReminderHandler_SendReminderNow_ReturnsOutcome(t *testing.T) {
	h, uc := createTestReminderHandler(t)

	uc.EXPECT().
		SendReminderNow(mock.Anything, "user-1", "rem-1").
		Return(usecase.Skipped(usecase.KindPrecondition, "Quiet hours active"), nil).
		Once()

	c, rec := authedRequest(t, http.MethodPost, "/notifications/reminders/rem-1", "user-1", "rem-1")

	require.NoError(t, h.SendReminderNow(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var payload DispatchResultPayload
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.False(t, payload.Success)
	assert.Equal(t, string(usecase.KindPrecondition), payload.Kind)
	assert.Equal(t, "Quiet hours active", payload.Reason)
}

func TestReminderHandler_SendCoupleReminderNow_RejectsPersonal(t *testing.T) {
	h, uc := createTestReminderHandler(t)

	uc.EXPECT().
		SendCoupleReminderNow(mock.Anything, "user-1", "rem-1").
		Return(nil, domainerrors.ErrInvalidArgument.WithDetails("reminder is not a couple reminder")).
		Once()

	c, rec := authedRequest(t, http.MethodPost, "/notifications/couple-reminders/rem-1", "user-1", "rem-1")

	require.NoError(t, h.SendCoupleReminderNow(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "invalid-argument", resp.Error.Code)
}

func TestReminderHandler_SendCoupleReminderNow_BothOutcomes(t *testing.T) {
	h, uc := createTestReminderHandler(t)

	uc.EXPECT().
		SendCoupleReminderNow(mock.Anything, "user-1", "rem-1").
		Return(&usecase.CoupleDispatchResult{
			Partner: usecase.Sent("msg-p"),
			Creator: usecase.Skipped(usecase.KindPrecondition, "No token"),
		}, nil).
		Once()

	c, rec := authedRequest(t, http.MethodPost, "/notifications/couple-reminders/rem-1", "user-1", "rem-1")

	require.NoError(t, h.SendCoupleReminderNow(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var payload CoupleDispatchResultPayload
	require.NoError(t, json.Unmarshal(data, &payload))
	require.NotNil(t, payload.Partner)
	require.NotNil(t, payload.Creator)
	assert.True(t, payload.Partner.Success)
	assert.Equal(t, "msg-p", payload.Partner.MessageID)
	assert.False(t, payload.Creator.Success)
}
