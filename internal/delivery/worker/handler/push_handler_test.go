package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"iloveyou/config"
	"iloveyou/internal/domain/constants"
	"iloveyou/internal/domain/entity"
	"iloveyou/internal/domain/service"
	mocksusecase "iloveyou/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushHandler(t *testing.T) (*PushHandler, *mocksusecase.MockReminderUsecase) {
	t.Helper()

	reminderUC := mocksusecase.NewMockReminderUsecase(t)

	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop
	cfg.PubSub = &config.PubSubConfig{Provider: constants.PubSubProviderLocal}

	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		ReminderUC: reminderUC,
	})

	return h, reminderUC
}

func pushRequest(t *testing.T, event *service.ReminderEvent, attributes map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var body bytes.Buffer
	msg := PubSubMessage{Subscription: "projects/test/subscriptions/reminder-events-sub"}
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	require.NoError(t, json.NewEncoder(&body).Encode(&msg))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_HandlePush_SpawnsNextOccurrence(t *testing.T) {
	h, reminderUC := createTestPushHandler(t)

	next := &entity.Reminder{
		ID:      "rem-next",
		Title:   "Uống thuốc",
		DueDate: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
	}
	reminderUC.EXPECT().
		SpawnNextOccurrence(mock.Anything, "rem-1").
		Return(next, nil).
		Once()

	c, rec := pushRequest(t, &service.ReminderEvent{
		Type:       service.EventReminderCompleted,
		ReminderID: "rem-1",
	}, map[string]string{"request_id": "req-123"})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_NothingToSpawn(t *testing.T) {
	h, reminderUC := createTestPushHandler(t)

	// Non-recurring or already spawned: the usecase returns nil without error.
	reminderUC.EXPECT().
		SpawnNextOccurrence(mock.Anything, "rem-1").
		Return(nil, nil).
		Once()

	c, rec := pushRequest(t, &service.ReminderEvent{
		Type:       service.EventReminderCompleted,
		ReminderID: "rem-1",
	}, nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_StoreFailureTriggersRetry(t *testing.T) {
	h, reminderUC := createTestPushHandler(t)

	reminderUC.EXPECT().
		SpawnNextOccurrence(mock.Anything, "rem-1").
		Return(nil, errors.New("firestore unavailable")).
		Once()

	c, rec := pushRequest(t, &service.ReminderEvent{
		Type:       service.EventReminderCompleted,
		ReminderID: "rem-1",
	}, nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_HandlePush_UnknownEventTypeConsumed(t *testing.T) {
	h, _ := createTestPushHandler(t)

	c, rec := pushRequest(t, &service.ReminderEvent{
		Type:       "reminder.snoozed",
		ReminderID: "rem-1",
	}, nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_MissingReminderIDConsumed(t *testing.T) {
	h, _ := createTestPushHandler(t)

	c, rec := pushRequest(t, &service.ReminderEvent{
		Type: service.EventReminderCompleted,
	}, nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_BadBase64Rejected(t *testing.T) {
	h, _ := createTestPushHandler(t)

	var body bytes.Buffer
	msg := PubSubMessage{}
	msg.Message.Data = "not-base64!!!"
	require.NoError(t, json.NewEncoder(&body).Encode(&msg))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_ExtractRequestID_PrefersAttributes(t *testing.T) {
	h, _ := createTestPushHandler(t)

	var msg PubSubMessage
	msg.Message.Attributes = map[string]string{"request_id": "attr-id"}
	event := &service.ReminderEvent{RequestID: "event-id"}

	got := h.extractRequestID(context.Background(), &msg, event)
	assert.Equal(t, "attr-id", got)
}

func TestPushHandler_ExtractRequestID_FallsBackToEvent(t *testing.T) {
	h, _ := createTestPushHandler(t)

	var msg PubSubMessage
	event := &service.ReminderEvent{RequestID: "event-id"}

	got := h.extractRequestID(context.Background(), &msg, event)
	assert.Equal(t, "event-id", got)
}
