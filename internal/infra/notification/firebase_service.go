package notification

import (
	"context"

	"iloveyou/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

type fcmService struct {
	client *messaging.Client
}

// NewPushService creates the FCM-backed push delivery service.
func NewPushService(ctx context.Context, app *firebase.App) (service.PushService, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get messaging client")
	}

	return &fcmService{client: client}, nil
}

// SendPush delivers one notification to one device token and returns the FCM
// message ID. An unregistered or malformed token is reported as
// service.ErrTokenUnregistered so the caller can clear the stored token.
func (s *fcmService) SendPush(ctx context.Context, token string, message *service.PushMessage) (string, error) {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: message.Title,
			Body:  message.Body,
		},
		Data: message.Data,
		Android: &messaging.AndroidConfig{
			Priority: androidPriority(message.Priority),
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority": apnsPriority(message.Priority),
			},
		},
	}

	if link := message.Data["url"]; link != "" {
		msg.Webpush = &messaging.WebpushConfig{
			FCMOptions: &messaging.WebpushFCMOptions{Link: link},
		}
	}

	messageID, err := s.client.Send(ctx, msg)
	if err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return "", errors.Wrapf(service.ErrTokenUnregistered, "fcm send: %v", err)
		}

		return "", errors.Wrap(err, "fcm send")
	}

	return messageID, nil
}

func androidPriority(priority string) string {
	if priority == "high" {
		return "high"
	}

	return "normal"
}

// apnsPriority maps to APNs numeric priorities: 10 delivers immediately, 5
// respects device power state.
func apnsPriority(priority string) string {
	if priority == "high" {
		return "10"
	}

	return "5"
}
