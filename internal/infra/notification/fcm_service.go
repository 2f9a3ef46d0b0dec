// Package notification implements the push provider on top of Firebase
// Cloud Messaging.
package notification

import (
	"context"
	"fmt"

	"beacon/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type fcmService struct {
	client *messaging.Client
}

// NewFCMService creates a push service backed by Firebase Cloud Messaging.
func NewFCMService(ctx context.Context, credentialsPath string) (service.PushService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &fcmService{
		client: client,
	}, nil
}

// SendToToken delivers a single web push to one device token and returns
// the provider message ID.
func (s *fcmService) SendToToken(ctx context.Context, token string, msg *service.PushMessage) (string, error) {
	id, err := s.client.Send(ctx, buildMessage(msg, &messaging.Message{Token: token}))
	if err != nil {
		return "", fmt.Errorf("failed to send notification: %w", err)
	}

	return id, nil
}

// SendToTopic delivers a web push to every subscriber of a topic.
func (s *fcmService) SendToTopic(ctx context.Context, topic string, msg *service.PushMessage) (string, error) {
	id, err := s.client.Send(ctx, buildMessage(msg, &messaging.Message{Topic: topic}))
	if err != nil {
		return "", fmt.Errorf("failed to send topic notification: %w", err)
	}

	return id, nil
}

// IsTokenInvalid reports whether a send error indicates the token itself
// is dead and should be deactivated rather than retried.
func (s *fcmService) IsTokenInvalid(err error) bool {
	return messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err)
}

func buildMessage(msg *service.PushMessage, out *messaging.Message) *messaging.Message {
	data := make(map[string]string, len(msg.Data)+1)
	for k, v := range msg.Data {
		data[k] = v
	}
	// The click target rides in the data payload so the service worker
	// can route the click without a server round trip.
	data["url"] = msg.URL

	out.Notification = &messaging.Notification{
		Title: msg.Title,
		Body:  msg.Body,
	}
	out.Data = data
	out.Webpush = &messaging.WebpushConfig{
		Notification: &messaging.WebpushNotification{
			Title: msg.Title,
			Body:  msg.Body,
			Icon:  msg.Icon,
		},
	}

	return out
}
