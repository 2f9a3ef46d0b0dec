// Package service defines interfaces for external collaborators consumed
// by the use case layer.
package service

import "context"

// PushMessage is the provider-independent payload of a single push.
type PushMessage struct {
	Title string            // Notification title.
	Body  string            // Notification body text.
	Icon  string            // Icon path shown by the client.
	URL   string            // Deep link opened on click.
	Data  map[string]string // Opaque key-value payload forwarded to the device.
}

// PushService defines the interface for the external push delivery provider.
type PushService interface {
	// SendToToken delivers the message to a single device token and
	// returns the provider's message id.
	SendToToken(ctx context.Context, token string, msg *PushMessage) (string, error)

	// SendToTopic delivers the message to a provider-side topic in a
	// single call, without resolving individual tokens.
	SendToTopic(ctx context.Context, topic string, msg *PushMessage) (string, error)

	// IsTokenInvalid reports whether a SendToToken error means the
	// token is expired or unregistered and should be deactivated.
	IsTokenInvalid(err error) bool
}
