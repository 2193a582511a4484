package interfaces

import "context"

// INotificationPublisher pushes real-time events (e.g. "new order") to the
// staff dashboard channel. Publishing is best-effort: errors are returned so
// the caller can log them, but they must never fail the originating write.

type INotificationPublisher interface {
	Publish(ctx context.Context, channel, event string, payload any) error
}
