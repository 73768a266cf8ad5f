package domain

import "context"

// Notifier can deliver a short text message to a phone number. Delivery is
// best effort: callers log failures rather than surfacing them.
type Notifier interface {
	Notify(ctx context.Context, phoneNumber, message string) error
}
