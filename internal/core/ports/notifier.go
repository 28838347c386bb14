package ports

import "context"

// Notifier delivers a short out-of-band message to an email address.
// Delivery is best-effort: callers treat failures as non-fatal.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}
