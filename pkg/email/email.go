package email

import "context"

// EmailService sends transactional email. Wiring is optional: when disabled
// the service is nil and callers skip sending.
type EmailService interface {
	SendWelcome(ctx context.Context, to, storeName string) error
}
