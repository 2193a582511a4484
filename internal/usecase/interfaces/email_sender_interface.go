package interfaces

import "context"

// IEmailSender delivers transactional mail (order confirmations, staff
// alerts). Best-effort: failures are logged by the caller, never propagated
// into the reservation write.

type IEmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
