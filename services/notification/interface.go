package notification

import (
	"context"

	"ysgtransport/models"
)

// Kind selects which email a ride gets.
type Kind string

const (
	KindNewRequest  Kind = "new_request"
	KindReminder10h Kind = "reminder_10h"
	KindReminder2h  Kind = "reminder_2h"
)

// Email is a composed message ready for the mailer.
type Email struct {
	Subject  string
	HTMLBody string
}

// Composer builds driver-facing emails from ride records. Implementations
// must be side-effect free; the only non-determinism allowed is the
// generated-at timestamp in the footer.
type Composer interface {
	Compose(ride *models.RideRequest, kind Kind) (Email, error)
}

// Mailer delivers a composed email. One synchronous attempt, no retries;
// callers decide what a failure means.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
