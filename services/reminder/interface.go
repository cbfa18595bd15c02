package reminder

import (
	"context"

	"ysgtransport/services/notification"
)

// OutcomeResult classifies what happened to one candidate ride during a sweep.
type OutcomeResult string

const (
	OutcomeSent    OutcomeResult = "sent"
	OutcomeSkipped OutcomeResult = "skipped"
	OutcomeFailed  OutcomeResult = "failed"
)

// Outcome is the per-ride result of a sweep. Failures stay in the list
// instead of vanishing into a log line, so callers and tests can assert on
// them.
type Outcome struct {
	RideID string            `json:"rideId"`
	Kind   notification.Kind `json:"kind"`
	Result OutcomeResult     `json:"outcome"`
	Reason string            `json:"reason,omitempty"`
}

// Engine runs one reminder sweep: find rides entering a reminder window,
// email the driver once per window per ride, flag each ride after a
// confirmed send.
type Engine interface {
	Run(ctx context.Context) []Outcome
}
