package ride

import (
	"context"
	"errors"

	"ysgtransport/models"
)

// ErrValidation marks client errors: required fields missing or malformed.
var ErrValidation = errors.New("invalid ride input")

// ErrNotifySend marks a failed driver email. The ride record already exists
// when this is returned; the caller surfaces it as a server error anyway.
var ErrNotifySend = errors.New("notification send failed")

// RideService is the request-side API: submissions, listings, status changes.
type RideService interface {
	// Create validates and persists a new ride request, then emails the
	// driver. The record is persisted before the email attempt, so it
	// survives a mail failure.
	Create(ctx context.Context, input models.RideInput) (*models.RideRequest, error)

	// ListUpcoming returns rides whose instant is at or after now, ordered
	// by date then time ascending.
	ListUpcoming(ctx context.Context) ([]models.RideRequest, error)

	// ListHistory returns rides whose instant is before now, most recent
	// first.
	ListHistory(ctx context.Context) ([]models.RideRequest, error)

	GetByID(ctx context.Context, id string) (*models.RideRequest, error)

	UpdateStatus(ctx context.Context, id string, status models.RideStatus) error
}
