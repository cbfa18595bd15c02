package rideRepo

import (
	"time"

	"ysgtransport/models"
)

// ReminderFlag names one of the sent-flag fields on a ride document.
type ReminderFlag string

const (
	FlagReminder10h ReminderFlag = "reminder_10h_sent"
	FlagReminder2h  ReminderFlag = "reminder_2h_sent"
)

// RideRepository defines the data access contract for ride requests.
type RideRepository interface {
	Create(ride *models.RideRequest) error
	GetByID(id string) (*models.RideRequest, error)
	UpdateStatus(id string, status models.RideStatus) error

	// MarkNotificationSent flips the initial new-request flag.
	MarkNotificationSent(id string) error

	// MarkReminderSent conditionally flips the given reminder flag. The
	// update matches only while the flag is still false and the ride is not
	// cancelled, so concurrent sweeps collapse to a single winner. Returns
	// false when no document matched (already sent, or cancelled meanwhile).
	MarkReminderSent(id string, flag ReminderFlag) (bool, error)

	// FindUpcoming returns rides whose calendar date is at or after dayFrom,
	// ordered by date then time ascending.
	FindUpcoming(dayFrom time.Time) ([]models.RideRequest, error)

	// FindPast returns rides whose calendar date is at or before dayTo,
	// ordered by date then time descending.
	FindPast(dayTo time.Time) ([]models.RideRequest, error)

	// FindReminderCandidates returns the coarse candidate set for one
	// reminder window: rides dated inside [dayFrom, dayTo], not cancelled,
	// with the given flag still false. Callers must recheck the exact ride
	// instant before sending.
	FindReminderCandidates(flag ReminderFlag, dayFrom, dayTo time.Time) ([]models.RideRequest, error)
}
