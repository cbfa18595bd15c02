package models

import (
	"fmt"
	"time"
)

// RideStatus enumerates the lifecycle states of a ride request.
type RideStatus string

const (
	RideStatusPending   RideStatus = "pending"
	RideStatusConfirmed RideStatus = "confirmed"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCancelled RideStatus = "cancelled"
)

// ValidRideStatus reports whether s is one of the known lifecycle states.
func ValidRideStatus(s RideStatus) bool {
	switch s {
	case RideStatusPending, RideStatusConfirmed, RideStatusCompleted, RideStatusCancelled:
		return true
	}
	return false
}

// RideRequest is a transport request submitted for the player.
// Date holds the calendar day only; Time is the wall-clock departure in
// "HH:MM" 24-hour form. The two are recombined via Instant before any
// comparison against the current time.
type RideRequest struct {
	ID          string     `bson:"id" json:"id"`
	Date        time.Time  `bson:"date" json:"date"`
	Time        string     `bson:"time" json:"time"`
	Departure   string     `bson:"departure" json:"departure"`
	Destination string     `bson:"destination" json:"destination"`
	Notes       string     `bson:"notes" json:"notes"`
	PlayerName  string     `bson:"player_name" json:"playerName"`
	Status      RideStatus `bson:"status" json:"status"`

	// Sent-flags. Each flips false->true at most once, and only after the
	// corresponding email was accepted by the SMTP server.
	NotificationSent bool `bson:"notification_sent" json:"notificationSent"`
	Reminder10hSent  bool `bson:"reminder_10h_sent" json:"reminder10hSent"`
	Reminder2hSent   bool `bson:"reminder_2h_sent" json:"reminder2hSent"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ParseClock splits an "HH:MM" string into hour and minute.
func ParseClock(clock string) (hour, minute int, err error) {
	if _, err := fmt.Sscanf(clock, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: %w", clock, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time %q: out of range", clock)
	}
	return hour, minute, nil
}

// Instant combines Date and Time into the ride's absolute departure instant
// in the given location. The calendar day is read in UTC, matching how
// dates are stored.
func (r *RideRequest) Instant(loc *time.Location) (time.Time, error) {
	hour, minute, err := ParseClock(r.Time)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := r.Date.UTC().Date()
	return time.Date(y, m, d, hour, minute, 0, 0, loc), nil
}

// RideInput is the payload accepted by the ride creation endpoint.
type RideInput struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Departure   string `json:"departure"`
	Destination string `json:"destination"`
	Notes       string `json:"notes"`
}
