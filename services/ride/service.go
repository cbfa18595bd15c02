package ride

import (
	"context"
	"fmt"
	"time"

	locationRepo "ysgtransport/database/repository/location"
	rideRepo "ysgtransport/database/repository/ride"
	"ysgtransport/models"
	"ysgtransport/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultPlayerName = "Jordan"

const sendTimeout = 30 * time.Second

// DefaultRideService implements RideService.
type DefaultRideService struct {
	Repo        rideRepo.RideRepository
	Locations   locationRepo.LocationRepository
	Composer    notification.Composer
	Mailer      notification.Mailer
	DriverEmail string
	Zone        *time.Location
	Logger      *zap.Logger

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultRideService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultRideService) Create(ctx context.Context, input models.RideInput) (*models.RideRequest, error) {
	if input.Date == "" || input.Time == "" || input.Departure == "" || input.Destination == "" {
		return nil, fmt.Errorf("%w: date, time, departure and destination are required", ErrValidation)
	}

	// Dates are stored as UTC midnights; the zone only matters when the
	// date is recombined with the HH:MM clock.
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q", ErrValidation, input.Date)
	}
	if _, _, err := models.ParseClock(input.Time); err != nil {
		return nil, fmt.Errorf("%w: bad time %q", ErrValidation, input.Time)
	}

	record := &models.RideRequest{
		ID:          uuid.New().String(),
		Date:        date,
		Time:        input.Time,
		Departure:   input.Departure,
		Destination: input.Destination,
		Notes:       input.Notes,
		PlayerName:  defaultPlayerName,
		Status:      models.RideStatusPending,
	}

	// Persist before the email attempt so the record exists even if the
	// email fails.
	if err := s.Repo.Create(record); err != nil {
		return nil, fmt.Errorf("failed to persist ride: %w", err)
	}

	s.bumpLocationUsage(record)

	email, err := s.Composer.Compose(record, notification.KindNewRequest)
	if err != nil {
		return record, fmt.Errorf("%w: %v", ErrNotifySend, err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	err = s.Mailer.Send(sendCtx, s.DriverEmail, email.Subject, email.HTMLBody)
	cancel()
	if err != nil {
		s.Logger.Error("new-request email failed",
			zap.String("rideId", record.ID), zap.Error(err))
		return record, fmt.Errorf("%w: %v", ErrNotifySend, err)
	}

	if err := s.Repo.MarkNotificationSent(record.ID); err != nil {
		s.Logger.Error("failed to mark notification sent",
			zap.String("rideId", record.ID), zap.Error(err))
		return record, fmt.Errorf("failed to mark notification sent: %w", err)
	}
	record.NotificationSent = true

	s.Logger.Info("ride created",
		zap.String("rideId", record.ID),
		zap.String("date", input.Date), zap.String("time", input.Time))
	return record, nil
}

// bumpLocationUsage feeds the request-form frequency counters. Best effort:
// a counter failure never fails the ride.
func (s *DefaultRideService) bumpLocationUsage(record *models.RideRequest) {
	if s.Locations == nil {
		return
	}
	for _, name := range []string{record.Departure, record.Destination} {
		if err := s.Locations.IncrementFrequency(name); err != nil {
			s.Logger.Warn("failed to bump location frequency",
				zap.String("location", name), zap.Error(err))
		}
	}
}

func (s *DefaultRideService) ListUpcoming(ctx context.Context) ([]models.RideRequest, error) {
	now := s.now()
	candidates, err := s.Repo.FindUpcoming(startOfDayUTC(now).AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}

	// The date query is coarse; keep only rides whose exact instant is
	// still ahead.
	rides := make([]models.RideRequest, 0, len(candidates))
	for _, r := range candidates {
		instant, err := r.Instant(s.Zone)
		if err != nil {
			s.Logger.Warn("skipping ride with unparseable time",
				zap.String("rideId", r.ID), zap.String("time", r.Time))
			continue
		}
		if !instant.Before(now) {
			rides = append(rides, r)
		}
	}
	return rides, nil
}

func (s *DefaultRideService) ListHistory(ctx context.Context) ([]models.RideRequest, error) {
	now := s.now()
	candidates, err := s.Repo.FindPast(startOfDayUTC(now).AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	rides := make([]models.RideRequest, 0, len(candidates))
	for _, r := range candidates {
		instant, err := r.Instant(s.Zone)
		if err != nil {
			continue
		}
		if instant.Before(now) {
			rides = append(rides, r)
		}
	}
	return rides, nil
}

func (s *DefaultRideService) GetByID(ctx context.Context, id string) (*models.RideRequest, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultRideService) UpdateStatus(ctx context.Context, id string, status models.RideStatus) error {
	if !models.ValidRideStatus(status) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	return s.Repo.UpdateStatus(id, status)
}

func startOfDayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
