package reminder

import (
	"context"
	"time"

	rideRepo "ysgtransport/database/repository/ride"
	"ysgtransport/models"
	"ysgtransport/services/notification"

	"go.uber.org/zap"
)

// window pairs a notification kind with its eligibility bounds, expressed in
// hours between "now" and the ride instant.
type window struct {
	kind     notification.Kind
	flag     rideRepo.ReminderFlag
	minHours float64
	maxHours float64
}

// The 11h and 3h upper bounds are disjoint, so one sweep never sends both
// reminders for the same ride.
var windows = []window{
	{kind: notification.KindReminder10h, flag: rideRepo.FlagReminder10h, minHours: 9.5, maxHours: 11},
	{kind: notification.KindReminder2h, flag: rideRepo.FlagReminder2h, minHours: 1.5, maxHours: 3},
}

// sendTimeout bounds one SMTP attempt so a hung connection cannot stall the
// whole sweep.
const sendTimeout = 30 * time.Second

// DefaultEngine implements Engine against the ride store and the mailer.
type DefaultEngine struct {
	Repo        rideRepo.RideRepository
	Composer    notification.Composer
	Mailer      notification.Mailer
	DriverEmail string
	Zone        *time.Location
	Logger      *zap.Logger

	// Now is injectable for tests; nil means time.Now.
	Now func() time.Time
}

func (e *DefaultEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// Run executes one sweep over both reminder windows. Safe to invoke
// repeatedly: already-flagged rides are excluded by the candidate query and
// the conditional flag update absorbs overlapping sweeps.
func (e *DefaultEngine) Run(ctx context.Context) []Outcome {
	now := e.now()
	var outcomes []Outcome
	for _, w := range windows {
		outcomes = append(outcomes, e.sweepWindow(ctx, now, w)...)
	}
	return outcomes
}

// sweepWindow processes one reminder window: coarse date-bounded query, then
// an exact ride-instant check gating every send.
func (e *DefaultEngine) sweepWindow(ctx context.Context, now time.Time, w window) []Outcome {
	windowStart := now.Add(time.Duration(w.minHours * float64(time.Hour)))
	windowEnd := now.Add(time.Duration(w.maxHours * float64(time.Hour)))

	// Widen the date bounds a day on each side so the candidate set is a
	// superset of the window regardless of the zone the dates were stored
	// in. Only the exact instant check below decides eligibility.
	dayFrom := startOfDayUTC(windowStart).AddDate(0, 0, -1)
	dayTo := startOfDayUTC(windowEnd).AddDate(0, 0, 1)

	candidates, err := e.Repo.FindReminderCandidates(w.flag, dayFrom, dayTo)
	if err != nil {
		e.Logger.Error("reminder sweep: candidate query failed",
			zap.String("kind", string(w.kind)), zap.Error(err))
		return nil
	}

	var outcomes []Outcome
	for i := range candidates {
		ride := &candidates[i]
		outcomes = append(outcomes, e.processRide(ctx, now, w, ride))
	}
	return outcomes
}

// processRide handles a single candidate. A failure here never aborts the
// rest of the batch; the unset flag keeps the ride a candidate for the next
// sweep.
func (e *DefaultEngine) processRide(ctx context.Context, now time.Time, w window, ride *models.RideRequest) Outcome {
	instant, err := ride.Instant(e.Zone)
	if err != nil {
		e.Logger.Warn("reminder sweep: unparseable ride time",
			zap.String("rideId", ride.ID), zap.String("time", ride.Time))
		return Outcome{RideID: ride.ID, Kind: w.kind, Result: OutcomeFailed, Reason: err.Error()}
	}

	hoursLeft := instant.Sub(now).Hours()
	if hoursLeft < w.minHours || hoursLeft > w.maxHours {
		return Outcome{RideID: ride.ID, Kind: w.kind, Result: OutcomeSkipped, Reason: "outside window"}
	}

	email, err := e.Composer.Compose(ride, w.kind)
	if err != nil {
		e.Logger.Error("reminder sweep: compose failed",
			zap.String("rideId", ride.ID), zap.Error(err))
		return Outcome{RideID: ride.ID, Kind: w.kind, Result: OutcomeFailed, Reason: err.Error()}
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	err = e.Mailer.Send(sendCtx, e.DriverEmail, email.Subject, email.HTMLBody)
	cancel()
	if err != nil {
		// Flag stays false so the ride remains a candidate next sweep.
		e.Logger.Error("reminder sweep: send failed",
			zap.String("rideId", ride.ID), zap.String("kind", string(w.kind)), zap.Error(err))
		return Outcome{RideID: ride.ID, Kind: w.kind, Result: OutcomeFailed, Reason: err.Error()}
	}

	marked, err := e.Repo.MarkReminderSent(ride.ID, w.flag)
	if err != nil {
		e.Logger.Error("reminder sweep: flag update failed",
			zap.String("rideId", ride.ID), zap.String("kind", string(w.kind)), zap.Error(err))
		return Outcome{RideID: ride.ID, Kind: w.kind, Result: OutcomeFailed, Reason: err.Error()}
	}
	if !marked {
		// A concurrent sweep won the conditional update after our send.
		return Outcome{RideID: ride.ID, Kind: w.kind, Result: OutcomeSkipped, Reason: "already marked"}
	}

	e.Logger.Info("reminder sent",
		zap.String("rideId", ride.ID), zap.String("kind", string(w.kind)), zap.String("time", ride.Time))
	return Outcome{RideID: ride.ID, Kind: w.kind, Result: OutcomeSent}
}

func startOfDayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
