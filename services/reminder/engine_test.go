package reminder

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	rideRepo "ysgtransport/database/repository/ride"
	"ysgtransport/models"
	"ysgtransport/services/notification"

	"go.uber.org/zap"
)

// ──────────────────────────────────────────────
// MOCK RIDE REPOSITORY
// ──────────────────────────────────────────────

type mockRideRepo struct {
	mu    sync.Mutex
	rides map[string]*models.RideRequest

	// Error injection
	FindErr error
	MarkErr error

	MarkReminderCalls int
}

func newMockRideRepo() *mockRideRepo {
	return &mockRideRepo{rides: make(map[string]*models.RideRequest)}
}

func (m *mockRideRepo) add(r *models.RideRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *r
	m.rides[r.ID] = &copy
}

func (m *mockRideRepo) get(id string) *models.RideRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rides[id]
}

func flagSet(r *models.RideRequest, flag rideRepo.ReminderFlag) bool {
	if flag == rideRepo.FlagReminder10h {
		return r.Reminder10hSent
	}
	return r.Reminder2hSent
}

func (m *mockRideRepo) Create(r *models.RideRequest) error {
	m.add(r)
	return nil
}

func (m *mockRideRepo) GetByID(id string) (*models.RideRequest, error) {
	if r := m.get(id); r != nil {
		copy := *r
		return &copy, nil
	}
	return nil, errors.New("not found")
}

func (m *mockRideRepo) UpdateStatus(id string, status models.RideStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rides[id]
	if !ok {
		return errors.New("not found")
	}
	r.Status = status
	return nil
}

func (m *mockRideRepo) MarkNotificationSent(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rides[id]
	if !ok {
		return errors.New("not found")
	}
	r.NotificationSent = true
	return nil
}

func (m *mockRideRepo) MarkReminderSent(id string, flag rideRepo.ReminderFlag) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MarkReminderCalls++
	if m.MarkErr != nil {
		return false, m.MarkErr
	}
	r, ok := m.rides[id]
	if !ok || flagSet(r, flag) || r.Status == models.RideStatusCancelled {
		return false, nil
	}
	if flag == rideRepo.FlagReminder10h {
		r.Reminder10hSent = true
	} else {
		r.Reminder2hSent = true
	}
	return true, nil
}

func (m *mockRideRepo) FindUpcoming(dayFrom time.Time) ([]models.RideRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.RideRequest
	for _, r := range m.rides {
		if !r.Date.Before(dayFrom) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockRideRepo) FindPast(dayTo time.Time) ([]models.RideRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.RideRequest
	for _, r := range m.rides {
		if !r.Date.After(dayTo) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *mockRideRepo) FindReminderCandidates(flag rideRepo.ReminderFlag, dayFrom, dayTo time.Time) ([]models.RideRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FindErr != nil {
		return nil, m.FindErr
	}
	var out []models.RideRequest
	for _, r := range m.rides {
		if r.Date.Before(dayFrom) || r.Date.After(dayTo) {
			continue
		}
		if flagSet(r, flag) || r.Status == models.RideStatusCancelled {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

// ──────────────────────────────────────────────
// MOCK MAILER
// ──────────────────────────────────────────────

type mockMailer struct {
	mu       sync.Mutex
	Subjects []string

	// FailIf injects a send error for matching subjects.
	FailIf func(subject string) bool
}

func (m *mockMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.FailIf != nil && m.FailIf(subject) {
		return errors.New("smtp unavailable")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Subjects = append(m.Subjects, subject)
	return nil
}

func (m *mockMailer) sendCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Subjects)
}

// ──────────────────────────────────────────────
// FIXTURES
// ──────────────────────────────────────────────

var testNow = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

func newTestEngine(repo *mockRideRepo, mailer *mockMailer) *DefaultEngine {
	return &DefaultEngine{
		Repo: repo,
		Composer: &notification.DefaultComposer{
			Zone: time.UTC,
			Now:  func() time.Time { return testNow },
		},
		Mailer:      mailer,
		DriverEmail: "driver@example.com",
		Zone:        time.UTC,
		Logger:      zap.NewNop(),
		Now:         func() time.Time { return testNow },
	}
}

// rideAt returns a pending ride on the test day departing at the given clock.
func rideAt(id, clock string) *models.RideRequest {
	return &models.RideRequest{
		ID:          id,
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Time:        clock,
		Departure:   "Campus PSG",
		Destination: "Domicile",
		Status:      models.RideStatusPending,
	}
}

func outcomesFor(outcomes []Outcome, id string, kind notification.Kind) []Outcome {
	var out []Outcome
	for _, o := range outcomes {
		if o.RideID == id && o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}

func countResult(outcomes []Outcome, result OutcomeResult) int {
	n := 0
	for _, o := range outcomes {
		if o.Result == result {
			n++
		}
	}
	return n
}

// ──────────────────────────────────────────────
// TESTS
// ──────────────────────────────────────────────

func TestRunSendsReminderAtExactWindowBound(t *testing.T) {
	repo := newMockRideRepo()
	mailer := &mockMailer{}
	// 18:00 departure at 08:00 now: exactly T+10h.
	repo.add(rideAt("ride-1", "18:00"))

	engine := newTestEngine(repo, mailer)
	outcomes := engine.Run(context.Background())

	got := outcomesFor(outcomes, "ride-1", notification.KindReminder10h)
	if len(got) != 1 || got[0].Result != OutcomeSent {
		t.Fatalf("expected one sent outcome, got %+v", got)
	}
	if mailer.sendCount() != 1 {
		t.Fatalf("expected 1 send, got %d", mailer.sendCount())
	}
	if !repo.get("ride-1").Reminder10hSent {
		t.Error("reminder10hSent not flipped after confirmed send")
	}
	if repo.get("ride-1").Reminder2hSent {
		t.Error("reminder2hSent must stay false at T+10h")
	}
}

func TestRunIsIdempotentAcrossInvocations(t *testing.T) {
	repo := newMockRideRepo()
	mailer := &mockMailer{}
	repo.add(rideAt("ride-1", "18:00"))

	engine := newTestEngine(repo, mailer)
	engine.Run(context.Background())
	second := engine.Run(context.Background())

	if mailer.sendCount() != 1 {
		t.Fatalf("expected exactly 1 send across invocations, got %d", mailer.sendCount())
	}
	// The 10h flag excludes the ride from its window; the 2h window may
	// still list it as a coarse candidate but must only skip it.
	if n := countResult(second, OutcomeSent); n != 0 {
		t.Errorf("second run sent %d reminders, want 0: %+v", n, second)
	}
}

func TestRunIgnoresRideOutsideBothWindows(t *testing.T) {
	repo := newMockRideRepo()
	mailer := &mockMailer{}
	// 20:00 departure at 08:00 now: T+12h, outside both windows.
	repo.add(rideAt("ride-1", "20:00"))

	engine := newTestEngine(repo, mailer)
	outcomes := engine.Run(context.Background())

	if mailer.sendCount() != 0 {
		t.Fatalf("expected no sends, got %d", mailer.sendCount())
	}
	if countResult(outcomes, OutcomeSent) != 0 {
		t.Errorf("expected no sent outcomes, got %+v", outcomes)
	}
	// The coarse date query picked it up; the exact instant check dropped it.
	if countResult(outcomes, OutcomeSkipped) == 0 {
		t.Errorf("expected skipped outcome for out-of-window candidate, got %+v", outcomes)
	}
}

func TestRunSends2hReminderWithUrgentFraming(t *testing.T) {
	repo := newMockRideRepo()
	mailer := &mockMailer{}
	// 10:00 departure at 08:00 now: exactly T+2h.
	repo.add(rideAt("ride-1", "10:00"))

	engine := newTestEngine(repo, mailer)
	outcomes := engine.Run(context.Background())

	got := outcomesFor(outcomes, "ride-1", notification.KindReminder2h)
	if len(got) != 1 || got[0].Result != OutcomeSent {
		t.Fatalf("expected one 2h sent outcome, got %+v", outcomes)
	}
	if mailer.sendCount() != 1 {
		t.Fatalf("expected 1 send, got %d", mailer.sendCount())
	}
	if !strings.Contains(mailer.Subjects[0], "URGENT") {
		t.Errorf("2h reminder subject %q not urgent", mailer.Subjects[0])
	}
	if !repo.get("ride-1").Reminder2hSent {
		t.Error("reminder2hSent not flipped")
	}
	if repo.get("ride-1").Reminder10hSent {
		t.Error("reminder10hSent must stay false: windows are disjoint")
	}
}

func TestRunNeverRemindsCancelledRides(t *testing.T) {
	repo := newMockRideRepo()
	mailer := &mockMailer{}
	cancelled := rideAt("ride-1", "18:00")
	cancelled.Status = models.RideStatusCancelled
	repo.add(cancelled)

	engine := newTestEngine(repo, mailer)
	outcomes := engine.Run(context.Background())

	if mailer.sendCount() != 0 {
		t.Fatalf("cancelled ride received a reminder")
	}
	if len(outcomes) != 0 {
		t.Errorf("cancelled ride should not be a candidate, got %+v", outcomes)
	}
}

func TestRunIsolatesPerRideSendFailures(t *testing.T) {
	repo := newMockRideRepo()
	mailer := &mockMailer{
		FailIf: func(subject string) bool { return strings.Contains(subject, "(10:00)") },
	}
	// Both inside the 2h window.
	repo.add(rideAt("ride-1", "10:00"))
	repo.add(rideAt("ride-2", "10:30"))

	engine := newTestEngine(repo, mailer)
	outcomes := engine.Run(context.Background())

	failed := outcomesFor(outcomes, "ride-1", notification.KindReminder2h)
	if len(failed) != 1 || failed[0].Result != OutcomeFailed {
		t.Fatalf("expected failed outcome for ride-1, got %+v", outcomes)
	}
	sent := outcomesFor(outcomes, "ride-2", notification.KindReminder2h)
	if len(sent) != 1 || sent[0].Result != OutcomeSent {
		t.Fatalf("expected sent outcome for ride-2, got %+v", outcomes)
	}

	if repo.get("ride-1").Reminder2hSent {
		t.Error("failed ride's flag must stay false so the next sweep retries")
	}
	if !repo.get("ride-2").Reminder2hSent {
		t.Error("successful ride's flag must be set")
	}
}

func TestRunSkipsWhenFlagAlreadyClaimed(t *testing.T) {
	repo := newMockRideRepo()
	mailer := &mockMailer{}
	repo.add(rideAt("ride-1", "18:00"))

	engine := newTestEngine(repo, mailer)
	// Simulate a concurrent sweep winning the conditional update between our
	// send and our flag flip: the mailer hook flips the flag underneath us.
	mailer.FailIf = func(subject string) bool {
		repo.mu.Lock()
		repo.rides["ride-1"].Reminder10hSent = true
		repo.mu.Unlock()
		return false
	}

	outcomes := engine.Run(context.Background())
	got := outcomesFor(outcomes, "ride-1", notification.KindReminder10h)
	if len(got) != 1 || got[0].Result != OutcomeSkipped {
		t.Fatalf("expected skipped outcome after losing the claim, got %+v", outcomes)
	}
}

func TestRunRecordsFailureForUnparseableTime(t *testing.T) {
	repo := newMockRideRepo()
	mailer := &mockMailer{}
	bad := rideAt("ride-1", "18h00")
	repo.add(bad)

	engine := newTestEngine(repo, mailer)
	outcomes := engine.Run(context.Background())

	if mailer.sendCount() != 0 {
		t.Fatal("unparseable ride should not be emailed")
	}
	if countResult(outcomes, OutcomeFailed) == 0 {
		t.Errorf("expected failed outcome, got %+v", outcomes)
	}
}

func TestRunSurvivesCandidateQueryFailure(t *testing.T) {
	repo := newMockRideRepo()
	repo.FindErr = errors.New("mongo down")
	mailer := &mockMailer{}

	engine := newTestEngine(repo, mailer)
	outcomes := engine.Run(context.Background())

	if len(outcomes) != 0 {
		t.Errorf("expected empty outcome list on query failure, got %+v", outcomes)
	}
}
