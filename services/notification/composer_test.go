package notification

import (
	"strings"
	"testing"
	"time"

	"ysgtransport/models"
)

func testComposer() *DefaultComposer {
	return &DefaultComposer{
		Zone: time.UTC,
		Now:  func() time.Time { return time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC) },
	}
}

func testRide() *models.RideRequest {
	return &models.RideRequest{
		ID:          "ride-1",
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Time:        "18:00",
		Departure:   "Campus PSG",
		Destination: "Domicile",
		Status:      models.RideStatusPending,
	}
}

func TestComposeNewRequest(t *testing.T) {
	email, err := testComposer().Compose(testRide(), KindNewRequest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(email.Subject, "Nouvelle course PSG") {
		t.Errorf("subject %q missing new-request marker", email.Subject)
	}
	if !strings.Contains(email.Subject, "18:00") {
		t.Errorf("subject %q missing ride time", email.Subject)
	}
	if !strings.Contains(email.HTMLBody, "dimanche 1 juin 2025") {
		t.Errorf("body missing formatted French date")
	}
	if !strings.Contains(email.HTMLBody, "https://waze.com/ul/hu09qmbevr") {
		t.Errorf("body missing departure Waze link")
	}
	if !strings.Contains(email.HTMLBody, "https://waze.com/ul/hu09tkg0mu") {
		t.Errorf("body missing destination Waze link")
	}
	if !strings.Contains(email.HTMLBody, "Jordan") {
		t.Errorf("body missing default player name")
	}
}

func TestComposeReminderKindsDiffer(t *testing.T) {
	c := testComposer()
	ride := testRide()

	tenH, err := c.Compose(ride, KindReminder10h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twoH, err := c.Compose(ride, KindReminder2h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(twoH.Subject, "URGENT") {
		t.Errorf("2h subject %q not marked urgent", twoH.Subject)
	}
	if strings.Contains(tenH.Subject, "URGENT") {
		t.Errorf("10h subject %q should not be urgent", tenH.Subject)
	}
	if !strings.Contains(twoH.HTMLBody, gradientRed) {
		t.Errorf("2h body missing urgent header color")
	}
	if !strings.Contains(tenH.HTMLBody, gradientBlue) {
		t.Errorf("10h body missing normal header color")
	}
	if !strings.Contains(twoH.HTMLBody, "Dans 2 heures") {
		t.Errorf("2h body missing countdown framing")
	}
	if !strings.Contains(tenH.HTMLBody, "Aujourd&#39;hui à 18:00") && !strings.Contains(tenH.HTMLBody, "Aujourd'hui à 18:00") {
		t.Errorf("10h body missing today framing")
	}
}

func TestComposeUnknownLocationFallsBack(t *testing.T) {
	ride := testRide()
	ride.Departure = "Stade inconnu"

	email, err := testComposer().Compose(ride, KindReminder10h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(email.HTMLBody, `href="#"`) {
		t.Errorf("unknown location should fall back to a dead link")
	}
}

func TestComposeEscapesNotes(t *testing.T) {
	ride := testRide()
	ride.Notes = `<script>alert("x")</script>`

	email, err := testComposer().Compose(ride, KindNewRequest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(email.HTMLBody, "<script>") {
		t.Error("notes were embedded unescaped")
	}
	if !strings.Contains(email.HTMLBody, "&lt;script&gt;") {
		t.Error("escaped notes missing from body")
	}
}

func TestComposeOmitsEmptyNotes(t *testing.T) {
	email, err := testComposer().Compose(testRide(), KindReminder2h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(email.HTMLBody, "Notes importantes") {
		t.Error("notes block rendered for empty notes")
	}
}

func TestComposeRejectsUnknownKind(t *testing.T) {
	if _, err := testComposer().Compose(testRide(), Kind("push")); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestWazeLink(t *testing.T) {
	if got := WazeLink("Campus PSG"); got != "https://waze.com/ul/hu09qmbevr" {
		t.Errorf("WazeLink(Campus PSG) = %q", got)
	}
	if got := WazeLink("Domicile Jordan"); got != "#" {
		t.Errorf("WazeLink should fall back to #, got %q", got)
	}
}
