package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"ysgtransport/models"
)

// wazeLinks maps known location names to their Waze deeplinks. Names outside
// the table fall back to a dead link rather than failing the email.
var wazeLinks = map[string]string{
	"Campus PSG": "https://waze.com/ul/hu09qmbevr",
	"Domicile":   "https://waze.com/ul/hu09tkg0mu",
}

const wazeFallback = "#"

// WazeLink resolves a location name to its map deeplink.
func WazeLink(name string) string {
	if link, ok := wazeLinks[name]; ok {
		return link
	}
	return wazeFallback
}

var frenchDays = [...]string{
	"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// formatFrenchDate renders a date like "lundi 2 juin" (plus the year when
// withYear is set), matching the driver's locale.
func formatFrenchDate(t time.Time, withYear bool) string {
	s := fmt.Sprintf("%s %d %s", frenchDays[t.Weekday()], t.Day(), frenchMonths[t.Month()-1])
	if withYear {
		s = fmt.Sprintf("%s %d", s, t.Year())
	}
	return s
}

// DefaultComposer renders the driver emails. Zone controls how ride dates are
// displayed; Now is injectable for tests and defaults to time.Now.
type DefaultComposer struct {
	Zone *time.Location
	Now  func() time.Time
}

func NewComposer(zone *time.Location) *DefaultComposer {
	return &DefaultComposer{Zone: zone, Now: time.Now}
}

const (
	colorBlue = "#004170"
	colorRed  = "#E1000F"

	gradientBlue = "linear-gradient(135deg, #004170 0%, #556bff 100%)"
	gradientRed  = "linear-gradient(135deg, #E1000F 0%, #ff4757 100%)"
)

type emailData struct {
	HeaderIcon      string
	HeaderTitle     string
	HeaderSub       string
	HeaderGradient  template.CSS
	Accent          template.CSS
	Countdown       string
	FormattedDate   string
	Time            string
	PlayerName      string
	Departure       string
	Destination     string
	DepartureWaze   string
	DestinationWaze string
	Notes           string
	IsUrgent        bool
	GeneratedAt     string
}

// Compose builds the subject and HTML body for one ride and notification
// kind. Notes pass through html/template and are therefore escaped.
func (c *DefaultComposer) Compose(ride *models.RideRequest, kind Kind) (Email, error) {
	player := ride.PlayerName
	if player == "" {
		player = "Jordan"
	}

	now := c.Now().In(c.Zone)
	date := ride.Date.In(c.Zone)

	data := emailData{
		Time:            ride.Time,
		PlayerName:      player,
		Departure:       ride.Departure,
		Destination:     ride.Destination,
		DepartureWaze:   WazeLink(ride.Departure),
		DestinationWaze: WazeLink(ride.Destination),
		Notes:           ride.Notes,
		GeneratedAt:     now.Format("02/01/2006 15:04"),
	}

	var subject string
	var tmpl *template.Template

	switch kind {
	case KindNewRequest:
		subject = fmt.Sprintf("🚗 Nouvelle course PSG - %s (%s à %s)", player, date.Format("2006-01-02"), ride.Time)
		data.HeaderIcon = "🚗"
		data.HeaderTitle = "Nouvelle demande de course"
		data.HeaderSub = player + " PSG Transport"
		data.HeaderGradient = gradientBlue
		data.Accent = colorBlue
		data.FormattedDate = formatFrenchDate(date, true)
		tmpl = newRequestTmpl
	case KindReminder10h:
		subject = fmt.Sprintf("⏰ Rappel course PSG - %s aujourd'hui à %s", player, ride.Time)
		data.HeaderIcon = "⏰"
		data.HeaderTitle = "Rappel course PSG"
		data.HeaderSub = "Course aujourd'hui"
		data.HeaderGradient = gradientBlue
		data.Accent = colorBlue
		data.Countdown = "📅 Aujourd'hui à " + ride.Time
		data.FormattedDate = formatFrenchDate(date, false)
		tmpl = reminderTmpl
	case KindReminder2h:
		subject = fmt.Sprintf("🚨 Rappel URGENT - Course PSG dans 2h (%s)", ride.Time)
		data.HeaderIcon = "🚨"
		data.HeaderTitle = "Rappel course PSG"
		data.HeaderSub = "Course dans 2 heures !"
		data.HeaderGradient = gradientRed
		data.Accent = colorRed
		data.Countdown = "⚡ Dans 2 heures ⚡"
		data.FormattedDate = formatFrenchDate(date, false)
		data.IsUrgent = true
		tmpl = reminderTmpl
	default:
		return Email{}, fmt.Errorf("unknown notification kind %q", kind)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return Email{}, fmt.Errorf("failed to render %s email: %w", kind, err)
	}

	return Email{Subject: subject, HTMLBody: body.String()}, nil
}
