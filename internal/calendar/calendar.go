// Package calendar generates external calendar links for saved reminders.
// The link carries a fixed 15-minute event window plus a deep link back into
// the app, so a calendar entry can reopen the reminder after the moment
// passed.
package calendar

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/kocpc001/multimedia-reminder/internal/model"
)

const (
	defaultEventBase = "https://www.google.com/calendar/render"
	defaultScheme    = "reminderapp"
	eventWindow      = 15 * time.Minute
	stampLayout      = "20060102T150405Z"
)

type LinkBuilder struct {
	EventBase string
	Scheme    string
	WebBase   string
}

func NewLinkBuilder(webBase string) LinkBuilder {
	return LinkBuilder{
		EventBase: defaultEventBase,
		Scheme:    defaultScheme,
		WebBase:   webBase,
	}
}

// Link builds the calendar template URL for a reminder. Deterministic: the
// same reminder always yields the same link.
func (b LinkBuilder) Link(r model.Reminder) string {
	base := b.EventBase
	if base == "" {
		base = defaultEventBase
	}
	scheme := b.Scheme
	if scheme == "" {
		scheme = defaultScheme
	}

	start := r.ScheduledAt.UTC().Format(stampLayout)
	end := r.ScheduledAt.UTC().Add(eventWindow).Format(stampLayout)

	deepLink := fmt.Sprintf("%s://view_content?id=%s", scheme, r.ID)
	webLink := b.WebBase
	if webLink != "" {
		sep := "?"
		if strings.Contains(webLink, "?") {
			sep = "&"
		}
		webLink = fmt.Sprintf("%s%sid=%s", webLink, sep, r.ID)
	}
	details := fmt.Sprintf("View your multimedia reminder here:\n\nApp Link: %s\n\nWeb Link: %s", deepLink, webLink)

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", "Reminder: "+strings.ToUpper(string(r.Kind)))
	params.Set("dates", start+"/"+end)
	params.Set("details", details)
	params.Set("sf", "true")
	params.Set("output", "xml")

	return base + "?" + params.Encode()
}

// Opener launches calendar links in the default browser.
type Opener struct {
	Builder LinkBuilder
}

func (o Opener) Open(r model.Reminder) error {
	link := o.Builder.Link(r)
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", link).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", link).Start()
	default:
		return exec.Command("xdg-open", link).Start()
	}
}
