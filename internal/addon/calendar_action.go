package addon

import (
	"context"
	"errors"
	"strings"
	"time"
	_ "time/tzdata" // embedded zone database

	"aidraft-addon/internal/apperr"
	"aidraft-addon/internal/models"
)

// Layouts tried after RFC 3339. They carry no offset and are read in the
// user's time zone.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// createCalendarEvent answers with a notification, never with a card.
func (d *Dispatcher) createCalendarEvent(ctx context.Context, ev *models.AddonEvent) models.ActionResponse {
	input, err := parseCalendarEvent(ev)
	if err == nil {
		var eventID string
		eventID, err = d.calendar.CreateEvent(ctx, ev.Credentials(), input)
		if err == nil {
			d.log.Info().Str("event_id", eventID).Msg("calendar event created")
			return models.Notify("✅ \"" + input.Title + "\" added to Google Calendar!")
		}
	}

	d.log.Warn().
		Err(err).
		Str("kind", string(apperr.KindOf(err))).
		Msg("calendar event not created")
	return models.Notify("❌ Failed to create event: " + err.Error())
}

func parseCalendarEvent(ev *models.AddonEvent) (models.CalendarEventInput, error) {
	title := strings.TrimSpace(ev.Parameter("title"))
	startRaw := strings.TrimSpace(ev.Parameter("start"))
	endRaw := strings.TrimSpace(ev.Parameter("end"))

	if title == "" || startRaw == "" || endRaw == "" {
		return models.CalendarEventInput{}, apperr.Validation("Missing event parameters (title, start, or end).")
	}

	loc, zone := eventLocation(ev)

	start, startErr := parseTimestamp(startRaw, loc)
	end, endErr := parseTimestamp(endRaw, loc)
	if startErr != nil || endErr != nil {
		return models.CalendarEventInput{}, apperr.Validationf("Invalid date format. Start: %s, End: %s", startRaw, endRaw)
	}

	if !start.Before(end) {
		return models.CalendarEventInput{}, apperr.Validation("Start time must be before end time.")
	}

	return models.CalendarEventInput{
		Title:    title,
		Start:    start,
		End:      end,
		TimeZone: zone,
	}, nil
}

// eventLocation resolves the user's zone, falling back to UTC. The zone name
// is "" when it could not be loaded.
func eventLocation(ev *models.AddonEvent) (*time.Location, string) {
	id := ev.TimeZoneID()
	if id == "" {
		return time.UTC, ""
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return time.UTC, ""
	}
	return loc, id
}

var errBadTimestamp = errors.New("unrecognized timestamp")

func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errBadTimestamp
}
