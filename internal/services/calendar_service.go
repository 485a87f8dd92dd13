package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"aidraft-addon/internal/apperr"
	"aidraft-addon/internal/models"
)

// PrimaryCalendar is the user's default calendar.
const PrimaryCalendar = "primary"

type CalendarService struct {
	opts []option.ClientOption
	log  zerolog.Logger
}

func NewCalendarService(log zerolog.Logger, opts ...option.ClientOption) *CalendarService {
	return &CalendarService{
		opts: opts,
		log:  log.With().Str("component", "calendar").Logger(),
	}
}

// CreateEvent inserts a timed event into the primary calendar and returns its id.
func (s *CalendarService) CreateEvent(ctx context.Context, creds models.Credentials, input models.CalendarEventInput) (string, error) {
	const op = "Calendar API error"

	if creds.OAuthToken == "" {
		return "", apperr.HostCollaborator(op, errNoUserToken)
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: creds.OAuthToken,
		TokenType:   "Bearer",
	})
	opts := append([]option.ClientOption{option.WithTokenSource(tokenSource)}, s.opts...)

	srv, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return "", apperr.HostCollaborator(op, err)
	}

	event := &calendar.Event{
		Summary: input.Title,
		Start: &calendar.EventDateTime{
			DateTime: input.Start.Format(time.RFC3339),
			TimeZone: input.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: input.End.Format(time.RFC3339),
			TimeZone: input.TimeZone,
		},
	}

	created, err := srv.Events.Insert(PrimaryCalendar, event).Context(ctx).Do()
	if err != nil {
		s.log.Error().Err(err).Str("title", input.Title).Msg("events.insert failed")
		return "", apperr.HostCollaborator(op, err)
	}

	s.log.Info().Str("event_id", created.Id).Msg("calendar event created")
	return created.Id, nil
}
