package addon_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aidraft-addon/internal/apperr"
	"aidraft-addon/internal/cards"
	"aidraft-addon/internal/models"
)

func notification(t *testing.T, resp models.ActionResponse) string {
	t.Helper()
	require.NotNil(t, resp.RenderActions)
	require.Empty(t, resp.RenderActions.Action.Navigations)
	require.NotNil(t, resp.RenderActions.Action.Notification)
	return resp.RenderActions.Action.Notification.Text
}

func TestCreateCalendarEventSucceeds(t *testing.T) {
	f := newFixture()

	resp, err := f.dispatcher.Dispatch(context.Background(), cards.ActionCreateCalendarEvent, paramEvent(map[string]string{
		"title": "Test Meeting",
		"start": "2024-01-15T14:00:00-08:00",
		"end":   "2024-01-15T15:00:00-08:00",
	}))
	require.NoError(t, err)

	text := notification(t, resp)
	assert.Equal(t, `✅ "Test Meeting" added to Google Calendar!`, text)

	require.Equal(t, 1, f.calendar.calls)
	assert.Equal(t, "Test Meeting", f.calendar.last.Title)
	assert.True(t, f.calendar.last.Start.Equal(time.Date(2024, 1, 15, 22, 0, 0, 0, time.UTC)))
	assert.True(t, f.calendar.last.End.Equal(time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)))
}

func TestCreateCalendarEventSwappedTimes(t *testing.T) {
	f := newFixture()

	resp, err := f.dispatcher.Dispatch(context.Background(), cards.ActionCreateCalendarEvent, paramEvent(map[string]string{
		"title": "Test Meeting",
		"start": "2024-01-15T15:00:00-08:00",
		"end":   "2024-01-15T14:00:00-08:00",
	}))
	require.NoError(t, err)

	assert.Contains(t, notification(t, resp), "Start time must be before end time.")
	assert.Zero(t, f.calendar.calls)
}

func TestCreateCalendarEventValidation(t *testing.T) {
	cases := []struct {
		name   string
		params map[string]string
		want   string
	}{
		{
			name:   "missing title",
			params: map[string]string{"start": "2024-01-15T14:00:00Z", "end": "2024-01-15T15:00:00Z"},
			want:   "❌ Failed to create event: Missing event parameters (title, start, or end).",
		},
		{
			name:   "missing end",
			params: map[string]string{"title": "x", "start": "2024-01-15T14:00:00Z"},
			want:   "❌ Failed to create event: Missing event parameters (title, start, or end).",
		},
		{
			name:   "unparseable start",
			params: map[string]string{"title": "x", "start": "next tuesday", "end": "2024-01-15T15:00:00Z"},
			want:   "❌ Failed to create event: Invalid date format. Start: next tuesday, End: 2024-01-15T15:00:00Z",
		},
		{
			name:   "unparseable end, even when inverted",
			params: map[string]string{"title": "x", "start": "2024-01-15T15:00:00Z", "end": "soon"},
			want:   "❌ Failed to create event: Invalid date format. Start: 2024-01-15T15:00:00Z, End: soon",
		},
		{
			name:   "equal times",
			params: map[string]string{"title": "x", "start": "2024-01-15T15:00:00Z", "end": "2024-01-15T15:00:00Z"},
			want:   "❌ Failed to create event: Start time must be before end time.",
		},
		{
			name:   "inverted across formats",
			params: map[string]string{"title": "x", "start": "2024-01-16", "end": "2024-01-15T15:00:00Z"},
			want:   "❌ Failed to create event: Start time must be before end time.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			resp, err := f.dispatcher.Dispatch(context.Background(), cards.ActionCreateCalendarEvent, paramEvent(tc.params))
			require.NoError(t, err)

			assert.Equal(t, tc.want, notification(t, resp))
			assert.Zero(t, f.calendar.calls)
		})
	}
}

func TestCreateCalendarEventUsesUserZone(t *testing.T) {
	f := newFixture()
	ev := paramEvent(map[string]string{
		"title": "Standup",
		"start": "2024-01-15T09:00",
		"end":   "2024-01-15T09:15",
	})
	ev.CommonEventObject.TimeZone = &models.TimeZone{ID: "America/New_York", Offset: -18000000}

	resp, err := f.dispatcher.Dispatch(context.Background(), cards.ActionCreateCalendarEvent, ev)
	require.NoError(t, err)
	assert.Contains(t, notification(t, resp), "Standup")

	require.Equal(t, 1, f.calendar.calls)
	assert.True(t, f.calendar.last.Start.Equal(time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC)))
	assert.Equal(t, "America/New_York", f.calendar.last.TimeZone)
}

func TestCreateCalendarEventCollaboratorFailure(t *testing.T) {
	f := newFixture()
	f.calendar.createEvent = func(context.Context, models.Credentials, models.CalendarEventInput) (string, error) {
		return "", apperr.HostCollaborator("Calendar API error", errors.New("insufficient permission"))
	}

	resp, err := f.dispatcher.Dispatch(context.Background(), cards.ActionCreateCalendarEvent, paramEvent(map[string]string{
		"title": "Test Meeting",
		"start": "2024-01-15T14:00:00-08:00",
		"end":   "2024-01-15T15:00:00-08:00",
	}))
	require.NoError(t, err)

	assert.Equal(t, "❌ Failed to create event: Calendar API error: insufficient permission", notification(t, resp))
	assert.Equal(t, 1, f.calendar.calls)
}
