package addon

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"aidraft-addon/internal/apperr"
	"aidraft-addon/internal/cards"
	"aidraft-addon/internal/models"
	"aidraft-addon/internal/services"
)

// ErrUnknownAction is returned by Dispatch for names outside the action set.
var ErrUnknownAction = errors.New("unknown action")

// CalendarClient creates events on the user's default calendar.
type CalendarClient interface {
	CreateEvent(ctx context.Context, creds models.Credentials, input models.CalendarEventInput) (string, error)
}

// Summarizer summarizes a message and looks for an event in it.
type Summarizer interface {
	Summarize(ctx context.Context, msg *models.Message) (models.Summary, error)
}

type actionFunc func(ctx context.Context, ev *models.AddonEvent) (cards.State, error)

// Dispatcher runs card button actions. Action failures become error cards;
// only an unknown action name is reported as an error.
type Dispatcher struct {
	email      EmailClient
	calendar   CalendarClient
	gateway    services.AIGateway
	summarizer Summarizer
	builder    *cards.Builder
	log        zerolog.Logger

	actions map[string]actionFunc
}

func NewDispatcher(
	email EmailClient,
	calendar CalendarClient,
	gateway services.AIGateway,
	summarizer Summarizer,
	builder *cards.Builder,
	log zerolog.Logger,
) *Dispatcher {
	d := &Dispatcher{
		email:      email,
		calendar:   calendar,
		gateway:    gateway,
		summarizer: summarizer,
		builder:    builder,
		log:        log.With().Str("component", "dispatcher").Logger(),
	}

	d.actions = map[string]actionFunc{
		cards.ActionGenerateCompose:    d.generateCompose,
		cards.ActionRegenerateCompose:  d.regenerateCompose,
		cards.ActionGoBackToCompose:    d.goBackToCompose,
		cards.ActionGenerateReply:      d.generateReply,
		cards.ActionRefreshLatestReply: d.refreshLatestReply,
		cards.ActionSummarizeEmail:     d.summarizeEmail,
		cards.ActionGoBackToReply:      d.goBackToReply,
	}
	return d
}

// Actions lists every action name Dispatch accepts, sorted.
func (d *Dispatcher) Actions() []string {
	names := make([]string, 0, len(d.actions)+1)
	for name := range d.actions {
		names = append(names, name)
	}
	names = append(names, cards.ActionCreateCalendarEvent)
	sort.Strings(names)
	return names
}

func (d *Dispatcher) Dispatch(ctx context.Context, action string, ev *models.AddonEvent) (models.ActionResponse, error) {
	if action == cards.ActionCreateCalendarEvent {
		return d.createCalendarEvent(ctx, ev), nil
	}

	run, ok := d.actions[action]
	if !ok {
		return models.ActionResponse{}, fmt.Errorf("%w %q", ErrUnknownAction, action)
	}

	state, err := run(ctx, ev)
	if err != nil {
		d.log.Warn().
			Err(err).
			Str("action", action).
			Str("kind", string(apperr.KindOf(err))).
			Msg("action failed")
		state = cards.ErrorView{Message: err.Error(), MessageID: messageIDOf(ev)}
	}

	return models.UpdateCard(d.builder.Build(state)), nil
}

func (d *Dispatcher) generateCompose(ctx context.Context, ev *models.AddonEvent) (cards.State, error) {
	req := models.ComposeRequest{
		UserInput: ev.FormValue("userInput"),
		Recipient: ev.FormValue("recipient"),
		Subject:   ev.FormValue("subject"),
	}
	return d.compose(ctx, req, false)
}

// regenerateCompose reads the inputs the draft card stored on its button.
func (d *Dispatcher) regenerateCompose(ctx context.Context, ev *models.AddonEvent) (cards.State, error) {
	req := models.ComposeRequest{
		UserInput: ev.Parameter("userInput"),
		Recipient: ev.Parameter("recipient"),
		Subject:   ev.Parameter("subject"),
	}
	return d.compose(ctx, req, true)
}

func (d *Dispatcher) compose(ctx context.Context, req models.ComposeRequest, regenerated bool) (cards.State, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	draft, err := d.gateway.Generate(ctx, models.NewGenerationRequest(services.ComposePrompt(req)))
	if err != nil {
		return nil, err
	}

	return cards.GeneratedDraft{
		Draft:          draft,
		UserInput:      req.UserInput,
		Recipient:      req.Recipient,
		Subject:        req.Subject,
		WasRegenerated: regenerated,
	}, nil
}

func (d *Dispatcher) goBackToCompose(context.Context, *models.AddonEvent) (cards.State, error) {
	return cards.ComposeForm{}, nil
}

func (d *Dispatcher) generateReply(ctx context.Context, ev *models.AddonEvent) (cards.State, error) {
	msg, err := d.requireMessage(ctx, ev)
	if err != nil {
		return nil, err
	}

	prompt := services.ReplyPrompt(models.NewEmailContext(msg))
	reply, err := d.gateway.Generate(ctx, models.NewGenerationRequest(prompt))
	if err != nil {
		return nil, err
	}

	return cards.GeneratedReply{Reply: reply, MessageID: msg.ID}, nil
}

// refreshLatestReply previews the newest message of the thread. It does not
// summarize.
func (d *Dispatcher) refreshLatestReply(ctx context.Context, ev *models.AddonEvent) (cards.State, error) {
	threadID := strings.TrimSpace(ev.Parameter("threadId"))
	if threadID == "" {
		threadID = ev.ThreadID()
	}
	if threadID == "" {
		msg, err := d.requireMessage(ctx, ev)
		if err != nil {
			return nil, err
		}
		threadID = msg.ThreadID
	}

	messages, err := d.email.GetThread(ctx, ev.Credentials(), threadID)
	if err != nil {
		return nil, err
	}

	latest := latestMessage(messages)
	if latest == nil {
		return nil, apperr.Validationf("Thread %s has no messages.", threadID)
	}
	return cards.NewReplyPreview(latest), nil
}

func (d *Dispatcher) summarizeEmail(ctx context.Context, ev *models.AddonEvent) (cards.State, error) {
	msg, err := d.requireMessage(ctx, ev)
	if err != nil {
		return nil, err
	}

	summary, err := d.summarizer.Summarize(ctx, msg)
	if err != nil {
		return nil, err
	}

	return cards.SummaryView{
		Summary:   summary.Text,
		Calendar:  summary.Calendar,
		MessageID: msg.ID,
	}, nil
}

func (d *Dispatcher) goBackToReply(ctx context.Context, ev *models.AddonEvent) (cards.State, error) {
	msg, err := d.requireMessage(ctx, ev)
	if err != nil {
		return nil, err
	}
	return cards.NewReplyPreview(msg), nil
}

func (d *Dispatcher) requireMessage(ctx context.Context, ev *models.AddonEvent) (*models.Message, error) {
	messageID := messageIDOf(ev)
	if messageID == "" {
		return nil, apperr.Validation("No email selected. Open a message first.")
	}
	return d.email.GetMessage(ctx, ev.Credentials(), messageID)
}

// messageIDOf prefers the id carried on the button over the open message.
func messageIDOf(ev *models.AddonEvent) string {
	if id := strings.TrimSpace(ev.Parameter("messageId")); id != "" {
		return id
	}
	return ev.MessageID()
}

// latestMessage picks the message with the newest internal date. Ties keep
// the later position in the list.
func latestMessage(messages []*models.Message) *models.Message {
	var latest *models.Message
	for _, m := range messages {
		if m == nil {
			continue
		}
		if latest == nil || !m.InternalDate.Before(latest.InternalDate) {
			latest = m
		}
	}
	return latest
}
