// Package addon decides which card the add-on shows for host events and
// button actions.
package addon

import (
	"context"

	"aidraft-addon/internal/cards"
	"aidraft-addon/internal/models"
)

// EmailClient reads Gmail messages with the tokens of one add-on event.
type EmailClient interface {
	GetMessage(ctx context.Context, creds models.Credentials, messageID string) (*models.Message, error)
	GetThread(ctx context.Context, creds models.Credentials, threadID string) ([]*models.Message, error)
}

// Router picks the first card for a homepage or contextual trigger.
type Router struct {
	email EmailClient
}

func NewRouter(email EmailClient) *Router {
	return &Router{email: email}
}

// Route returns a reply preview for events opened on a message and the
// compose form otherwise. Errors are not turned into cards: without knowing
// the mode there is no sensible view to show.
func (r *Router) Route(ctx context.Context, ev *models.AddonEvent) (cards.State, error) {
	messageID := ev.MessageID()
	if messageID == "" {
		return cards.ComposeForm{}, nil
	}

	msg, err := r.email.GetMessage(ctx, ev.Credentials(), messageID)
	if err != nil {
		return nil, err
	}
	return cards.NewReplyPreview(msg), nil
}
