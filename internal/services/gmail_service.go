package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"aidraft-addon/internal/apperr"
	"aidraft-addon/internal/models"
	"aidraft-addon/internal/utils"
)

// gmailAccessTokenHeader scopes a request to the message the add-on was
// opened on.
const gmailAccessTokenHeader = "X-Goog-Gmail-Access-Token"

var errNoUserToken = errors.New("missing user OAuth token")

// GmailService reads messages with the per-request tokens of an add-on event.
type GmailService struct {
	opts []option.ClientOption
	log  zerolog.Logger
}

// NewGmailService takes extra client options, applied after the user token.
func NewGmailService(log zerolog.Logger, opts ...option.ClientOption) *GmailService {
	return &GmailService{
		opts: opts,
		log:  log.With().Str("component", "gmail").Logger(),
	}
}

func (s *GmailService) getClient(ctx context.Context, creds models.Credentials) (*gmail.Service, error) {
	if creds.OAuthToken == "" {
		return nil, errNoUserToken
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: creds.OAuthToken,
		TokenType:   "Bearer",
	})

	opts := append([]option.ClientOption{option.WithTokenSource(tokenSource)}, s.opts...)
	return gmail.NewService(ctx, opts...)
}

func (s *GmailService) GetMessage(ctx context.Context, creds models.Credentials, messageID string) (*models.Message, error) {
	op := fmt.Sprintf("Failed to fetch message %s", messageID)

	srv, err := s.getClient(ctx, creds)
	if err != nil {
		return nil, apperr.HostCollaborator(op, err)
	}

	call := srv.Users.Messages.Get("me", messageID).Format("full").Context(ctx)
	if creds.GmailAccessToken != "" {
		call.Header().Set(gmailAccessTokenHeader, creds.GmailAccessToken)
	}

	msg, err := call.Do()
	if err != nil {
		s.log.Error().Err(err).Str("message_id", messageID).Msg("messages.get failed")
		return nil, apperr.HostCollaborator(op, err)
	}

	m := mapGmailMessage(msg)
	return &m, nil
}

// GetThread returns the thread's messages in the order Gmail lists them.
func (s *GmailService) GetThread(ctx context.Context, creds models.Credentials, threadID string) ([]*models.Message, error) {
	op := fmt.Sprintf("Failed to fetch thread %s", threadID)

	srv, err := s.getClient(ctx, creds)
	if err != nil {
		return nil, apperr.HostCollaborator(op, err)
	}

	call := srv.Users.Threads.Get("me", threadID).Format("full").Context(ctx)
	if creds.GmailAccessToken != "" {
		call.Header().Set(gmailAccessTokenHeader, creds.GmailAccessToken)
	}

	thread, err := call.Do()
	if err != nil {
		s.log.Error().Err(err).Str("thread_id", threadID).Msg("threads.get failed")
		return nil, apperr.HostCollaborator(op, err)
	}

	messages := make([]*models.Message, 0, len(thread.Messages))
	for _, msg := range thread.Messages {
		m := mapGmailMessage(msg)
		messages = append(messages, &m)
	}
	return messages, nil
}

func mapGmailMessage(msg *gmail.Message) models.Message {
	var subject, from string
	var body string

	if msg.Payload != nil {
		for _, header := range msg.Payload.Headers {
			switch strings.ToLower(header.Name) {
			case "subject":
				subject = header.Value
			case "from":
				from = header.Value
			}
		}
		body = getBody(msg.Payload)
	}
	if body == "" {
		body = msg.Snippet
	}

	var date time.Time
	if msg.InternalDate > 0 {
		date = time.UnixMilli(msg.InternalDate)
	}

	return models.Message{
		ID:           msg.Id,
		ThreadID:     msg.ThreadId,
		Subject:      utils.ToValidUTF8(subject),
		From:         utils.ToValidUTF8(from),
		Body:         utils.ToValidUTF8(body),
		InternalDate: date,
	}
}

// getBody prefers the text/plain alternative and falls back to stripped HTML.
func getBody(part *gmail.MessagePart) string {
	plain, htmlBody := findBodies(part)
	if strings.TrimSpace(plain) != "" {
		return strings.TrimSpace(strings.ReplaceAll(plain, "\r\n", "\n"))
	}
	if htmlBody != "" {
		return utils.HTMLToText(htmlBody)
	}
	return ""
}

func findBodies(part *gmail.MessagePart) (plain, htmlBody string) {
	if part == nil || part.Filename != "" {
		return "", ""
	}

	if part.Body != nil && part.Body.Data != "" {
		if data, err := decodeBase64URL(part.Body.Data); err == nil {
			switch {
			case strings.HasPrefix(part.MimeType, "text/plain"):
				plain = string(data)
			case strings.HasPrefix(part.MimeType, "text/html"):
				htmlBody = string(data)
			}
		}
	}

	for _, p := range part.Parts {
		subPlain, subHTML := findBodies(p)
		if plain == "" {
			plain = subPlain
		}
		if htmlBody == "" {
			htmlBody = subHTML
		}
	}
	return plain, htmlBody
}

func decodeBase64URL(data string) ([]byte, error) {
	// Gmail usually omits padding, but not always
	decoded, err := base64.RawURLEncoding.DecodeString(data)
	if err == nil {
		return decoded, nil
	}
	return base64.URLEncoding.DecodeString(data)
}
