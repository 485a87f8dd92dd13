// Package cards turns add-on view states into Cards v2 documents.
package cards

import "aidraft-addon/internal/models"

// State is one of the views the add-on can show.
type State interface {
	isState()
}

// ComposeForm asks for a recipient and what the email should say.
type ComposeForm struct{}

// ReplyPreview shows the message the user opened.
type ReplyPreview struct {
	MessageID string
	ThreadID  string
	From      string
	Subject   string
	Body      string
}

type GeneratedDraft struct {
	Draft          string
	UserInput      string
	Recipient      string
	Subject        string
	WasRegenerated bool
}

type GeneratedReply struct {
	Reply     string
	MessageID string
}

type SummaryView struct {
	Summary   string
	Calendar  models.CalendarExtraction
	MessageID string
}

// ErrorView goes back to the reply preview when MessageID is set and to the
// compose form otherwise.
type ErrorView struct {
	Message   string
	MessageID string
}

func (ComposeForm) isState()    {}
func (ReplyPreview) isState()   {}
func (GeneratedDraft) isState() {}
func (GeneratedReply) isState() {}
func (SummaryView) isState()    {}
func (ErrorView) isState()      {}

// NewReplyPreview fills a preview from a fetched message.
func NewReplyPreview(msg *models.Message) ReplyPreview {
	return ReplyPreview{
		MessageID: msg.ID,
		ThreadID:  msg.ThreadID,
		From:      msg.From,
		Subject:   msg.Subject,
		Body:      msg.Body,
	}
}
