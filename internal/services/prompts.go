package services

import (
	"strings"

	"aidraft-addon/internal/models"
)

// languageLock is prepended to every prompt.
const languageLock = "You must always answer in English. "

func ReplyPrompt(email models.EmailContext) string {
	return languageLock +
		"Generate a professional and concise draft reply to the following email:\n\n" +
		email.String()
}

// ComposePrompt adds the recipient and subject lines only when they are set.
func ComposePrompt(req models.ComposeRequest) string {
	var b strings.Builder
	b.WriteString(languageLock)
	b.WriteString("Generate a professional and well-structured email based on the following request:\n\n")
	b.WriteString(req.UserInput)

	if r := strings.TrimSpace(req.Recipient); r != "" {
		b.WriteString("\n\nRecipient: " + r)
	}
	if s := strings.TrimSpace(req.Subject); s != "" {
		b.WriteString("\n\nSubject: " + s)
	}
	return b.String()
}

const summaryInstructions = `Summarize the following email in 2-3 concise sentences. If it proposes a meeting or event with a concrete date and time, also extract it.

Respond with this exact JSON format and nothing else:
{
  "summary": "2-3 sentence summary",
  "hasCalendarEvent": true|false,
  "title": "event title",
  "start": "ISO 8601 start, with UTC offset when known",
  "end": "ISO 8601 end, one hour after start if not stated"
}

Leave title, start and end empty when hasCalendarEvent is false.

`

func SummaryPrompt(email models.EmailContext) string {
	return languageLock + summaryInstructions + email.String()
}
