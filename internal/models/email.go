package models

import (
	"strings"
	"time"

	"aidraft-addon/internal/apperr"
	"aidraft-addon/internal/utils"
)

const (
	// MaxContextBodyRunes caps the email body sent to the model.
	MaxContextBodyRunes = 3000
	TruncationMarker    = "\n\n[... truncated for length ...]"

	DefaultTemperature     = 0.7
	DefaultMaxOutputTokens = 2048
	SystemInstruction      = "You are a helpful email assistant. Respond directly without extended thinking."
)

// Message is a fetched Gmail message reduced to what the add-on shows.
type Message struct {
	ID           string    `json:"id"`
	ThreadID     string    `json:"threadId"`
	Subject      string    `json:"subject"`
	From         string    `json:"from"`
	Body         string    `json:"body"`
	InternalDate time.Time `json:"internalDate"`
}

// EmailContext is the part of a message handed to the model.
type EmailContext struct {
	From      string
	Subject   string
	Body      string
	Truncated bool
}

func NewEmailContext(msg *Message) EmailContext {
	body, cut := utils.TruncateRunes(msg.Body, MaxContextBodyRunes)
	if cut {
		body += TruncationMarker
	}
	return EmailContext{
		From:      msg.From,
		Subject:   msg.Subject,
		Body:      body,
		Truncated: cut,
	}
}

func (c EmailContext) String() string {
	return "From: " + c.From + "\nSubject: " + c.Subject + "\n\n" + c.Body
}

type ComposeRequest struct {
	UserInput string `json:"userInput"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
}

func (r ComposeRequest) Validate() error {
	if strings.TrimSpace(r.UserInput) == "" {
		return apperr.Validation("Please enter some content first.")
	}
	return nil
}

type GenerationRequest struct {
	PromptText        string
	SystemInstruction string
	Temperature       float32
	MaxOutputTokens   int
}

func NewGenerationRequest(prompt string) GenerationRequest {
	return GenerationRequest{
		PromptText:        prompt,
		SystemInstruction: SystemInstruction,
		Temperature:       DefaultTemperature,
		MaxOutputTokens:   DefaultMaxOutputTokens,
	}
}

// CalendarExtraction is the event the model found in an email, if any.
// Start and End are ISO-8601 strings as the model wrote them.
type CalendarExtraction struct {
	HasCalendarEvent bool   `json:"hasCalendarEvent"`
	Title            string `json:"title,omitempty"`
	Start            string `json:"start,omitempty"`
	End              string `json:"end,omitempty"`
}

// Normalize trims the fields and drops the event when any of them is missing.
func (c CalendarExtraction) Normalize() CalendarExtraction {
	c.Title = strings.TrimSpace(c.Title)
	c.Start = strings.TrimSpace(c.Start)
	c.End = strings.TrimSpace(c.End)
	if c.Title == "" || c.Start == "" || c.End == "" {
		c.HasCalendarEvent = false
	}
	return c
}

type Summary struct {
	Text     string
	Calendar CalendarExtraction
}

// CalendarEventInput is a validated event ready for the calendar API.
type CalendarEventInput struct {
	Title    string
	Start    time.Time
	End      time.Time
	TimeZone string
}
