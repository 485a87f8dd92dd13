package models

import "strings"

// AddonEvent is the event object the Workspace add-on host POSTs to every
// trigger and action endpoint.
type AddonEvent struct {
	CommonEventObject        CommonEventObject        `json:"commonEventObject"`
	AuthorizationEventObject AuthorizationEventObject `json:"authorizationEventObject"`
	Gmail                    *GmailEventObject        `json:"gmail,omitempty"`
}

type CommonEventObject struct {
	HostApp    string               `json:"hostApp,omitempty"`
	Platform   string               `json:"platform,omitempty"`
	UserLocale string               `json:"userLocale,omitempty"`
	TimeZone   *TimeZone            `json:"timeZone,omitempty"`
	FormInputs map[string]FormInput `json:"formInputs,omitempty"`
	Parameters map[string]string    `json:"parameters,omitempty"`
}

type TimeZone struct {
	ID     string `json:"id"`
	Offset int    `json:"offset"` // milliseconds from UTC
}

type FormInput struct {
	StringInputs *StringInputs `json:"stringInputs,omitempty"`
}

type StringInputs struct {
	Value []string `json:"value"`
}

type AuthorizationEventObject struct {
	UserOAuthToken string `json:"userOAuthToken,omitempty"`
	UserIDToken    string `json:"userIdToken,omitempty"`
	SystemIDToken  string `json:"systemIdToken,omitempty"`
}

type GmailEventObject struct {
	MessageID   string `json:"messageId,omitempty"`
	ThreadID    string `json:"threadId,omitempty"`
	AccessToken string `json:"accessToken,omitempty"`
}

// Credentials are the per-request tokens the host hands us for Gmail and
// Calendar calls.
type Credentials struct {
	OAuthToken       string
	GmailAccessToken string
}

// MessageID is empty for compose-context events.
func (e *AddonEvent) MessageID() string {
	if e == nil || e.Gmail == nil {
		return ""
	}
	return e.Gmail.MessageID
}

func (e *AddonEvent) ThreadID() string {
	if e == nil || e.Gmail == nil {
		return ""
	}
	return e.Gmail.ThreadID
}

// Parameter returns an action parameter set on the button that fired the event.
func (e *AddonEvent) Parameter(key string) string {
	if e == nil {
		return ""
	}
	return e.CommonEventObject.Parameters[key]
}

// FormValue returns the first value of a text input, or "".
func (e *AddonEvent) FormValue(name string) string {
	if e == nil {
		return ""
	}
	input, ok := e.CommonEventObject.FormInputs[name]
	if !ok || input.StringInputs == nil || len(input.StringInputs.Value) == 0 {
		return ""
	}
	return input.StringInputs.Value[0]
}

func (e *AddonEvent) Credentials() Credentials {
	if e == nil {
		return Credentials{}
	}
	creds := Credentials{OAuthToken: e.AuthorizationEventObject.UserOAuthToken}
	if e.Gmail != nil {
		creds.GmailAccessToken = e.Gmail.AccessToken
	}
	return creds
}

// TimeZoneID is the user's IANA zone, "" when the host did not send one.
func (e *AddonEvent) TimeZoneID() string {
	if e == nil || e.CommonEventObject.TimeZone == nil {
		return ""
	}
	return strings.TrimSpace(e.CommonEventObject.TimeZone.ID)
}
