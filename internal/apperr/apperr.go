// Package apperr defines the error kinds surfaced by add-on actions.
//
// The message of an *Error is meant for the user: action handlers render it
// verbatim on the error card.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error.
type Kind string

const (
	KindValidation       Kind = "ValidationError"
	KindUpstream         Kind = "UpstreamError"
	KindEmptyResponse    Kind = "EmptyResponse"
	KindHostCollaborator Kind = "HostCollaboratorError"
	KindUnknown          Kind = "Unknown"
)

// Error is a classified add-on error.
type Error struct {
	Kind    Kind
	Message string

	// Status and Body are set for KindUpstream.
	Status int
	Body   string

	// FinishReason is set for KindEmptyResponse when the model reported one.
	FinishReason string

	Err error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports missing or malformed user input.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// Validationf is Validation with formatting.
func Validationf(format string, args ...any) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

// Upstream reports a non-2xx answer from the AI endpoint. status and body are
// kept verbatim.
func Upstream(provider string, status int, body string) *Error {
	return &Error{
		Kind:    KindUpstream,
		Message: fmt.Sprintf("%s API call failed: %d - %s", provider, status, body),
		Status:  status,
		Body:    body,
	}
}

// EmptyResponse reports a successful AI call without usable text.
func EmptyResponse(message, finishReason string) *Error {
	return &Error{
		Kind:         KindEmptyResponse,
		Message:      message,
		FinishReason: finishReason,
	}
}

// HostCollaborator wraps a failure of the email or calendar API.
func HostCollaborator(op string, err error) *Error {
	return &Error{
		Kind:    KindHostCollaborator,
		Message: fmt.Sprintf("%s: %v", op, err),
		Err:     err,
	}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
