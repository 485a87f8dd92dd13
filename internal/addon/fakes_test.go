package addon_test

import (
	"context"

	"aidraft-addon/internal/models"
)

type fakeEmail struct {
	getMessage func(ctx context.Context, creds models.Credentials, messageID string) (*models.Message, error)
	getThread  func(ctx context.Context, creds models.Credentials, threadID string) ([]*models.Message, error)
}

func (f *fakeEmail) GetMessage(ctx context.Context, creds models.Credentials, messageID string) (*models.Message, error) {
	return f.getMessage(ctx, creds, messageID)
}

func (f *fakeEmail) GetThread(ctx context.Context, creds models.Credentials, threadID string) ([]*models.Message, error) {
	return f.getThread(ctx, creds, threadID)
}

type fakeCalendar struct {
	calls       int
	last        models.CalendarEventInput
	createEvent func(ctx context.Context, creds models.Credentials, input models.CalendarEventInput) (string, error)
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, creds models.Credentials, input models.CalendarEventInput) (string, error) {
	f.calls++
	f.last = input
	if f.createEvent == nil {
		return "evt-1", nil
	}
	return f.createEvent(ctx, creds, input)
}

type fakeGateway struct {
	prompts  []string
	generate func(ctx context.Context, req models.GenerationRequest) (string, error)
}

func (f *fakeGateway) Generate(ctx context.Context, req models.GenerationRequest) (string, error) {
	f.prompts = append(f.prompts, req.PromptText)
	return f.generate(ctx, req)
}

type fakeSummarizer struct {
	summarize func(ctx context.Context, msg *models.Message) (models.Summary, error)
}

func (f *fakeSummarizer) Summarize(ctx context.Context, msg *models.Message) (models.Summary, error) {
	return f.summarize(ctx, msg)
}

// event builders

func composeEvent(form map[string]string) *models.AddonEvent {
	inputs := map[string]models.FormInput{}
	for k, v := range form {
		inputs[k] = models.FormInput{StringInputs: &models.StringInputs{Value: []string{v}}}
	}
	return &models.AddonEvent{
		CommonEventObject:        models.CommonEventObject{HostApp: "GMAIL", FormInputs: inputs},
		AuthorizationEventObject: models.AuthorizationEventObject{UserOAuthToken: "ya29.user"},
	}
}

func paramEvent(params map[string]string) *models.AddonEvent {
	return &models.AddonEvent{
		CommonEventObject:        models.CommonEventObject{HostApp: "GMAIL", Parameters: params},
		AuthorizationEventObject: models.AuthorizationEventObject{UserOAuthToken: "ya29.user"},
	}
}

func messageEvent(messageID, threadID string) *models.AddonEvent {
	return &models.AddonEvent{
		CommonEventObject:        models.CommonEventObject{HostApp: "GMAIL"},
		AuthorizationEventObject: models.AuthorizationEventObject{UserOAuthToken: "ya29.user"},
		Gmail:                    &models.GmailEventObject{MessageID: messageID, ThreadID: threadID, AccessToken: "gm-access"},
	}
}
