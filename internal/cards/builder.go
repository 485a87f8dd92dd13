package cards

import (
	"fmt"

	"aidraft-addon/internal/models"
	"aidraft-addon/internal/utils"
)

// Action names. Buttons post to {baseURL}/addon/actions/{name}.
const (
	ActionGenerateCompose     = "generate-compose"
	ActionRegenerateCompose   = "regenerate-compose"
	ActionGoBackToCompose     = "go-back-to-compose"
	ActionGenerateReply       = "generate-reply"
	ActionRefreshLatestReply  = "refresh-latest-reply"
	ActionSummarizeEmail      = "summarize-email"
	ActionCreateCalendarEvent = "create-calendar-event"
	ActionGoBackToReply       = "go-back-to-reply"
)

// ActionPath is the route prefix action callbacks are served under.
const ActionPath = "/addon/actions/"

const previewRunes = 150

// Builder renders states into cards. It does no I/O.
type Builder struct {
	baseURL string
}

func NewBuilder(baseURL string) *Builder {
	return &Builder{baseURL: baseURL}
}

// ActionURL is the absolute endpoint the host calls for an action.
func (b *Builder) ActionURL(name string) string {
	return b.baseURL + ActionPath + name
}

func (b *Builder) Build(state State) models.Card {
	switch s := state.(type) {
	case ComposeForm:
		return b.composeCard()
	case ReplyPreview:
		return b.replyPreviewCard(s)
	case GeneratedDraft:
		return b.draftCard(s)
	case GeneratedReply:
		return b.replyCard(s)
	case SummaryView:
		return b.summaryCard(s)
	case ErrorView:
		return b.errorCard(s)
	default:
		return b.errorCard(ErrorView{Message: fmt.Sprintf("unknown view %T", state)})
	}
}

func (b *Builder) composeCard() models.Card {
	widgets := []models.Widget{
		textInput("recipient", "To (Recipient)", "e.g., john@example.com", models.TextInputSingleLine),
		paragraph("<b>What do you want to say:</b>"),
		textInput("userInput", "Email Content", "e.g., Ask about project deadline, Thank them for meeting...", models.TextInputMultipleLine),
		buttons(b.button("Generate Draft", ActionGenerateCompose)),
	}
	return card("✉️ Email Draft Generator", models.Section{Widgets: widgets})
}

func (b *Builder) replyPreviewCard(s ReplyPreview) models.Card {
	preview, _ := utils.TruncateRunes(s.Body, previewRunes)

	widgets := []models.Widget{
		decorated("From", s.From),
		decorated("Subject", s.Subject),
		paragraph("<b>Preview:</b><br>" + utils.CardText(preview) + "..."),
		paragraph("<i>Click the button below to generate an AI reply.</i>"),
		buttons(
			b.button("Generate AI Reply", ActionGenerateReply, param("messageId", s.MessageID)),
			b.button("Summarize", ActionSummarizeEmail, param("messageId", s.MessageID)),
			b.button("Latest in Thread", ActionRefreshLatestReply,
				param("messageId", s.MessageID),
				param("threadId", s.ThreadID),
			),
		),
	}
	return card("📧 Email Reply Generator", models.Section{Widgets: widgets})
}

func (b *Builder) draftCard(s GeneratedDraft) models.Card {
	var widgets []models.Widget
	if s.Recipient != "" {
		widgets = append(widgets, decorated("To", s.Recipient))
	}
	if s.Subject != "" {
		widgets = append(widgets, decorated("Subject", s.Subject))
	}

	widgets = append(widgets,
		paragraph("<b>AI Generated Draft:</b>"),
		paragraph(utils.CardText(s.Draft)),
		buttons(
			b.button("🔄 Regenerate", ActionRegenerateCompose,
				param("userInput", s.UserInput),
				param("recipient", s.Recipient),
				param("subject", s.Subject),
			),
			b.button("◀ Back", ActionGoBackToCompose),
		),
	)

	title := "✨ Draft Generated"
	if s.WasRegenerated {
		title = "✨ Draft Regenerated"
	}
	return card(title, models.Section{Widgets: widgets})
}

func (b *Builder) replyCard(s GeneratedReply) models.Card {
	widgets := []models.Widget{
		paragraph("<b>AI Generated Reply:</b>"),
		paragraph(utils.CardText(s.Reply)),
		buttons(
			b.button("🔄 Regenerate", ActionGenerateReply, param("messageId", s.MessageID)),
			b.button("◀ Back", ActionGoBackToReply, param("messageId", s.MessageID)),
		),
	}
	return card("✨ AI Reply Generated", models.Section{Widgets: widgets})
}

func (b *Builder) summaryCard(s SummaryView) models.Card {
	sections := []models.Section{{
		Widgets: []models.Widget{
			paragraph("<b>Summary:</b>"),
			paragraph(utils.CardText(s.Summary)),
		},
	}}

	if s.Calendar.HasCalendarEvent {
		sections = append(sections, models.Section{
			Header: "Detected event",
			Widgets: []models.Widget{
				decorated("Title", s.Calendar.Title),
				decorated("Start", s.Calendar.Start),
				decorated("End", s.Calendar.End),
				buttons(b.button("📅 Add to Calendar", ActionCreateCalendarEvent,
					param("title", s.Calendar.Title),
					param("start", s.Calendar.Start),
					param("end", s.Calendar.End),
				)),
			},
		})
	}

	sections = append(sections, models.Section{
		Widgets: []models.Widget{
			buttons(b.button("◀ Back", ActionGoBackToReply, param("messageId", s.MessageID))),
		},
	})

	return models.Card{
		Header:   &models.CardHeader{Title: "📝 Email Summary"},
		Sections: sections,
	}
}

func (b *Builder) errorCard(s ErrorView) models.Card {
	back := b.button("◀ Back", ActionGoBackToCompose)
	if s.MessageID != "" {
		back = b.button("◀ Back", ActionGoBackToReply, param("messageId", s.MessageID))
	}

	widgets := []models.Widget{
		paragraph("Error: " + utils.CardText(s.Message)),
		buttons(back),
	}
	return card("❌ Error", models.Section{Widgets: widgets})
}

func (b *Builder) button(text, action string, params ...models.ActionParameter) models.Button {
	return models.Button{
		Text: text,
		OnClick: models.OnClick{
			Action: models.Action{
				Function:   b.ActionURL(action),
				Parameters: params,
			},
		},
	}
}

func card(title string, sections ...models.Section) models.Card {
	return models.Card{
		Header:   &models.CardHeader{Title: title},
		Sections: sections,
	}
}

func param(key, value string) models.ActionParameter {
	return models.ActionParameter{Key: key, Value: value}
}

func paragraph(text string) models.Widget {
	return models.Widget{TextParagraph: &models.TextParagraph{Text: text}}
}

func decorated(label, text string) models.Widget {
	return models.Widget{DecoratedText: &models.DecoratedText{
		TopLabel: label,
		Text:     utils.CardText(text),
		WrapText: true,
	}}
}

func textInput(name, label, hint, kind string) models.Widget {
	return models.Widget{TextInput: &models.TextInput{
		Name:     name,
		Label:    label,
		HintText: hint,
		Type:     kind,
	}}
}

func buttons(list ...models.Button) models.Widget {
	return models.Widget{ButtonList: &models.ButtonList{Buttons: list}}
}
