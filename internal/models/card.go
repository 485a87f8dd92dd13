package models

// Card documents follow the Workspace add-on Cards v2 JSON shape.

type Card struct {
	Header   *CardHeader `json:"header,omitempty"`
	Sections []Section   `json:"sections"`
}

type CardHeader struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
}

type Section struct {
	Header  string   `json:"header,omitempty"`
	Widgets []Widget `json:"widgets"`
}

// Widget is a one-of: exactly one field is set.
type Widget struct {
	TextParagraph *TextParagraph `json:"textParagraph,omitempty"`
	DecoratedText *DecoratedText `json:"decoratedText,omitempty"`
	TextInput     *TextInput     `json:"textInput,omitempty"`
	ButtonList    *ButtonList    `json:"buttonList,omitempty"`
}

type TextParagraph struct {
	Text string `json:"text"`
}

type DecoratedText struct {
	TopLabel string `json:"topLabel,omitempty"`
	Text     string `json:"text"`
	WrapText bool   `json:"wrapText,omitempty"`
}

const (
	TextInputSingleLine   = "SINGLE_LINE"
	TextInputMultipleLine = "MULTIPLE_LINE"
)

type TextInput struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	HintText string `json:"hintText,omitempty"`
	Type     string `json:"type,omitempty"`
	Value    string `json:"value,omitempty"`
}

type ButtonList struct {
	Buttons []Button `json:"buttons"`
}

type Button struct {
	Text    string  `json:"text"`
	OnClick OnClick `json:"onClick"`
}

type OnClick struct {
	Action Action `json:"action"`
}

// Action points the host at an HTTP endpoint of this service.
type Action struct {
	Function   string            `json:"function"`
	Parameters []ActionParameter `json:"parameters,omitempty"`
}

type ActionParameter struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Navigation struct {
	PushCard   *Card `json:"pushCard,omitempty"`
	UpdateCard *Card `json:"updateCard,omitempty"`
}

type Notification struct {
	Text string `json:"text"`
}

type RenderAction struct {
	Navigations  []Navigation  `json:"navigations,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
}

type RenderActions struct {
	Action RenderAction `json:"action"`
}

// ActionResponse is what trigger and action endpoints return. Homepage
// triggers use Action; card actions use RenderActions.
type ActionResponse struct {
	Action        *RenderAction  `json:"action,omitempty"`
	RenderActions *RenderActions `json:"renderActions,omitempty"`
}

func PushCard(card Card) ActionResponse {
	return ActionResponse{
		Action: &RenderAction{Navigations: []Navigation{{PushCard: &card}}},
	}
}

func UpdateCard(card Card) ActionResponse {
	return ActionResponse{
		RenderActions: &RenderActions{
			Action: RenderAction{Navigations: []Navigation{{UpdateCard: &card}}},
		},
	}
}

func Notify(text string) ActionResponse {
	return ActionResponse{
		RenderActions: &RenderActions{
			Action: RenderAction{Notification: &Notification{Text: text}},
		},
	}
}

type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}
