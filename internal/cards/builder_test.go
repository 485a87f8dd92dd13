package cards_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aidraft-addon/internal/cards"
	"aidraft-addon/internal/models"
)

const baseURL = "https://addon.example.com"

func newBuilder() *cards.Builder {
	return cards.NewBuilder(baseURL)
}

// collect flattens a card into its widgets, in order.
func collect(card models.Card) []models.Widget {
	var out []models.Widget
	for _, s := range card.Sections {
		out = append(out, s.Widgets...)
	}
	return out
}

func allButtons(card models.Card) []models.Button {
	var out []models.Button
	for _, w := range collect(card) {
		if w.ButtonList != nil {
			out = append(out, w.ButtonList.Buttons...)
		}
	}
	return out
}

func findButton(t *testing.T, card models.Card, text string) models.Button {
	t.Helper()
	for _, b := range allButtons(card) {
		if b.Text == text {
			return b
		}
	}
	require.Failf(t, "button not found", "no button %q", text)
	return models.Button{}
}

func params(b models.Button) map[string]string {
	out := map[string]string{}
	for _, p := range b.OnClick.Action.Parameters {
		out[p.Key] = p.Value
	}
	return out
}

func texts(card models.Card) string {
	var b strings.Builder
	for _, w := range collect(card) {
		switch {
		case w.TextParagraph != nil:
			b.WriteString(w.TextParagraph.Text + "\n")
		case w.DecoratedText != nil:
			b.WriteString(w.DecoratedText.TopLabel + "=" + w.DecoratedText.Text + "\n")
		}
	}
	return b.String()
}

func TestComposeForm(t *testing.T) {
	card := newBuilder().Build(cards.ComposeForm{})

	assert.Equal(t, "✉️ Email Draft Generator", card.Header.Title)

	var inputs []string
	for _, w := range collect(card) {
		if w.TextInput != nil {
			inputs = append(inputs, w.TextInput.Name)
		}
	}
	assert.Equal(t, []string{"recipient", "userInput"}, inputs)

	btn := findButton(t, card, "Generate Draft")
	assert.Equal(t, baseURL+"/addon/actions/generate-compose", btn.OnClick.Action.Function)
	assert.Empty(t, btn.OnClick.Action.Parameters)
}

func TestReplyPreview(t *testing.T) {
	body := strings.Repeat("x", 200)
	card := newBuilder().Build(cards.ReplyPreview{
		MessageID: "m1",
		ThreadID:  "t1",
		From:      "Bob <bob@example.com>",
		Subject:   "Lunch",
		Body:      body,
	})

	assert.Equal(t, "📧 Email Reply Generator", card.Header.Title)

	out := texts(card)
	assert.Contains(t, out, "From=Bob &lt;bob@example.com&gt;")
	assert.Contains(t, out, "Subject=Lunch")
	assert.Contains(t, out, "<b>Preview:</b><br>"+strings.Repeat("x", 150)+"...")
	assert.NotContains(t, out, strings.Repeat("x", 151))

	assert.Equal(t, map[string]string{"messageId": "m1"}, params(findButton(t, card, "Generate AI Reply")))
	assert.Equal(t, map[string]string{"messageId": "m1"}, params(findButton(t, card, "Summarize")))

	latest := findButton(t, card, "Latest in Thread")
	assert.Equal(t, baseURL+"/addon/actions/refresh-latest-reply", latest.OnClick.Action.Function)
	assert.Equal(t, map[string]string{"messageId": "m1", "threadId": "t1"}, params(latest))
}

func TestGeneratedDraft(t *testing.T) {
	cases := []struct {
		name      string
		state     cards.GeneratedDraft
		wantTitle string
		wantTo    bool
	}{
		{
			name:      "first draft without recipient",
			state:     cards.GeneratedDraft{Draft: "Hello", UserInput: "Ask about the deadline"},
			wantTitle: "✨ Draft Generated",
		},
		{
			name:      "regenerated with recipient",
			state:     cards.GeneratedDraft{Draft: "Hello", UserInput: "x", Recipient: "a@example.com", Subject: "Hi", WasRegenerated: true},
			wantTitle: "✨ Draft Regenerated",
			wantTo:    true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			card := newBuilder().Build(tc.state)
			assert.Equal(t, tc.wantTitle, card.Header.Title)

			out := texts(card)
			assert.Equal(t, tc.wantTo, strings.Contains(out, "To="))
			assert.Contains(t, out, "<b>AI Generated Draft:</b>")

			regen := findButton(t, card, "🔄 Regenerate")
			assert.Equal(t, baseURL+"/addon/actions/regenerate-compose", regen.OnClick.Action.Function)
			assert.Equal(t, map[string]string{
				"userInput": tc.state.UserInput,
				"recipient": tc.state.Recipient,
				"subject":   tc.state.Subject,
			}, params(regen))

			back := findButton(t, card, "◀ Back")
			assert.Equal(t, baseURL+"/addon/actions/go-back-to-compose", back.OnClick.Action.Function)
		})
	}
}

func TestGeneratedDraftEscapesText(t *testing.T) {
	card := newBuilder().Build(cards.GeneratedDraft{Draft: "Hi <script>x</script>\nBye"})
	assert.Contains(t, texts(card), "Hi &lt;script&gt;x&lt;/script&gt;<br>Bye")
}

func TestGeneratedReply(t *testing.T) {
	card := newBuilder().Build(cards.GeneratedReply{Reply: "Thanks!", MessageID: "m1"})

	assert.Equal(t, "✨ AI Reply Generated", card.Header.Title)
	assert.Contains(t, texts(card), "Thanks!")

	regen := findButton(t, card, "🔄 Regenerate")
	assert.Equal(t, baseURL+"/addon/actions/generate-reply", regen.OnClick.Action.Function)
	assert.Equal(t, map[string]string{"messageId": "m1"}, params(regen))

	back := findButton(t, card, "◀ Back")
	assert.Equal(t, baseURL+"/addon/actions/go-back-to-reply", back.OnClick.Action.Function)
}

func TestSummaryViewCalendarAction(t *testing.T) {
	withEvent := cards.SummaryView{
		Summary:   "Bob proposes a sync.",
		MessageID: "m1",
		Calendar: models.CalendarExtraction{
			HasCalendarEvent: true,
			Title:            "Test Meeting",
			Start:            "2024-01-15T14:00:00-08:00",
			End:              "2024-01-15T15:00:00-08:00",
		},
	}

	card := newBuilder().Build(withEvent)
	assert.Equal(t, "📝 Email Summary", card.Header.Title)

	add := findButton(t, card, "📅 Add to Calendar")
	assert.Equal(t, baseURL+"/addon/actions/create-calendar-event", add.OnClick.Action.Function)
	assert.Equal(t, map[string]string{
		"title": "Test Meeting",
		"start": "2024-01-15T14:00:00-08:00",
		"end":   "2024-01-15T15:00:00-08:00",
	}, params(add))
	assert.Contains(t, texts(card), "Title=Test Meeting")

	withoutEvent := withEvent
	withoutEvent.Calendar = models.CalendarExtraction{}
	card = newBuilder().Build(withoutEvent)

	for _, b := range allButtons(card) {
		assert.NotEqual(t, baseURL+"/addon/actions/create-calendar-event", b.OnClick.Action.Function)
	}
	assert.NotContains(t, texts(card), "Title=")
	assert.Contains(t, texts(card), "Bob proposes a sync.")
}

func TestErrorView(t *testing.T) {
	cases := []struct {
		name       string
		state      cards.ErrorView
		wantAction string
	}{
		{name: "compose context", state: cards.ErrorView{Message: "Please enter some content first."}, wantAction: "go-back-to-compose"},
		{name: "reply context", state: cards.ErrorView{Message: "boom", MessageID: "m1"}, wantAction: "go-back-to-reply"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			card := newBuilder().Build(tc.state)
			assert.Equal(t, "❌ Error", card.Header.Title)
			assert.Contains(t, texts(card), "Error: "+tc.state.Message)

			btns := allButtons(card)
			require.Len(t, btns, 1)
			assert.Equal(t, baseURL+"/addon/actions/"+tc.wantAction, btns[0].OnClick.Action.Function)
		})
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	state := cards.ReplyPreview{MessageID: "m1", From: "a", Subject: "b", Body: "c"}
	assert.Equal(t, newBuilder().Build(state), newBuilder().Build(state))
}
