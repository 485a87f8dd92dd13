package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"aidraft-addon/internal/models"
	"aidraft-addon/internal/utils"
)

// SummaryService summarizes a message and extracts a calendar event from it
// in a single model call.
type SummaryService struct {
	gateway AIGateway
	log     zerolog.Logger
}

func NewSummaryService(gateway AIGateway, log zerolog.Logger) *SummaryService {
	return &SummaryService{
		gateway: gateway,
		log:     log.With().Str("component", "summary").Logger(),
	}
}

type summaryPayload struct {
	Summary string `json:"summary"`
	models.CalendarExtraction
}

// Summarize returns the model's summary. When the answer is not the requested
// JSON the raw text becomes the summary and no event is offered.
func (s *SummaryService) Summarize(ctx context.Context, msg *models.Message) (models.Summary, error) {
	prompt := SummaryPrompt(models.NewEmailContext(msg))

	raw, err := s.gateway.Generate(ctx, models.NewGenerationRequest(prompt))
	if err != nil {
		return models.Summary{}, err
	}

	var payload summaryPayload
	if err := utils.ParseJSON(extractJSONObject(raw), &payload); err != nil {
		s.log.Warn().Err(err).Str("message_id", msg.ID).Msg("summary was not JSON, using raw text")
		return models.Summary{Text: raw}, nil
	}

	text := strings.TrimSpace(payload.Summary)
	if text == "" {
		text = raw
	}

	return models.Summary{
		Text:     text,
		Calendar: payload.CalendarExtraction.Normalize(),
	}, nil
}

// extractJSONObject strips markdown fences and any prose around the outermost
// JSON object.
func extractJSONObject(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return s
	}
	return s[start : end+1]
}
