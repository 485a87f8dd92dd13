package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"aidraft-addon/config"
	"aidraft-addon/internal/apperr"
	"aidraft-addon/internal/models"
)

const openAIProvider = "OpenAI"

// OpenAIService is the chat-completions alternative to VertexService.
type OpenAIService struct {
	client *openai.Client
	model  string
	log    zerolog.Logger
}

func NewOpenAIService(cfg *config.Config, log zerolog.Logger) *OpenAIService {
	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = strings.TrimSuffix(cfg.OpenAIBaseURL, "/")
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.AIRequestTimeout}

	return &OpenAIService{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.OpenAIModel,
		log:    log.With().Str("component", "openai").Logger(),
	}
}

func (s *OpenAIService) Generate(ctx context.Context, req models.GenerationRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemInstruction != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemInstruction,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.PromptText,
	})

	start := time.Now()
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxOutputTokens,
	})
	if err != nil {
		s.log.Error().Err(err).Dur("latency", time.Since(start)).Msg("chat completion failed")
		return "", mapOpenAIError(err)
	}

	s.log.Info().
		Dur("latency", time.Since(start)).
		Int("total_tokens", resp.Usage.TotalTokens).
		Msg("chat completion")

	if len(resp.Choices) == 0 {
		return "", apperr.EmptyResponse("No choices in response", "")
	}

	choice := resp.Choices[0]
	text := strings.TrimSpace(choice.Message.Content)
	if text == "" {
		reason := string(choice.FinishReason)
		return "", apperr.EmptyResponse("No content in response. Finish reason: "+reason, reason)
	}

	return text, nil
}

func mapOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apperr.Upstream(openAIProvider, apiErr.HTTPStatusCode, apiErr.Message)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		detail := ""
		if reqErr.Err != nil {
			detail = reqErr.Err.Error()
		}
		return apperr.Upstream(openAIProvider, reqErr.HTTPStatusCode, detail)
	}

	return fmt.Errorf("%s request failed: %w", openAIProvider, err)
}
