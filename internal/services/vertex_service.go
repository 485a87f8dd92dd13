package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"aidraft-addon/config"
	"aidraft-addon/internal/apperr"
	"aidraft-addon/internal/models"
)

const vertexProvider = "Vertex AI"

// VertexService calls the Vertex AI generateContent REST endpoint.
type VertexService struct {
	url    string
	client *http.Client
	log    zerolog.Logger
}

// NewVertexService builds a client for cfg.VertexURL(). Requests carry a
// bearer token from tokens; a nil source sends none, which only mock
// endpoints accept.
func NewVertexService(cfg *config.Config, tokens oauth2.TokenSource, log zerolog.Logger) *VertexService {
	client := &http.Client{Timeout: cfg.AIRequestTimeout}
	if tokens != nil {
		client.Transport = &oauth2.Transport{Source: tokens}
	}

	return &VertexService{
		url:    cfg.VertexURL(),
		client: client,
		log:    log.With().Str("component", "vertex").Logger(),
	}
}

type vertexPart struct {
	Text string `json:"text"`
}

type vertexContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []vertexPart `json:"parts"`
}

type vertexRequest struct {
	Contents          []vertexContent `json:"contents"`
	GenerationConfig  vertexGenConfig `json:"generationConfig"`
	SystemInstruction *vertexContent  `json:"systemInstruction,omitempty"`
}

type vertexGenConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type vertexResponse struct {
	Candidates []struct {
		Content      vertexContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
}

func (s *VertexService) Generate(ctx context.Context, req models.GenerationRequest) (string, error) {
	payload := vertexRequest{
		Contents: []vertexContent{
			{Role: "user", Parts: []vertexPart{{Text: req.PromptText}}},
		},
		GenerationConfig: vertexGenConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxOutputTokens,
		},
	}
	if req.SystemInstruction != "" {
		payload.SystemInstruction = &vertexContent{Parts: []vertexPart{{Text: req.SystemInstruction}}}
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.log.Error().Err(err).Dur("latency", time.Since(start)).Msg("generateContent request failed")
		return "", fmt.Errorf("%s request failed: %w", vertexProvider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read %s response: %w", vertexProvider, err)
	}

	s.log.Info().
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Int("prompt_chars", len(req.PromptText)).
		Msg("generateContent")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", apperr.Upstream(vertexProvider, resp.StatusCode, string(body))
	}

	var parsed vertexResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse %s response: %w", vertexProvider, err)
	}

	if len(parsed.Candidates) == 0 {
		return "", apperr.EmptyResponse("No candidates in response: "+string(body), "")
	}

	candidate := parsed.Candidates[0]
	if len(candidate.Content.Parts) == 0 || strings.TrimSpace(candidate.Content.Parts[0].Text) == "" {
		reason := candidate.FinishReason
		if reason == "" {
			reason = "unknown"
		}
		return "", apperr.EmptyResponse("No content parts in response. Finish reason: "+reason, candidate.FinishReason)
	}

	return strings.TrimSpace(candidate.Content.Parts[0].Text), nil
}
