package services

import (
	"context"

	"aidraft-addon/internal/models"
)

// AIGateway sends one generation request to a text model and returns the
// trimmed answer. Failures are *apperr.Error values of kind UpstreamError or
// EmptyResponse, or plain transport errors. There is no retry.
type AIGateway interface {
	Generate(ctx context.Context, req models.GenerationRequest) (string, error)
}
