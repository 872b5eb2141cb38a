package interfaces

import (
	"context"

	"retail_agent/internal/domain/entities"
)

// IGenerationGateway abstracts the external text-generation service
// (Gemini behind a circuit breaker).
//
// GenerateReply never fails from the caller's point of view: upstream
// outages, quota exhaustion and safety blocks are converted to deterministic
// user-facing text inside the gateway, so handlers need no generation-specific
// error handling.

type IGenerationGateway interface {
	GenerateReply(ctx context.Context, prompt string, history []entities.ChatMessage) string
}
