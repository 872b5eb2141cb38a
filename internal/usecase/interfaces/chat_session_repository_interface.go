package interfaces

import (
	"context"

	"retail_agent/internal/domain/entities"
)

// IChatSessionRepository abstracts DynamoDB persistence for ChatSession.
//
// History is append-only from the engine's perspective; Clear exists only for
// the explicit clear-history intent.

type IChatSessionRepository interface {
	GetRecent(ctx context.Context, sessionID string, limit int) ([]entities.ChatMessage, error)
	Append(ctx context.Context, sessionID, userID string, messages ...entities.ChatMessage) error
	Clear(ctx context.Context, sessionID string) error
}
