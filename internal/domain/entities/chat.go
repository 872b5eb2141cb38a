package entities

import "time"

// Chat roles as stored in session history.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatMessage is one turn of a conversation.
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSession is the append-only per-session history document. The engine
// reads the most recent turns for prompt context and appends exactly one
// user turn and one assistant turn per processed message.
//
// Storage model (DynamoDB):
//   - PK: session_id
type ChatSession struct {
	SessionID string        `json:"session_id"`
	UserID    string        `json:"user_id"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
