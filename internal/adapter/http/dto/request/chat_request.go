package request

import "strings"

// ChatRequest is the conversational entry payload. SessionID is optional;
// when absent the conversation is keyed by user id.
type ChatRequest struct {
	UserID    string `json:"user_id" binding:"required"`
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

func (r ChatRequest) ResolveUserID() string {
	return strings.TrimSpace(r.UserID)
}

func (r ChatRequest) ResolveSessionID() string {
	if v := strings.TrimSpace(r.SessionID); v != "" {
		return v
	}
	return r.ResolveUserID()
}

func (r ChatRequest) ResolveMessage() string {
	return strings.TrimSpace(r.Message)
}
