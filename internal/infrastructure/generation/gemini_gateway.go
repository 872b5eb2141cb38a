package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"retail_agent/internal/domain/entities"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

const systemInstruction = "You are a friendly retail shopping assistant for an online store. " +
	"Keep replies short, warm and conversational. When the prompt includes product, cart or " +
	"order facts, use only those facts; never invent products, prices or order details."

// GeminiUpstream calls the Gemini API through the official client and
// normalizes its failure modes into breaker-classifiable errors.
type GeminiUpstream struct {
	client *genai.Client
	model  string
}

var _ Upstream = (*GeminiUpstream)(nil)

func NewGeminiUpstream(ctx context.Context, apiKey, model string) (*GeminiUpstream, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiUpstream{client: client, model: model}, nil
}

func (g *GeminiUpstream) Generate(ctx context.Context, prompt string, history []entities.ChatMessage) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, m := range history {
		var role genai.Role = genai.RoleUser
		if m.Role == entities.ChatRoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(prompt, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](0.7),
		TopP:              genai.Ptr[float32](0.95),
		TopK:              genai.Ptr[float32](40),
		MaxOutputTokens:   8192,
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", classifyAPIError(err)
	}
	if blocked(resp) {
		return "", ErrContentRejected
	}
	return resp.Text(), nil
}

// classifyAPIError maps Gemini API errors onto the breaker's taxonomy.
func classifyAPIError(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.Code {
	case 429:
		return &RateLimitError{
			PerDay:  isDailyQuotaMessage(apiErr.Message),
			Message: apiErr.Message,
		}
	case 400:
		if strings.Contains(strings.ToLower(apiErr.Message), "safety") {
			return ErrContentRejected
		}
	}
	return err
}

// isDailyQuotaMessage detects daily-quota exhaustion in a 429 body, as
// opposed to per-minute throttling.
func isDailyQuotaMessage(message string) bool {
	m := strings.ToLower(strings.ReplaceAll(message, " ", ""))
	return strings.Contains(m, "perday") || strings.Contains(m, "generaterequestsperday")
}

// blocked reports whether the response was withheld by safety filters rather
// than generated.
func blocked(resp *genai.GenerateContentResponse) bool {
	if resp == nil {
		return true
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockedReasonUnspecified {
		return true
	}
	for _, c := range resp.Candidates {
		switch c.FinishReason {
		case genai.FinishReasonSafety, genai.FinishReasonProhibitedContent, genai.FinishReasonBlocklist:
			return true
		}
	}
	return false
}
