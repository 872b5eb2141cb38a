package generation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"retail_agent/internal/domain/entities"
	"retail_agent/internal/usecase/interfaces"
)

// Upstream produces reply text from a prompt and conversation history.
type Upstream interface {
	Generate(ctx context.Context, prompt string, history []entities.ChatMessage) (string, error)
}

const (
	baseBackoff        = 60 * time.Second
	maxBackoff         = time.Hour
	quotaBlockDuration = 24 * time.Hour
	upstreamTimeout    = 30 * time.Second
)

// Customer-facing texts for degraded paths. Callers always get text, never an
// error: a generation outage degrades the conversation, it must not break it.
const (
	offlineReply        = "My reply service isn't configured right now, but your cart and orders still work normally."
	quotaExhaustedReply = "I've reached my daily conversation limit. Please come back tomorrow - I'll be happy to help you then!"
	busyReply           = "I'm handling a lot of conversations right now. Please try again in a minute."
	rephraseReply       = "I wasn't able to respond to that as written. Could you rephrase your message?"
	genericFailureReply = "Something went wrong on my side while writing a reply. Please try again."
)

// Client wraps an Upstream with a circuit breaker so a throttled or
// exhausted model never stalls the conversation loop.
//
// Transient failures open the breaker with exponential backoff (doubling per
// consecutive failure, capped). Daily-quota exhaustion opens it for a fixed
// long block regardless of the failure count. While open, calls fast-fail
// with a friendly text and never contact the upstream. One success closes
// the breaker and resets the backoff entirely.
type Client struct {
	upstream Upstream
	now      func() time.Time

	mu                  sync.Mutex
	failCount           int
	disabledUntil       time.Time
	quotaExhaustedUntil time.Time
}

var _ interfaces.IGenerationGateway = (*Client)(nil)

func NewClient(upstream Upstream) *Client {
	return &Client{upstream: upstream, now: time.Now}
}

// GenerateReply returns reply text unconditionally; every failure mode maps
// to a customer-facing fallback.
func (c *Client) GenerateReply(ctx context.Context, prompt string, history []entities.ChatMessage) string {
	if c.upstream == nil {
		return offlineReply
	}
	if text, open := c.fastFail(); open {
		return text
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, upstreamTimeout)
		defer cancel()
	}

	text, err := c.upstream.Generate(ctx, prompt, history)
	if err != nil {
		return c.recordFailure(err)
	}

	c.recordSuccess()
	if strings.TrimSpace(text) == "" {
		return genericFailureReply
	}
	return text
}

// fastFail answers from the open breaker without touching the upstream.
func (c *Client) fastFail() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if now.Before(c.quotaExhaustedUntil) {
		return quotaExhaustedReply, true
	}
	if now.Before(c.disabledUntil) {
		remaining := int(math.Ceil(c.disabledUntil.Sub(now).Seconds()))
		return fmt.Sprintf("I need a short break. Please try again in %d seconds.", remaining), true
	}
	return "", false
}

func (c *Client) recordSuccess() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.failCount > 0 {
		log.Printf("[generation][breaker] recovered after %d failure(s)", c.failCount)
	}
	c.failCount = 0
	c.disabledUntil = time.Time{}
	c.quotaExhaustedUntil = time.Time{}
}

// recordFailure classifies the error and returns the fallback text. Safety
// rejections are the customer's input, not upstream health, so they never
// advance the breaker.
func (c *Client) recordFailure(err error) string {
	if errors.Is(err, ErrContentRejected) {
		return rephraseReply
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var rateLimit *RateLimitError
	if errors.As(err, &rateLimit) && rateLimit.PerDay {
		c.quotaExhaustedUntil = c.now().Add(quotaBlockDuration)
		log.Printf("[generation][breaker] daily quota exhausted, blocked until %s", c.quotaExhaustedUntil.Format(time.RFC3339))
		return quotaExhaustedReply
	}

	c.failCount++
	backoff := backoffFor(c.failCount)
	c.disabledUntil = c.now().Add(backoff)
	log.Printf("[generation][breaker] upstream failure #%d, open for %s err=%v", c.failCount, backoff, err)

	if rateLimit != nil {
		return busyReply
	}
	return genericFailureReply
}

// backoffFor doubles the base per consecutive failure, capped.
func backoffFor(failCount int) time.Duration {
	d := baseBackoff
	for i := 1; i < failCount; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
