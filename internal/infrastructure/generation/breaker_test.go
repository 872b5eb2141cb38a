package generation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"retail_agent/internal/domain/entities"
)

type stubUpstream struct {
	text  string
	err   error
	calls int
}

func (s *stubUpstream) Generate(ctx context.Context, prompt string, history []entities.ChatMessage) (string, error) {
	s.calls++
	return s.text, s.err
}

func newTestClient(up Upstream, at time.Time) (*Client, *time.Time) {
	clock := at
	c := NewClient(up)
	c.now = func() time.Time { return clock }
	return c, &clock
}

var t0 = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestClient_GenerateReply(t *testing.T) {
	ctx := context.Background()

	t.Run("passes text through on success", func(t *testing.T) {
		up := &stubUpstream{text: "Hello!"}
		c, _ := newTestClient(up, t0)

		if got := c.GenerateReply(ctx, "hi", nil); got != "Hello!" {
			t.Fatalf("expected upstream text, got %q", got)
		}
	})

	t.Run("nil upstream degrades to the offline reply", func(t *testing.T) {
		c, _ := newTestClient(nil, t0)

		if got := c.GenerateReply(ctx, "hi", nil); got != offlineReply {
			t.Fatalf("expected offline reply, got %q", got)
		}
	})

	t.Run("empty upstream text maps to the generic fallback", func(t *testing.T) {
		up := &stubUpstream{text: "   "}
		c, _ := newTestClient(up, t0)

		if got := c.GenerateReply(ctx, "hi", nil); got != genericFailureReply {
			t.Fatalf("expected generic fallback, got %q", got)
		}
	})

	t.Run("open breaker fast-fails without contacting the upstream", func(t *testing.T) {
		up := &stubUpstream{err: errors.New("boom")}
		c, _ := newTestClient(up, t0)

		c.GenerateReply(ctx, "hi", nil)
		if up.calls != 1 {
			t.Fatalf("expected 1 upstream call, got %d", up.calls)
		}

		got := c.GenerateReply(ctx, "hi", nil)
		if up.calls != 1 {
			t.Fatalf("fast-fail must not contact the upstream, calls=%d", up.calls)
		}
		if !strings.Contains(got, "60 seconds") {
			t.Fatalf("expected remaining-seconds text, got %q", got)
		}
	})

	t.Run("consecutive failures double the backoff", func(t *testing.T) {
		up := &stubUpstream{err: errors.New("boom")}
		c, clock := newTestClient(up, t0)

		c.GenerateReply(ctx, "hi", nil)
		if got := c.disabledUntil.Sub(*clock); got != baseBackoff {
			t.Fatalf("expected base backoff, got %s", got)
		}

		*clock = clock.Add(baseBackoff + time.Second)
		c.GenerateReply(ctx, "hi", nil)
		if got := c.disabledUntil.Sub(*clock); got != 2*baseBackoff {
			t.Fatalf("expected doubled backoff, got %s", got)
		}

		*clock = clock.Add(2*baseBackoff + time.Second)
		c.GenerateReply(ctx, "hi", nil)
		if got := c.disabledUntil.Sub(*clock); got != 4*baseBackoff {
			t.Fatalf("expected 4x base backoff after third failure, got %s", got)
		}
	})

	t.Run("one success closes the breaker and resets the backoff", func(t *testing.T) {
		up := &stubUpstream{err: errors.New("boom")}
		c, clock := newTestClient(up, t0)

		c.GenerateReply(ctx, "hi", nil)
		c.GenerateReply(ctx, "hi", nil) // fast-fail

		*clock = clock.Add(baseBackoff + time.Second)
		up.err = nil
		up.text = "Back!"
		if got := c.GenerateReply(ctx, "hi", nil); got != "Back!" {
			t.Fatalf("expected recovery, got %q", got)
		}
		if c.failCount != 0 || !c.disabledUntil.IsZero() {
			t.Fatalf("expected reset state, failCount=%d disabledUntil=%v", c.failCount, c.disabledUntil)
		}

		// The next failure starts from the base backoff again.
		up.err = errors.New("boom")
		c.GenerateReply(ctx, "hi", nil)
		if got := c.disabledUntil.Sub(*clock); got != baseBackoff {
			t.Fatalf("expected base backoff after reset, got %s", got)
		}
	})

	t.Run("daily quota exhaustion blocks for the fixed duration regardless of failure count", func(t *testing.T) {
		up := &stubUpstream{err: &RateLimitError{PerDay: true, Message: "GenerateRequestsPerDay exceeded"}}
		c, clock := newTestClient(up, t0)

		if got := c.GenerateReply(ctx, "hi", nil); got != quotaExhaustedReply {
			t.Fatalf("expected quota reply, got %q", got)
		}
		if got := c.quotaExhaustedUntil.Sub(*clock); got != quotaBlockDuration {
			t.Fatalf("expected fixed quota block, got %s", got)
		}
		if c.failCount != 0 {
			t.Fatalf("quota exhaustion must not advance the failure count, got %d", c.failCount)
		}

		// Fast-fail with the same fixed text, no upstream contact.
		if got := c.GenerateReply(ctx, "hi", nil); got != quotaExhaustedReply {
			t.Fatalf("expected quota reply while blocked, got %q", got)
		}
		if up.calls != 1 {
			t.Fatalf("expected 1 upstream call, got %d", up.calls)
		}
	})

	t.Run("per-minute throttling uses exponential backoff", func(t *testing.T) {
		up := &stubUpstream{err: &RateLimitError{PerDay: false, Message: "requests per minute"}}
		c, clock := newTestClient(up, t0)

		if got := c.GenerateReply(ctx, "hi", nil); got != busyReply {
			t.Fatalf("expected busy reply, got %q", got)
		}
		if got := c.disabledUntil.Sub(*clock); got != baseBackoff {
			t.Fatalf("expected base backoff, got %s", got)
		}
	})

	t.Run("safety rejection asks to rephrase without advancing the breaker", func(t *testing.T) {
		up := &stubUpstream{err: ErrContentRejected}
		c, _ := newTestClient(up, t0)

		if got := c.GenerateReply(ctx, "hi", nil); got != rephraseReply {
			t.Fatalf("expected rephrase reply, got %q", got)
		}
		if c.failCount != 0 || !c.disabledUntil.IsZero() {
			t.Fatal("safety rejection must leave the breaker closed")
		}

		// The breaker stayed closed: the next call contacts the upstream.
		c.GenerateReply(ctx, "hi", nil)
		if up.calls != 2 {
			t.Fatalf("expected 2 upstream calls, got %d", up.calls)
		}
	})
}

func TestBackoffFor(t *testing.T) {
	cases := []struct {
		failCount int
		want      time.Duration
	}{
		{1, 60 * time.Second},
		{2, 120 * time.Second},
		{3, 240 * time.Second},
		{6, 1920 * time.Second},
		{7, maxBackoff},
		{20, maxBackoff},
	}
	for _, tc := range cases {
		if got := backoffFor(tc.failCount); got != tc.want {
			t.Fatalf("backoffFor(%d) = %s, want %s", tc.failCount, got, tc.want)
		}
	}
}
