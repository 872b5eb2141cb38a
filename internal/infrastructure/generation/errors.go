package generation

import (
	"errors"
	"fmt"
)

// ErrContentRejected marks a generation attempt blocked by the upstream
// safety filters. It is not an availability failure: the breaker asks the
// customer to rephrase without advancing the failure count.
var ErrContentRejected = errors.New("content rejected by safety filters")

// RateLimitError is an upstream quota rejection. PerDay distinguishes the
// daily-quota exhaustion (fixed long block) from per-minute throttling
// (exponential backoff).
type RateLimitError struct {
	PerDay  bool
	Message string
}

func (e *RateLimitError) Error() string {
	kind := "per-minute"
	if e.PerDay {
		kind = "per-day"
	}
	return fmt.Sprintf("rate limited (%s): %s", kind, e.Message)
}
