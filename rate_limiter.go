// rate_limiter.go
// ----------------
// This file defines the RateLimiter type, which stores rate limit information
// per endpoint group (the first segment of the path template, e.g.
// "portfolios" or "companies" — the API meters these independently).
//
// Responsibilities:
// - Storing RateLimitInfo parsed from response headers, keyed by group.
// - Checking if a request can proceed based on RemainingRequests and
//   ResetRequestsAt.
// - Calculating the delay before the next allowed request when the limit is
//   exhausted.
// - Applying Config overrides when UseAPIRateLimits is false.
package scorebridge

import (
	"strconv"
	"sync"
	"time"

	"github.com/opensecurity/scorebridge/internal/timeparse"
)

type RateLimiter struct {
	mu          sync.Mutex
	groupLimits map[string]*RateLimitInfo
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		groupLimits: make(map[string]*RateLimitInfo),
	}
}

// UpdateRateLimits stores the latest rate limit info for an endpoint group,
// applying user overrides when the config says not to trust API limits.
func (r *RateLimiter) UpdateRateLimits(group string, info *RateLimitInfo, config *Config) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if info != nil && !config.UseAPIRateLimits {
		if config.MaxRequestsOverride != nil {
			info.MaxRequests = config.MaxRequestsOverride
			if info.RemainingRequests == nil || *info.RemainingRequests > *info.MaxRequests {
				newRem := *info.MaxRequests
				info.RemainingRequests = &newRem
			}
		}
		if config.WindowSecsOverride != nil && info.ResetRequestsAt == nil {
			resetAt := time.Now().UnixMilli() + *config.WindowSecsOverride*1000
			info.ResetRequestsAt = &resetAt
		}
	}

	r.groupLimits[group] = info
}

// canProceed reports whether a request to the group may be sent immediately.
// It returns false while the limit is exhausted and the reset time has not
// passed.
func (r *RateLimiter) canProceed(group string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, ok := r.groupLimits[group]
	if !ok || info == nil {
		// No known limits, assume proceed
		return true
	}

	if info.RemainingRequests != nil && *info.RemainingRequests <= 0 {
		if info.ResetRequestsAt != nil && time.Now().UnixMilli() < *info.ResetRequestsAt {
			return false
		}
	}
	return true
}

// delayBeforeNextRequest returns how long to wait before the group's next
// request, or 0 if the request may proceed now.
func (r *RateLimiter) delayBeforeNextRequest(group string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, ok := r.groupLimits[group]
	if !ok || info == nil {
		return 0
	}

	nowMs := time.Now().UnixMilli()
	if info.RetryAfterAt != nil && nowMs < *info.RetryAfterAt {
		return time.Duration(*info.RetryAfterAt-nowMs) * time.Millisecond
	}
	if info.RemainingRequests != nil && *info.RemainingRequests <= 0 && info.ResetRequestsAt != nil {
		if nowMs < *info.ResetRequestsAt {
			return time.Duration(*info.ResetRequestsAt-nowMs) * time.Millisecond
		}
	}

	return 0
}

// GetRateLimitInfo returns a deep copy of the stored rate limit info for a
// group, or nil if none has been observed yet. Mutating the returned value
// never affects the limiter's own bookkeeping.
func (r *RateLimiter) GetRateLimitInfo(group string) *RateLimitInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	if info, ok := r.groupLimits[group]; ok && info != nil {
		return info.clone()
	}
	return nil
}

// parseRateLimitInfo extracts rate limit state from the API's response
// headers. It returns nil when no rate limit headers are present.
func parseRateLimitInfo(resp *Response) *RateLimitInfo {
	var info RateLimitInfo
	found := false

	if v, ok := resp.Headers["x-ratelimit-limit"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			info.MaxRequests = &n
			found = true
		}
	}
	if v, ok := resp.Headers["x-ratelimit-remaining"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			info.RemainingRequests = &n
			found = true
		}
	}
	if v, ok := resp.Headers["x-ratelimit-reset"]; ok {
		if secs, err := strconv.ParseInt(v, 10, 64); err == nil {
			resetMs := timeparse.UnixToMs(secs)
			if timeparse.IsInFuture(resetMs) {
				info.ResetRequestsAt = &resetMs
				found = true
			}
		}
	}
	if v, ok := resp.Headers["retry-after"]; ok {
		if ms := timeparse.ParseRetryAfter(v); ms > 0 {
			at := time.Now().UnixMilli() + ms
			info.RetryAfterAt = &at
			found = true
		}
	}

	if !found {
		return nil
	}
	return &info
}
