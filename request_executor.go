// request_executor.go
// --------------------
// The RequestExecutor handles retry logic, backoff, and consulting the
// RateLimiter. Transport errors, 429s, and 5xx responses are retried up to
// Config.MaxRetries with exponential backoff capped at 30 seconds; other 4xx
// responses are returned immediately as an APIError. All waits honor context
// cancellation.
package scorebridge

import (
	"context"
	"fmt"
	"time"
)

type RequestExecutor struct {
	client *Client
}

func NewRequestExecutor(client *Client) *RequestExecutor {
	return &RequestExecutor{client: client}
}

func (re *RequestExecutor) ExecuteWithRetry(ctx context.Context, group string, operation func() (*Response, error)) (*Response, error) {
	config := re.client.getConfig()
	maxRetries := config.MaxRetries
	baseBackoff := config.BaseBackoff
	if baseBackoff == 0 {
		baseBackoff = time.Second
	}

	attempts := 0
	for {
		if !re.client.rateLimiter.canProceed(group) {
			delay := re.client.rateLimiter.delayBeforeNextRequest(group)
			if delay > 0 {
				re.client.debugf("group %s: waiting %v before next request due to rate limit\n", group, delay)
				if err := sleepContext(ctx, delay); err != nil {
					return nil, err
				}
			}
		}

		re.client.debugf("group %s: sending request (attempt %d)\n", group, attempts+1)
		resp, err := operation()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if attempts < maxRetries {
				wait := calculateBackoff(baseBackoff, attempts)
				re.client.debugf("group %s: transport error: %v, retrying in %v (attempt %d/%d)\n", group, err, wait, attempts+1, maxRetries)
				if serr := sleepContext(ctx, wait); serr != nil {
					return nil, serr
				}
				attempts++
				continue
			}
			return nil, err
		}

		if info := parseRateLimitInfo(resp); info != nil {
			re.client.rateLimiter.UpdateRateLimits(group, info, config)
		}

		if resp.StatusCode == 429 {
			if attempts < maxRetries {
				wait := re.waitForRateLimit(group, baseBackoff, attempts)
				re.client.debugf("group %s: 429 rate limit, backing off %v before retry\n", group, wait)
				if serr := sleepContext(ctx, wait); serr != nil {
					return nil, serr
				}
				attempts++
				continue
			}
			return resp, fmt.Errorf("rate limit exceeded and max retries reached: %w", newAPIError(resp))
		}

		if resp.StatusCode >= 500 && attempts < maxRetries {
			wait := calculateBackoff(baseBackoff, attempts)
			re.client.debugf("group %s: server error %d, retrying in %v (attempt %d/%d)\n", group, resp.StatusCode, wait, attempts+1, maxRetries)
			if serr := sleepContext(ctx, wait); serr != nil {
				return nil, serr
			}
			attempts++
			continue
		} else if resp.StatusCode >= 400 {
			re.client.debugf("group %s: error %d, not retrying\n", group, resp.StatusCode)
			return resp, newAPIError(resp)
		}

		if attempts > 0 {
			re.client.debugf("group %s: request succeeded after %d attempts\n", group, attempts+1)
		}
		return resp, nil
	}
}

// waitForRateLimit prefers the delay the rate limiter derived from response
// headers; without one it falls back to exponential backoff.
func (re *RequestExecutor) waitForRateLimit(group string, baseBackoff time.Duration, attempts int) time.Duration {
	if delay := re.client.rateLimiter.delayBeforeNextRequest(group); delay > 0 {
		return delay
	}
	return calculateBackoff(baseBackoff, attempts)
}

func calculateBackoff(base time.Duration, attempt int) time.Duration {
	backoff := base * (1 << attempt) // base * 2^attempt
	if backoff > 30*time.Second {
		backoff = 30 * time.Second
	}
	return backoff
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
