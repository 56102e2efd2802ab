// Package timeparse converts the time formats the ratings API uses in rate
// limit headers into unix-millisecond timestamps and delays.
package timeparse

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ParseDurationStr converts strings like "1s" or "6m0s" into milliseconds.
// It returns 0 for anything it cannot parse.
func ParseDurationStr(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if strings.HasSuffix(s, "s") && !strings.Contains(s, "m") {
		val := strings.TrimSuffix(s, "s")
		sec, err := strconv.Atoi(val)
		if err == nil {
			return int64(sec) * 1000
		}
	}

	var minutes, seconds int
	n, err := fmt.Sscanf(s, "%dm%ds", &minutes, &seconds)
	if n == 2 && err == nil {
		return int64(minutes)*60_000 + int64(seconds)*1_000
	}

	return 0
}

// ParseRetryAfter converts a Retry-After header value (delay seconds or an
// HTTP date) into a delay in milliseconds relative to now. It returns 0 for
// values it cannot parse or dates in the past.
func ParseRetryAfter(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		if secs < 0 {
			return 0
		}
		return secs * 1000
	}
	if t, err := http.ParseTime(s); err == nil {
		delay := time.Until(t).Milliseconds()
		if delay > 0 {
			return delay
		}
	}
	return 0
}

// UnixToMs converts a UNIX timestamp in seconds to milliseconds.
func UnixToMs(timestamp int64) int64 {
	return timestamp * 1000
}

// IsInFuture reports whether a timestamp (in ms) is later than now.
func IsInFuture(ms int64) bool {
	return ms > time.Now().UnixMilli()
}
