package timeparse

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDurationStr(t *testing.T) {
	assert.Equal(t, int64(1000), ParseDurationStr("1s"))
	assert.Equal(t, int64(45_000), ParseDurationStr("45s"))
	assert.Equal(t, int64(360_000), ParseDurationStr("6m0s"))
	assert.Equal(t, int64(90_000), ParseDurationStr("1m30s"))
	assert.Equal(t, int64(0), ParseDurationStr(""))
	assert.Equal(t, int64(0), ParseDurationStr("soon"))
}

func TestParseRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, int64(30_000), ParseRetryAfter("30"))
	assert.Equal(t, int64(0), ParseRetryAfter("-5"))
	assert.Equal(t, int64(0), ParseRetryAfter("later"))
	assert.Equal(t, int64(0), ParseRetryAfter(""))
}

func TestParseRetryAfterHTTPDate(t *testing.T) {
	future := time.Now().Add(90 * time.Second).UTC().Format(http.TimeFormat)
	ms := ParseRetryAfter(future)
	assert.Greater(t, ms, int64(80_000))
	assert.LessOrEqual(t, ms, int64(90_000))

	past := time.Now().Add(-time.Minute).UTC().Format(http.TimeFormat)
	assert.Equal(t, int64(0), ParseRetryAfter(past))
}

func TestUnixToMsAndIsInFuture(t *testing.T) {
	assert.Equal(t, int64(1_700_000_000_000), UnixToMs(1_700_000_000))
	assert.True(t, IsInFuture(time.Now().Add(time.Minute).UnixMilli()))
	assert.False(t, IsInFuture(time.Now().Add(-time.Minute).UnixMilli()))
}
