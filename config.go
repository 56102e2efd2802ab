// config.go
// ----------
// This file defines the Config structure, which customizes client behavior:
// request timeout, retry policy, the authorization scheme used when
// credentials are attached, and rate limit handling.
//
// Rate limit fields mirror the server-reported limits by default
// (UseAPIRateLimits); overrides let callers clamp the client below what the
// API would otherwise allow.
package scorebridge

import "time"

// AuthScheme selects how SetAuth credentials are turned into an
// Authorization header. The facade layer never inspects the scheme; it is
// applied uniformly by the dispatch path.
type AuthScheme string

const (
	// AuthSchemeToken sends "Authorization: Token <key>", the ratings API's
	// native API key scheme. This is the default.
	AuthSchemeToken AuthScheme = "token"
	// AuthSchemeBearer sends "Authorization: Bearer <token>".
	AuthSchemeBearer AuthScheme = "bearer"
	// AuthSchemeBasic sends HTTP basic auth and requires two credentials.
	AuthSchemeBasic AuthScheme = "basic"
)

// DefaultTimeout is applied when Config.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Config customizes timeouts, retries, auth scheme, and rate limit handling
// for a Client.
type Config struct {
	Timeout     time.Duration // per-call deadline; DefaultTimeout if zero
	MaxRetries  int           // max retries on transport error, 429, or 5xx
	BaseBackoff time.Duration // initial backoff for exponential backoff

	AuthScheme AuthScheme // how SetAuth credentials are sent; token if empty
	UserAgent  string     // appended to the default User-Agent when set

	UseAPIRateLimits    bool   // trust server-reported rate limit headers
	MaxRequestsOverride *int   // clamp max requests per window if set
	WindowSecsOverride  *int64 // clamp window length if set
}

func (c *Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

func (c *Config) authScheme() AuthScheme {
	if c.AuthScheme == "" {
		return AuthSchemeToken
	}
	return c.AuthScheme
}
