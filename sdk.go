// sdk.go
// ------
// The sdk.go file contains the core Client struct and its methods. This is
// the main entry point of the SDK for users.
//
// Key functionalities include:
// - Constructing a client with New()
// - One-time configuration via SetTimeout, SetAuth, and SetServer
// - Dispatching any endpoint via Call(), driven by the endpoint table
//
// The Client relies on a RateLimiter and a RequestExecutor to handle rate
// limiting and retries; the typed facade methods in the generated files all
// funnel through Call. Clients are constructed explicitly and passed around —
// there is no package-level singleton, so one process can hold several
// clients with different credentials or servers.
package scorebridge

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultServerURL is the vendor-hosted API base used unless SetServer is
// called.
const DefaultServerURL = "https://api.securityscorecard.io"

const sdkUserAgent = "scorebridge-go/1.0"

// CredentialFunc produces the Authorization header value for a request.
// It is invoked once per call, so implementations may refresh short-lived
// tokens.
type CredentialFunc func(ctx context.Context) (string, error)

type Client struct {
	mu          sync.Mutex
	config      Config
	serverURL   string
	credential  CredentialFunc
	transport   Transport
	rateLimiter *RateLimiter
	executor    *RequestExecutor

	Debug bool // If true, print debug info
}

// New returns a Client ready to dispatch requests against the default
// server. A nil config selects the defaults (30s timeout, no retries, token
// auth scheme).
func New(config *Config) *Client {
	c := &Client{
		serverURL:   DefaultServerURL,
		transport:   NewHTTPTransport(nil),
		rateLimiter: NewRateLimiter(),
	}
	if config != nil {
		c.config = *config
	}
	c.executor = NewRequestExecutor(c)
	return c
}

// SetDebug enables or disables debug logging for the client.
func (c *Client) SetDebug(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Debug = enabled
}

// SetTimeout replaces the per-call deadline. Last write wins.
func (c *Client) SetTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.config.Timeout = d
}

// SetAuth attaches credentials for subsequent requests. One value is sent
// under the configured auth scheme (token or bearer); two values are sent as
// HTTP basic auth. Last write wins.
func (c *Client) SetAuth(credentials ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch len(credentials) {
	case 1:
		var prefix string
		switch c.config.authScheme() {
		case AuthSchemeBearer:
			prefix = "Bearer "
		case AuthSchemeBasic:
			return fmt.Errorf("basic auth scheme requires two credentials")
		default:
			prefix = "Token "
		}
		value := prefix + credentials[0]
		c.credential = func(context.Context) (string, error) { return value, nil }
	case 2:
		encoded := base64.StdEncoding.EncodeToString([]byte(credentials[0] + ":" + credentials[1]))
		value := "Basic " + encoded
		c.credential = func(context.Context) (string, error) { return value, nil }
	default:
		return fmt.Errorf("expected one or two credentials, got %d", len(credentials))
	}
	return nil
}

// SetCredentialFunc attaches a dynamic credential source, replacing any
// credentials set earlier. Use this for short-lived tokens that must be
// refreshed per call.
func (c *Client) SetCredentialFunc(fn CredentialFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.credential = fn
}

// SetServer overrides the base server URL. The URL may contain {name}
// placeholders substituted from variables. Last write wins.
func (c *Client) SetServer(urlTemplate string, variables map[string]string) {
	server := urlTemplate
	for name, value := range variables {
		server = strings.ReplaceAll(server, "{"+name+"}", value)
	}
	server = strings.TrimSuffix(server, "/")

	c.mu.Lock()
	defer c.mu.Unlock()
	c.serverURL = server
}

// Call dispatches one endpoint by id. It validates body/metadata requirements
// against the endpoint's descriptor, expands the path template, and hands the
// prepared request to the executor. A missing required body or placeholder
// value is a caller error returned before any network activity.
func (c *Client) Call(ctx context.Context, endpointID string, body interface{}, metadata Metadata) (*Response, error) {
	desc, err := LookupEndpoint(endpointID)
	if err != nil {
		return nil, err
	}
	if desc.RequiresBody && body == nil {
		return nil, fmt.Errorf("endpoint %s: request body is required", endpointID)
	}
	if !desc.RequiresBody && body != nil {
		return nil, fmt.Errorf("endpoint %s: does not accept a request body", endpointID)
	}
	if desc.RequiresMetadata && len(metadata) == 0 {
		return nil, fmt.Errorf("endpoint %s: metadata is required", endpointID)
	}

	path, err := expandPath(desc.PathTemplate, metadata)
	if err != nil {
		return nil, fmt.Errorf("endpoint %s: %w", endpointID, err)
	}

	var payload []byte
	if body != nil {
		payload, err = marshalBody(body)
		if err != nil {
			return nil, fmt.Errorf("endpoint %s: marshal body: %w", endpointID, err)
		}
	}

	c.mu.Lock()
	config := c.config
	serverURL := c.serverURL
	credential := c.credential
	transport := c.transport
	c.mu.Unlock()

	headers := map[string]string{
		"Accept":     "application/json",
		"User-Agent": userAgent(&config),
	}
	if payload != nil {
		headers["Content-Type"] = "application/json"
	}
	if credential != nil {
		value, err := credential(ctx)
		if err != nil {
			return nil, fmt.Errorf("endpoint %s: credential: %w", endpointID, err)
		}
		headers["Authorization"] = value
	}

	req := &Request{
		Method:  desc.Verb,
		URL:     serverURL + path,
		Headers: headers,
		Body:    payload,
	}

	callCtx, cancel := context.WithTimeout(ctx, config.timeout())
	defer cancel()

	group := endpointGroup(desc.PathTemplate)
	c.debugf("dispatching %s %s (endpoint %s, group %s)\n", req.Method, req.URL, endpointID, group)
	return c.executor.ExecuteWithRetry(callCtx, group, func() (*Response, error) {
		return transport.Execute(callCtx, req)
	})
}

// callInto dispatches an endpoint and decodes the 2xx payload into out. The
// generated facade methods are all one-line delegations to this.
func (c *Client) callInto(ctx context.Context, endpointID string, body interface{}, metadata Metadata, out interface{}) error {
	resp, err := c.Call(ctx, endpointID, body, metadata)
	if err != nil {
		return err
	}
	if out == nil || len(resp.Data) == 0 {
		return nil
	}
	return resp.Decode(out)
}

// SetTransport replaces the Transport used for subsequent calls. Intended
// for tests and instrumentation.
func (c *Client) SetTransport(t Transport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transport = t
}

// GetRateLimitInfo returns the current known rate limit info for an endpoint
// group (e.g. "portfolios"), or nil if nothing has been observed.
func (c *Client) GetRateLimitInfo(group string) *RateLimitInfo {
	return c.rateLimiter.GetRateLimitInfo(group)
}

// getConfig returns a snapshot of the current config.
func (c *Client) getConfig() *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	config := c.config
	return &config
}

// endpointGroup is the first segment of a path template; the API meters rate
// limits at this granularity.
func endpointGroup(template string) string {
	trimmed := strings.TrimPrefix(template, "/")
	if i := strings.Index(trimmed, "/"); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}

func userAgent(config *Config) string {
	if config.UserAgent != "" {
		return sdkUserAgent + " " + config.UserAgent
	}
	return sdkUserAgent
}

// debugf prints debug messages if Debug mode is enabled. The flag is read
// under the mutex so SetDebug can be toggled while calls are in flight.
func (c *Client) debugf(format string, args ...interface{}) {
	c.mu.Lock()
	enabled := c.Debug
	c.mu.Unlock()
	if enabled {
		fmt.Printf("[DEBUG] "+format, args...)
	}
}
