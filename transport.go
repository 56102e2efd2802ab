// transport.go
// -------------
// This file defines the Transport interface and the default HTTP
// implementation. A Transport executes exactly one prepared request and
// reports the normalized response; retries, rate limiting, and auth header
// construction all happen above it, so test doubles can replace the network
// without reimplementing any policy.
package scorebridge

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
)

// Transport executes a single prepared request against the ratings API.
type Transport interface {
	Execute(ctx context.Context, req *Request) (*Response, error)
}

// HTTPTransport is the default Transport, backed by net/http. The per-call
// deadline comes from the request context, so the underlying http.Client
// carries no timeout of its own.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport returns an HTTPTransport using the provided http.Client,
// or http.DefaultClient when nil.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{client: client}
}

func (t *HTTPTransport) Execute(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	headers := make(map[string]string)
	for k, vals := range resp.Header {
		if len(vals) > 0 {
			headers[strings.ToLower(k)] = vals[0]
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Data:       data,
	}, nil
}
