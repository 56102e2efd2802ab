// Package mock provides a scripted Transport for tests: queue responses,
// force rate limit errors, and inspect captured requests without touching
// the network.
package mock

import (
	"context"
	"sync"

	scorebridge "github.com/opensecurity/scorebridge"
)

type Transport struct {
	RequestsUntilRateLimit int  // after this many requests, start returning 429
	ShouldReturn429Always  bool // if true, always return 429

	mu        sync.Mutex
	queued    []*scorebridge.Response
	errs      []error
	requests  []*scorebridge.Request
	callCount int
}

// QueueResponse appends a response to be returned by the next Execute call.
// Queued responses take precedence over the rate limit simulation.
func (t *Transport) QueueResponse(resp *scorebridge.Response) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.queued = append(t.queued, resp)
	t.errs = append(t.errs, nil)
}

// QueueError appends a transport-level error to be returned by the next
// Execute call.
func (t *Transport) QueueError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.queued = append(t.queued, nil)
	t.errs = append(t.errs, err)
}

// Requests returns the requests captured so far.
func (t *Transport) Requests() []*scorebridge.Request {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*scorebridge.Request, len(t.requests))
	copy(out, t.requests)
	return out
}

// CallCount returns how many times Execute has been invoked.
func (t *Transport) CallCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.callCount
}

func (t *Transport) Execute(_ context.Context, req *scorebridge.Request) (*scorebridge.Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.callCount++
	t.requests = append(t.requests, req)

	if len(t.queued) > 0 {
		resp, err := t.queued[0], t.errs[0]
		t.queued = t.queued[1:]
		t.errs = t.errs[1:]
		return resp, err
	}

	if t.ShouldReturn429Always || (t.RequestsUntilRateLimit > 0 && t.callCount > t.RequestsUntilRateLimit) {
		return &scorebridge.Response{
			StatusCode: 429,
			Headers:    map[string]string{},
			Data:       []byte(`{"error":{"message":"rate limited"}}`),
		}, nil
	}

	return &scorebridge.Response{
		StatusCode: 200,
		Headers:    map[string]string{},
		Data:       []byte(`{"success":true}`),
	}, nil
}
