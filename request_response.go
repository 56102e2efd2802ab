package scorebridge

import "encoding/json"

// Request is a fully prepared HTTP request: the URL already contains the
// resolved server, expanded path placeholders, and query string.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte
}

// Response carries the status code, lowercased response headers, and the raw
// body of a single API call.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Data       []byte
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v interface{}) error {
	return json.Unmarshal(r.Data, v)
}

// marshalBody turns a facade-supplied body into JSON bytes. Raw byte slices
// pass through untouched so callers can send pre-encoded payloads.
func marshalBody(v interface{}) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	default:
		return json.Marshal(v)
	}
}

// RateLimitInfo is the rate limit state reported by the API through response
// headers. All fields are optional; a nil field means the header was absent.
type RateLimitInfo struct {
	MaxRequests       *int
	RemainingRequests *int
	ResetRequestsAt   *int64 // unix milliseconds
	RetryAfterAt      *int64 // unix milliseconds, derived from Retry-After on 429 responses
}

// clone returns a deep copy, so holders of a clone cannot alias the pointer
// fields of the original.
func (info *RateLimitInfo) clone() *RateLimitInfo {
	out := &RateLimitInfo{}
	if info.MaxRequests != nil {
		v := *info.MaxRequests
		out.MaxRequests = &v
	}
	if info.RemainingRequests != nil {
		v := *info.RemainingRequests
		out.RemainingRequests = &v
	}
	if info.ResetRequestsAt != nil {
		v := *info.ResetRequestsAt
		out.ResetRequestsAt = &v
	}
	if info.RetryAfterAt != nil {
		v := *info.RetryAfterAt
		out.RetryAfterAt = &v
	}
	return out
}
