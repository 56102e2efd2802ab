package scorebridge

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError is returned for documented non-2xx responses. The raw body is
// preserved so callers can decode endpoint-specific error payloads; Code and
// Message are filled when the body follows the API's standard error envelope.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// newAPIError builds an APIError from a non-2xx response, decoding the
// standard {"error": {"message": ..., "statusCode": ...}} envelope when
// present.
func newAPIError(resp *Response) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Body:       resp.Data,
	}
	var envelope struct {
		Error struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		} `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Data, &envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		if envelope.Error.Message != "" {
			apiErr.Message = envelope.Error.Message
		} else {
			apiErr.Message = envelope.Message
		}
	}
	return apiErr
}

// AsAPIError unwraps err as an *APIError if it carries one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
