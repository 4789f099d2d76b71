package shopapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx answer from the shop API.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("shop api %s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("shop api %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Detail)
}

// DecodeError means the shop API answered 2xx with a body that does not match
// the expected shape.
type DecodeError struct {
	Method string
	Path   string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("shop api %s %s: decode response: %v", e.Method, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TransportError means no usable answer was received from the shop API.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("shop api %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// parseDetail reads the FastAPI error body: {"detail": "..."} or
// {"detail": [{"loc": [...], "msg": "..."}]}.
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return strings.TrimSpace(string(body))
	}

	var text string
	if err := json.Unmarshal(envelope.Detail, &text); err == nil {
		return text
	}

	var items []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(envelope.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if len(item.Loc) > 0 {
				msgs = append(msgs, fmt.Sprintf("%v: %s", item.Loc[len(item.Loc)-1], item.Msg))
				continue
			}
			msgs = append(msgs, item.Msg)
		}
		return strings.Join(msgs, "; ")
	}

	return string(envelope.Detail)
}

// IsUpstreamFailure reports errors that are the shop API's fault rather than
// the caller's: transport failures, undecodable bodies and 5xx answers.
func IsUpstreamFailure(err error) bool {
	var transportErr *TransportError
	var decodeErr *DecodeError
	if errors.As(err, &transportErr) || errors.As(err, &decodeErr) {
		return true
	}
	return StatusCode(err) >= http.StatusInternalServerError
}

// MapStatus replaces an APIError with the error registered for its status
// code. Other errors are returned unchanged.
func MapStatus(err error, byStatus map[int]error) error {
	if code := StatusCode(err); code != 0 {
		if mapped, ok := byStatus[code]; ok {
			return mapped
		}
	}
	return err
}
