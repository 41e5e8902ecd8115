package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

var (
	ErrNetwork = errors.New("network failure")
	ErrStatus  = errors.New("unexpected status")
	ErrDecode  = errors.New("undecodable response")
)

// maxMessageLen bounds a raw-text error message taken from a response body.
const maxMessageLen = 200

// NetworkError means no response was received.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// StatusError is a response outside the 2xx range. Message is never empty.
type StatusError struct {
	Method  string
	URL     string
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

func (e *StatusError) Is(target error) bool { return target == ErrStatus }

// DecodeError is a 2xx response that could not be decoded.
type DecodeError struct {
	Method string
	URL    string
	Status int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s %s: decode %d response: %v", e.Method, e.URL, e.Status, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// StatusCode reports the HTTP status carried by err, if it is a StatusError.
func StatusCode(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status, true
	}
	return 0, false
}

func statusLine(code int, status string) string {
	if status != "" {
		return status
	}
	return strings.TrimSpace(fmt.Sprintf("%d %s", code, http.StatusText(code)))
}

// extractMessage picks a human-readable message from an error body.
// Order: JSON "message", JSON "error", first JSON "errors[].msg", raw text
// (truncated), status line. It never fails.
func extractMessage(body []byte, line string) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return line
	}

	if msg := jsonMessage(body); msg != "" {
		return msg
	}

	if !utf8.ValidString(text) {
		return line
	}
	return truncate(text, maxMessageLen)
}

func jsonMessage(body []byte) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}

	for _, key := range []string{"message", "error"} {
		var s string
		if raw, ok := fields[key]; ok && json.Unmarshal(raw, &s) == nil && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}

	var list []struct {
		Msg     string `json:"msg"`
		Message string `json:"message"`
	}
	if raw, ok := fields["errors"]; ok && json.Unmarshal(raw, &list) == nil {
		for _, item := range list {
			if m := strings.TrimSpace(item.Msg); m != "" {
				return m
			}
			if m := strings.TrimSpace(item.Message); m != "" {
				return m
			}
		}
	}
	return ""
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
