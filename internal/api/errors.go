package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non-2xx response from the backend. It carries the HTTP status
// and the server-provided detail so callers can branch on auth failures,
// missing entities and validation errors explicitly instead of matching
// message strings.
type Error struct {
	StatusCode int
	Detail     string
	Fields     map[string]string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// IsAuth reports whether err is a 401/403 response.
func IsAuth(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) &&
		(apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden)
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsValidation reports whether err is a 400/422 response.
func IsValidation(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) &&
		(apiErr.StatusCode == http.StatusBadRequest || apiErr.StatusCode == http.StatusUnprocessableEntity)
}

// errorBody matches the backend's error envelope. Detail is either a plain
// string or a list of field-level validation entries.
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

type validationEntry struct {
	Loc []json.RawMessage `json:"loc"`
	Msg string            `json:"msg"`
}

// decodeError builds an *Error from a non-2xx response body. Bodies that
// aren't the expected envelope still produce an *Error with the raw text
// as detail.
func decodeError(status int, body []byte) *Error {
	apiErr := &Error{StatusCode: status}

	var envelope errorBody
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		apiErr.Detail = strings.TrimSpace(string(body))
		return apiErr
	}

	// Plain string detail
	var detail string
	if err := json.Unmarshal(envelope.Detail, &detail); err == nil {
		apiErr.Detail = detail
		return apiErr
	}

	// Field-level validation detail
	var entries []validationEntry
	if err := json.Unmarshal(envelope.Detail, &entries); err == nil && len(entries) > 0 {
		apiErr.Fields = make(map[string]string, len(entries))
		var msgs []string
		for _, e := range entries {
			field := "request"
			if n := len(e.Loc); n > 0 {
				var name string
				if json.Unmarshal(e.Loc[n-1], &name) == nil && name != "" {
					field = name
				}
			}
			apiErr.Fields[field] = e.Msg
			msgs = append(msgs, fmt.Sprintf("%s: %s", field, e.Msg))
		}
		apiErr.Detail = strings.Join(msgs, "; ")
		return apiErr
	}

	apiErr.Detail = strings.TrimSpace(string(envelope.Detail))
	return apiErr
}
