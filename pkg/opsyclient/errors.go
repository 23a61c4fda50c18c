// SPDX-FileCopyrightText: Copyright (c) 2026 NVIDIA CORPORATION & AFFILIATES. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package opsyclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// SpecLoadError is returned when the interface document cannot be fetched or parsed.
// No operation can be issued without it.
type SpecLoadError struct {
	URL string
	Err error
}

func (e *SpecLoadError) Error() string {
	return fmt.Sprintf("loading API spec from %s: %v", e.URL, e.Err)
}

func (e *SpecLoadError) Unwrap() error { return e.Err }

// AuthError is returned when the login call is rejected or yields no token.
type AuthError struct {
	User string
	Err  error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authenticating as %q: %v", e.User, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status of the rejected login, or 0.
func (e *AuthError) StatusCode() int {
	var te *TransportError
	if errors.As(e.Err, &te) {
		return te.StatusCode
	}
	return 0
}

// ValidationError reports malformed local input. It is always raised before
// any request is sent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TransportError is returned for any non-2xx response and for requests that
// never got a response (StatusCode is 0 and Err holds the cause).
type TransportError struct {
	Method     string
	URL        string
	StatusCode int
	Reason     string
	Body       []byte
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s: HTTP %d - %s", e.Method, e.URL, e.StatusCode, e.Reason)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a TransportError with status 404.
func IsNotFound(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.StatusCode == http.StatusNotFound
}

func newTransportError(resp *resty.Response) *TransportError {
	te := &TransportError{
		Method:     resp.Request.Method,
		URL:        resp.Request.URL,
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}
	te.Reason = reasonFromBody(te.Body)
	if te.Reason == "" {
		te.Reason = http.StatusText(te.StatusCode)
	}
	if te.Reason == "" {
		te.Reason = strings.TrimSpace(strings.TrimPrefix(resp.Status(), fmt.Sprint(te.StatusCode)))
	}
	return te
}

// reasonFromBody extracts the human message from a JSON error body.
func reasonFromBody(body []byte) string {
	var errResp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Status  string `json:"status"`
	}
	if len(body) == 0 || json.Unmarshal(body, &errResp) != nil {
		return ""
	}
	switch {
	case errResp.Message != "":
		return errResp.Message
	case errResp.Error != "":
		return errResp.Error
	default:
		return errResp.Status
	}
}

// asValidationError converts an ozzo validation result into a ValidationError
// naming the first offending field in sorted order.
func asValidationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for f, ferr := range verrs {
			if ferr != nil {
				fields = append(fields, f)
			}
		}
		sort.Strings(fields)
		if len(fields) > 0 {
			return &ValidationError{Field: fields[0], Reason: verrs[fields[0]].Error()}
		}
		return nil
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return &ValidationError{Reason: err.Error()}
}

// Validator is implemented by every request model.
type Validator interface {
	Validate() error
}

// Validate runs the rules of a request model without sending anything and
// reports the first failure as a *ValidationError.
func Validate(m Validator) error {
	return asValidationError(m.Validate())
}
