// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package apperrors holds the error kinds returned by the services and their
// mapping to HTTP responses.
package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation    Kind = "ValidationError"
	KindAuthorization Kind = "AuthorizationError"
	KindNotFound      Kind = "NotFoundError"
	KindConflict      Kind = "ConflictError"
	KindDependency    Kind = "DependencyError"
	KindInternal      Kind = "InternalError"
)

// HTTPStatus maps a kind to its response status.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindDependency:
		return http.StatusBadRequest
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

type Error struct {
	Kind    Kind
	Message string
	Details map[string]interface{}

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error of the same kind, so callers can compare against the
// package level sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

// WithDetails attaches client visible details.
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	e.Details = details
	return e
}

var (
	ErrValidation    = &Error{Kind: KindValidation}
	ErrAuthorization = &Error{Kind: KindAuthorization}
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrConflict      = &Error{Kind: KindConflict}
	ErrDependency    = &Error{Kind: KindDependency}
	ErrInternal      = &Error{Kind: KindInternal}
)

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...interface{}) *Error {
	return &Error{Kind: KindAuthorization, Message: fmt.Sprintf(format, args...)}
}

func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Dependency(format string, args ...interface{}) *Error {
	return &Error{Kind: KindDependency, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unclassified failure. The cause is kept for logging only.
func Internal(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, cause: cause}
}

// KindOf returns the kind of err, InternalError when it is not classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

type Response struct {
	Error   Kind                   `json:"error"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ToResponse converts err into the status and body returned to clients.
// Unclassified errors never leak their message.
func ToResponse(err error) (int, Response) {
	var e *Error
	if !errors.As(err, &e) || e.Kind == KindInternal {
		return http.StatusInternalServerError, Response{Error: KindInternal, Message: "internal server error"}
	}

	return e.Kind.HTTPStatus(), Response{Error: e.Kind, Message: e.Message, Details: e.Details}
}

// WriteError renders err as a JSON error response.
func WriteError(w http.ResponseWriter, err error) {
	status, body := ToResponse(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
