// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package types holds the request and response plumbing shared by the HTTP
// handlers.
package types

import (
	"encoding/json"
	"net/http"

	"github.com/canonical/property-service/internal/apperrors"
	"github.com/canonical/property-service/internal/logging"
)

// Response is the envelope of every successful JSON response.
type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Meta    *Meta  `json:"_meta,omitempty"`
}

type Meta struct {
	Page int64 `json:"page"`
	Size int64 `json:"size"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	writeResponse(w, Response{Data: data, Message: http.StatusText(status), Status: status})
}

// WritePage renders a paginated listing.
func WritePage(w http.ResponseWriter, data any, page, size int64) {
	writeResponse(w, Response{Data: data, Message: http.StatusText(http.StatusOK), Status: http.StatusOK, Meta: &Meta{Page: page, Size: size}})
}

func writeResponse(w http.ResponseWriter, r Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(r.Status)
	_ = json.NewEncoder(w).Encode(r)
}

// WriteError renders err and logs it when it is not a client error.
func WriteError(w http.ResponseWriter, logger logging.LoggerInterface, err error) {
	if apperrors.KindOf(err) == apperrors.KindInternal {
		logger.Errorf("request failed: %v", err)
	}

	apperrors.WriteError(w, err)
}

// WriteUnauthenticated rejects requests without a resolved principal.
func WriteUnauthenticated(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(apperrors.Response{Error: "AuthenticationError", Message: "authentication required"})
}
