// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/property-service/internal/apperrors"
	httptypes "github.com/canonical/property-service/internal/http/types"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
)

// SecretHeader carries the shared secret configured on the identity provider.
const SecretHeader = "X-Webhook-Secret"

const maxPayloadBytes = 64 << 10

type API struct {
	service  ServiceInterface
	secret   []byte
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/webhooks/registration", a.registration)
}

func (a *API) authorized(r *http.Request) bool {
	got := []byte(r.Header.Get(SecretHeader))
	return len(a.secret) > 0 && subtle.ConstantTimeCompare(got, a.secret) == 1
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	if !a.authorized(r) {
		a.logger.Security().AuthzFailure("webhook", "registration")
		httptypes.WriteUnauthenticated(w)
		return
	}

	// identity payloads carry more fields than are read here
	var identity IdentityPayload
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPayloadBytes)).Decode(&identity); err != nil {
		httptypes.WriteError(w, a.logger, apperrors.Validation("invalid request body: %v", err))
		return
	}
	if err := httptypes.Validate(a.validate, &identity); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	user, err := a.service.HandleRegistration(r.Context(), &Registration{
		ID:    identity.ID,
		Email: identity.Traits.Email,
		Name:  identity.Traits.Name,
		Role:  identity.Traits.Role,
	})
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, user)
}

func NewAPI(service ServiceInterface, secret string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)
	a.service = service
	a.secret = []byte(secret)
	a.validate = httptypes.NewValidator()
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
