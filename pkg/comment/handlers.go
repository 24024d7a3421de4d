// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/property-service/internal/apperrors"
	"github.com/canonical/property-service/internal/authorization"
	httptypes "github.com/canonical/property-service/internal/http/types"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

type AddCommentRequest struct {
	ContextType string `json:"context_type" validate:"required"`
	ContextID   string `json:"context_id" validate:"required"`
	Body        string `json:"body" validate:"required"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/comments", a.addComment)
	mux.Get("/api/v0/comments", a.listComments)
}

func (a *API) principal(w http.ResponseWriter, r *http.Request) (authorization.Principal, bool) {
	p, ok := authorization.PrincipalFromContext(r.Context())
	if !ok {
		httptypes.WriteUnauthenticated(w)
	}
	return p, ok
}

func (a *API) addComment(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := httptypes.DecodeJSON(r, a.validate, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	target, err := types.ParseCommentContext(req.ContextType, req.ContextID)
	if err != nil {
		httptypes.WriteError(w, a.logger, apperrors.Validation("%v", err))
		return
	}

	c, err := a.service.AddComment(r.Context(), p, target, req.Body)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, c)
}

// listComments reads the thread named by the context_type and context_id
// query parameters.
func (a *API) listComments(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	target, err := types.ParseCommentContext(q.Get("context_type"), q.Get("context_id"))
	if err != nil {
		httptypes.WriteError(w, a.logger, apperrors.Validation("%v", err))
		return
	}

	page, err := httptypes.ParsePage(r)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	comments, err := a.service.ListComments(r.Context(), p, target, page)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WritePage(w, comments, page.Page, page.Size)
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)
	a.service = service
	a.validate = httptypes.NewValidator()
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
