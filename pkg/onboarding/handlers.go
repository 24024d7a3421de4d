// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/property-service/internal/apperrors"
	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/blob"
	httptypes "github.com/canonical/property-service/internal/http/types"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

const maxDocumentBytes = 20 << 20

type CreateDocumentRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description,omitempty" validate:"max=2000"`
	Visibility  string  `json:"visibility,omitempty" validate:"omitempty,oneof=all_tenants property_tenants unit_tenants specific_tenant"`
	PropertyID  *string `json:"property_id,omitempty"`
	UnitID      *string `json:"unit_id,omitempty"`
	TenantID    *string `json:"tenant_id,omitempty"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/onboarding", a.createDocument)
	mux.Get("/api/v0/onboarding", a.listDocuments)
	mux.Get("/api/v0/onboarding/{id}", a.getDocument)
	mux.Delete("/api/v0/onboarding/{id}", a.deleteDocument)
}

func (a *API) principal(w http.ResponseWriter, r *http.Request) (authorization.Principal, bool) {
	p, ok := authorization.PrincipalFromContext(r.Context())
	if !ok {
		httptypes.WriteUnauthenticated(w)
	}
	return p, ok
}

// createDocument accepts a JSON body, or a multipart form with the same
// fields and an optional file part.
func (a *API) createDocument(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	req, file, err := a.documentRequest(r)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	if file != nil {
		if c, ok := file.Body.(io.Closer); ok {
			defer c.Close()
		}
	}

	doc, err := a.service.CreateDocument(r.Context(), p, &DocumentInput{
		Title:       req.Title,
		Description: req.Description,
		Visibility:  types.OnboardingVisibility(req.Visibility),
		PropertyID:  req.PropertyID,
		UnitID:      req.UnitID,
		TenantID:    req.TenantID,
		File:        file,
	})
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, doc)
}

func (a *API) documentRequest(r *http.Request) (*CreateDocumentRequest, *blob.File, error) {
	req := new(CreateDocumentRequest)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		if err := httptypes.DecodeJSON(r, a.validate, req); err != nil {
			return nil, nil, err
		}
		return req, nil, nil
	}

	r.Body = http.MaxBytesReader(nil, r.Body, maxDocumentBytes)
	if err := r.ParseMultipartForm(maxDocumentBytes); err != nil {
		return nil, nil, apperrors.Validation("invalid multipart body: %v", err)
	}

	req.Title = r.FormValue("title")
	req.Description = r.FormValue("description")
	req.Visibility = r.FormValue("visibility")
	req.PropertyID = httptypes.OptionalString(r.FormValue("property_id"))
	req.UnitID = httptypes.OptionalString(r.FormValue("unit_id"))
	req.TenantID = httptypes.OptionalString(r.FormValue("tenant_id"))

	if err := httptypes.Validate(a.validate, req); err != nil {
		return nil, nil, err
	}

	file, header, err := r.FormFile("file")
	if err == http.ErrMissingFile {
		return req, nil, nil
	}
	if err != nil {
		return nil, nil, apperrors.Validation("invalid file: %v", err)
	}

	return req, &blob.File{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	}, nil
}

func (a *API) listDocuments(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	page, err := httptypes.ParsePage(r)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	docs, err := a.service.ListDocuments(r.Context(), p, &DocumentQuery{
		PropertyID: r.URL.Query().Get("property_id"),
		Page:       page,
	})
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WritePage(w, docs, page.Page, page.Size)
}

func (a *API) getDocument(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	doc, err := a.service.GetDocument(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, doc)
}

func (a *API) deleteDocument(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteDocument(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
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
