// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package message

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/property-service/internal/authorization"
	httptypes "github.com/canonical/property-service/internal/http/types"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/tracing"
)

type SendMessageRequest struct {
	RecipientID     string   `json:"recipient_id" validate:"required"`
	Content         string   `json:"content" validate:"required"`
	PropertyID      *string  `json:"property_id,omitempty"`
	UnitID          *string  `json:"unit_id,omitempty"`
	Category        string   `json:"category,omitempty" validate:"max=50"`
	Attachments     []string `json:"attachments,omitempty"`
	ParentMessageID *string  `json:"parent_message_id,omitempty"`
}

type MarkReadRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,max=500"`
}

type MarkNotificationsReadRequest struct {
	IDs []string `json:"ids,omitempty" validate:"max=500"`
}

type CountResponse struct {
	Updated int64 `json:"updated"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/messages", a.sendMessage)
	mux.Get("/api/v0/messages", a.listMessages)
	mux.Post("/api/v0/messages/read", a.markAsRead)
	mux.Delete("/api/v0/messages/{id}", a.deleteMessage)

	mux.Get("/api/v0/notifications", a.listNotifications)
	mux.Post("/api/v0/notifications/read", a.markNotificationsRead)
}

func (a *API) principal(w http.ResponseWriter, r *http.Request) (authorization.Principal, bool) {
	p, ok := authorization.PrincipalFromContext(r.Context())
	if !ok {
		httptypes.WriteUnauthenticated(w)
	}
	return p, ok
}

func (a *API) sendMessage(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := httptypes.DecodeJSON(r, a.validate, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	m, err := a.service.SendMessage(r.Context(), p, &MessageInput{
		RecipientID:     req.RecipientID,
		Content:         req.Content,
		PropertyID:      req.PropertyID,
		UnitID:          req.UnitID,
		Category:        req.Category,
		Attachments:     req.Attachments,
		ParentMessageID: req.ParentMessageID,
	})
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, m)
}

// listMessages reads the box from the type query parameter, inbox by default.
func (a *API) listMessages(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	page, err := httptypes.ParsePage(r)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	unreadOnly, err := httptypes.ParseBool(r, "unread_only", false)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	q := r.URL.Query()
	messages, err := a.service.ListMessages(r.Context(), p, &MessageQuery{
		Box:         storage.MessageBox(q.Get("type")),
		PropertyID:  q.Get("property_id"),
		UnitID:      q.Get("unit_id"),
		OtherUserID: q.Get("other_user_id"),
		Category:    q.Get("category"),
		UnreadOnly:  unreadOnly,
		Page:        page,
	})
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WritePage(w, messages, page.Page, page.Size)
}

func (a *API) markAsRead(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var req MarkReadRequest
	if err := httptypes.DecodeJSON(r, a.validate, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	n, err := a.service.MarkAsRead(r.Context(), p, req.IDs)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, CountResponse{Updated: n})
}

func (a *API) deleteMessage(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteMessage(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listNotifications(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	page, err := httptypes.ParsePage(r)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	unreadOnly, err := httptypes.ParseBool(r, "unread_only", false)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	notifications, err := a.service.ListNotifications(r.Context(), p, unreadOnly, page)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WritePage(w, notifications, page.Page, page.Size)
}

func (a *API) markNotificationsRead(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var req MarkNotificationsReadRequest
	if err := httptypes.DecodeJSON(r, a.validate, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	n, err := a.service.MarkNotificationsRead(r.Context(), p, req.IDs)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, CountResponse{Updated: n})
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
