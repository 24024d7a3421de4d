// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package property

import (
	"net/http"
	"strings"
	"time"

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

type CreatePropertyRequest struct {
	Name              string  `json:"name" validate:"required,max=200"`
	Address           string  `json:"address" validate:"max=500"`
	Type              string  `json:"type" validate:"max=50"`
	MainContactUserID *string `json:"main_contact_user_id,omitempty" validate:"omitempty,uuid"`
}

type UpdatePropertyRequest struct {
	Name              *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Address           *string `json:"address,omitempty" validate:"omitempty,max=500"`
	Type              *string `json:"type,omitempty" validate:"omitempty,max=50"`
	IsActive          *bool   `json:"is_active,omitempty"`
	MainContactUserID *string `json:"main_contact_user_id,omitempty" validate:"omitempty,uuid|len=0"`
}

type CreateUnitRequest struct {
	UnitName string `json:"unit_name" validate:"required,max=100"`
}

type MaintenanceFlagRequest struct {
	Flag string `json:"flag" validate:"omitempty,oneof=under_maintenance unavailable"`
}

type AssignmentRequest struct {
	UserID string   `json:"user_id" validate:"required"`
	UnitID *string  `json:"unit_id,omitempty"`
	Roles  []string `json:"roles" validate:"required,min=1,dive,oneof=landlord propertymanager tenant admin_access"`
}

type CreateLeaseRequest struct {
	UnitID      string  `json:"unit_id" validate:"required"`
	TenantID    string  `json:"tenant_id" validate:"required"`
	StartDate   string  `json:"start_date" validate:"required"`
	EndDate     string  `json:"end_date" validate:"required"`
	MonthlyRent float64 `json:"monthly_rent" validate:"gt=0"`
	Currency    string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	Status      string  `json:"status,omitempty" validate:"omitempty,oneof=active pending"`
}

type ScheduleMaintenanceRequest struct {
	Title       string          `json:"title" validate:"required,max=200"`
	UnitID      *string         `json:"unit_id,omitempty"`
	ScheduledAt time.Time       `json:"scheduled_at" validate:"required"`
	AssignedTo  *types.Assignee `json:"assigned_to,omitempty"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/properties", a.createProperty)
	mux.Get("/api/v0/properties", a.listProperties)
	mux.Get("/api/v0/properties/{id}", a.getProperty)
	mux.Patch("/api/v0/properties/{id}", a.updateProperty)
	mux.Delete("/api/v0/properties/{id}", a.deleteProperty)

	mux.Post("/api/v0/properties/{id}/units", a.createUnit)
	mux.Get("/api/v0/properties/{id}/units", a.listUnits)
	mux.Put("/api/v0/units/{id}/maintenance", a.setUnitMaintenance)

	mux.Post("/api/v0/properties/{id}/users", a.assignUser)
	mux.Delete("/api/v0/properties/{id}/users/{userID}", a.removeUser)
	mux.Get("/api/v0/properties/{id}/users", a.listPropertyUsers)

	mux.Post("/api/v0/leases", a.createLease)
	mux.Post("/api/v0/leases/{id}/terminate", a.terminateLease)

	mux.Post("/api/v0/properties/{id}/maintenance", a.scheduleMaintenance)
	mux.Get("/api/v0/properties/{id}/maintenance", a.listScheduledMaintenance)
}

func (a *API) principal(w http.ResponseWriter, r *http.Request) (authorization.Principal, bool) {
	p, ok := authorization.PrincipalFromContext(r.Context())
	if !ok {
		httptypes.WriteUnauthenticated(w)
	}
	return p, ok
}

func (a *API) createProperty(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var req CreatePropertyRequest
	if err := httptypes.DecodeJSON(r, a.validate, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	prop, err := a.service.CreateProperty(r.Context(), p, &types.Property{
		Name:              req.Name,
		Address:           req.Address,
		Type:              req.Type,
		MainContactUserID: req.MainContactUserID,
	})
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, prop)
}

func (a *API) listProperties(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	page, err := httptypes.ParsePage(r)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	props, err := a.service.ListProperties(r.Context(), p, page)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WritePage(w, props, page.Page, page.Size)
}

func (a *API) getProperty(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	prop, err := a.service.GetProperty(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, prop)
}

func (a *API) updateProperty(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var req UpdatePropertyRequest
	if err := httptypes.DecodeJSON(r, a.validate, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	prop, err := a.service.UpdateProperty(r.Context(), p, chi.URLParam(r, "id"), &PropertyUpdate{
		Name:              req.Name,
		Address:           req.Address,
		Type:              req.Type,
		IsActive:          req.IsActive,
		MainContactUserID: req.MainContactUserID,
	})
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, prop)
}

func (a *API) deleteProperty(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteProperty(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) createUnit(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var req CreateUnitRequest
	if err := httptypes.DecodeJSON(r, a.validate, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	unit, err := a.service.CreateUnit(r.Context(), p, chi.URLParam(r, "id"), req.UnitName)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, unit)
}

func (a *API) listUnits(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	units, err := a.service.ListUnits(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, units)
}

func (a *API) setUnitMaintenance(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var req MaintenanceFlagRequest
	if err := httptypes.DecodeJSON(r, a.validate, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	unit, err := a.service.SetUnitMaintenance(r.Context(), p, chi.URLParam(r, "id"), types.UnitStatus(req.Flag))
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, unit)
}

func (a *API) assignUser(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var req AssignmentRequest
	if err := httptypes.DecodeJSON(r, a.validate, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	roles, _ := types.ParseRoleSet(req.Roles)

	assoc, err := a.service.AssignUser(r.Context(), p, chi.URLParam(r, "id"), &Assignment{
		UserID: req.UserID,
		UnitID: req.UnitID,
		Roles:  roles,
	})
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, assoc)
}

// removeUser takes the roles to revoke as a comma separated roles query
// parameter, and the unit as unit_id.
func (a *API) removeUser(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	raw := r.URL.Query().Get("roles")
	roles, valid := types.ParseRoleSet(strings.Split(raw, ","))
	if raw == "" || !valid {
		httptypes.WriteError(w, a.logger, apperrors.Validation("invalid roles %q", raw))
		return
	}

	assoc, err := a.service.RemoveUser(r.Context(), p, chi.URLParam(r, "id"), &Assignment{
		UserID: chi.URLParam(r, "userID"),
		UnitID: httptypes.OptionalString(r.URL.Query().Get("unit_id")),
		Roles:  roles,
	})
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, assoc)
}

func (a *API) listPropertyUsers(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	activeOnly, err := httptypes.ParseBool(r, "active_only", true)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	users, err := a.service.ListPropertyUsers(r.Context(), p, chi.URLParam(r, "id"), activeOnly)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, users)
}

func (a *API) createLease(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var req CreateLeaseRequest
	if err := httptypes.DecodeJSON(r, a.validate, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	start, err := httptypes.ParseDate(req.StartDate)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}
	end, err := httptypes.ParseDate(req.EndDate)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	lease, err := a.service.CreateLease(r.Context(), p, &types.Lease{
		UnitID:      req.UnitID,
		TenantID:    req.TenantID,
		StartDate:   start,
		EndDate:     end,
		MonthlyRent: req.MonthlyRent,
		Currency:    strings.ToUpper(req.Currency),
		Status:      types.LeaseStatus(req.Status),
	})
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, lease)
}

func (a *API) terminateLease(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	lease, err := a.service.TerminateLease(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, lease)
}

func (a *API) scheduleMaintenance(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var req ScheduleMaintenanceRequest
	if err := httptypes.DecodeJSON(r, a.validate, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	m, err := a.service.ScheduleMaintenance(r.Context(), p, &types.ScheduledMaintenance{
		PropertyID:  chi.URLParam(r, "id"),
		UnitID:      req.UnitID,
		Title:       req.Title,
		AssignedTo:  req.AssignedTo,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, m)
}

func (a *API) listScheduledMaintenance(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	items, err := a.service.ListScheduledMaintenance(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, items)
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
