// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rent

import (
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

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

const maxProofBytes = 10 << 20

type CreateScheduleRequest struct {
	LeaseID          string  `json:"lease_id" validate:"required"`
	Amount           float64 `json:"amount" validate:"gt=0"`
	Currency         string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	DueDateDay       int     `json:"due_date_day" validate:"min=1,max=31"`
	BillingFrequency string  `json:"billing_period,omitempty" validate:"omitempty,oneof=monthly quarterly semi_annual annual"`
	EffectiveStart   string  `json:"effective_start" validate:"required"`
	EffectiveEnd     *string `json:"effective_end,omitempty"`
	AutoGenerate     *bool   `json:"auto_generate,omitempty"`
}

type UpdateScheduleRequest struct {
	Amount       *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Currency     *string  `json:"currency,omitempty" validate:"omitempty,len=3"`
	DueDateDay   *int     `json:"due_date_day,omitempty" validate:"omitempty,min=1,max=31"`
	EffectiveEnd *string  `json:"effective_end,omitempty"`
	AutoGenerate *bool    `json:"auto_generate,omitempty"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

type GenerateRequest struct {
	ForDate         string `json:"for_date,omitempty"`
	ForceGeneration bool   `json:"force_generation,omitempty"`
}

type CreateRentRequest struct {
	LeaseID       string  `json:"lease_id" validate:"required"`
	AmountDue     float64 `json:"amount_due" validate:"gt=0"`
	DueDate       string  `json:"due_date" validate:"required"`
	BillingPeriod string  `json:"billing_period" validate:"required"`
	Notes         string  `json:"notes,omitempty" validate:"max=2000"`
}

type PaymentRequest struct {
	AmountPaid    float64 `json:"amount_paid"`
	PaymentDate   string  `json:"payment_date,omitempty"`
	Method        string  `json:"payment_method,omitempty" validate:"max=50"`
	TransactionID string  `json:"transaction_id,omitempty" validate:"max=200"`
	Notes         string  `json:"notes,omitempty" validate:"max=2000"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/rent-schedules", a.createSchedule)
	mux.Patch("/api/v0/rent-schedules/{id}", a.updateSchedule)
	mux.Get("/api/v0/leases/{id}/rent-schedules", a.listSchedules)

	mux.Post("/api/v0/rents/generate", a.generate)
	mux.Post("/api/v0/rents", a.createRent)
	mux.Get("/api/v0/rents", a.listRents)
	mux.Get("/api/v0/rents/upcoming", a.upcomingRents)
	mux.Get("/api/v0/rents/{id}", a.getRent)
	mux.Delete("/api/v0/rents/{id}", a.deleteRent)
	mux.Post("/api/v0/rents/{id}/payments", a.recordPayment)
}

func (a *API) principal(w http.ResponseWriter, r *http.Request) (authorization.Principal, bool) {
	p, ok := authorization.PrincipalFromContext(r.Context())
	if !ok {
		httptypes.WriteUnauthenticated(w)
	}
	return p, ok
}

func (a *API) createSchedule(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var req CreateScheduleRequest
	if err := httptypes.DecodeJSON(r, a.validate, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	start, err := httptypes.ParseDate(req.EffectiveStart)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	var end *time.Time
	if req.EffectiveEnd != nil {
		e, err := httptypes.ParseDate(*req.EffectiveEnd)
		if err != nil {
			httptypes.WriteError(w, a.logger, err)
			return
		}
		end = &e
	}

	autoGenerate := true
	if req.AutoGenerate != nil {
		autoGenerate = *req.AutoGenerate
	}

	rs, err := a.service.CreateSchedule(r.Context(), p, &types.RentSchedule{
		LeaseID:          req.LeaseID,
		Amount:           req.Amount,
		Currency:         strings.ToUpper(req.Currency),
		DueDateDay:       req.DueDateDay,
		BillingFrequency: types.BillingFrequency(req.BillingFrequency),
		EffectiveStart:   start,
		EffectiveEnd:     end,
		AutoGenerate:     autoGenerate,
	})
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, rs)
}

// updateSchedule reopens the schedule when effective_end is an empty string.
func (a *API) updateSchedule(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var req UpdateScheduleRequest
	if err := httptypes.DecodeJSON(r, a.validate, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	update := &ScheduleUpdate{
		Amount:       req.Amount,
		DueDateDay:   req.DueDateDay,
		AutoGenerate: req.AutoGenerate,
		IsActive:     req.IsActive,
	}
	if req.Currency != nil {
		c := strings.ToUpper(*req.Currency)
		update.Currency = &c
	}
	if req.EffectiveEnd != nil {
		if *req.EffectiveEnd == "" {
			update.ClearEffectiveEnd = true
		} else {
			end, err := httptypes.ParseDate(*req.EffectiveEnd)
			if err != nil {
				httptypes.WriteError(w, a.logger, err)
				return
			}
			update.EffectiveEnd = &end
		}
	}

	rs, err := a.service.UpdateSchedule(r.Context(), p, chi.URLParam(r, "id"), update)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, rs)
}

func (a *API) listSchedules(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	schedules, err := a.service.ListSchedules(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, schedules)
}

// generate defaults for_date to today.
func (a *API) generate(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var req GenerateRequest
	if err := httptypes.DecodeJSON(r, a.validate, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	forDate := time.Now()
	if req.ForDate != "" {
		d, err := httptypes.ParseDate(req.ForDate)
		if err != nil {
			httptypes.WriteError(w, a.logger, err)
			return
		}
		forDate = d
	}

	summary, err := a.service.GenerateRentRecords(r.Context(), p, forDate, req.ForceGeneration)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, summary)
}

func (a *API) createRent(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	var req CreateRentRequest
	if err := httptypes.DecodeJSON(r, a.validate, &req); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	due, err := httptypes.ParseDate(req.DueDate)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	rent, err := a.service.CreateRent(r.Context(), p, &RentInput{
		LeaseID:       req.LeaseID,
		AmountDue:     req.AmountDue,
		DueDate:       due,
		BillingPeriod: req.BillingPeriod,
		Notes:         req.Notes,
	})
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, rent)
}

func (a *API) listRents(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	page, err := httptypes.ParsePage(r)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	q := r.URL.Query()
	rents, err := a.service.ListRents(r.Context(), p, &RentQuery{
		LeaseID:    q.Get("lease_id"),
		PropertyID: q.Get("property_id"),
		UnitID:     q.Get("unit_id"),
		Status:     q.Get("status"),
		Page:       page,
	})
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WritePage(w, rents, page.Page, page.Size)
}

func (a *API) upcomingRents(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()

	days := 0
	if raw := q.Get("days_ahead"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httptypes.WriteError(w, a.logger, apperrors.Validation("days_ahead must be an integer"))
			return
		}
		days = n
	}

	rents, err := a.service.UpcomingRents(r.Context(), p, &UpcomingQuery{
		DaysAhead:  days,
		PropertyID: q.Get("property_id"),
		UnitID:     q.Get("unit_id"),
	})
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, rents)
}

func (a *API) getRent(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	rent, err := a.service.GetRent(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, rent)
}

func (a *API) deleteRent(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteRent(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// recordPayment accepts a JSON body, or a multipart form carrying the same
// fields plus an optional proof file.
func (a *API) recordPayment(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}

	req, proof, err := a.paymentRequest(r)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	if proof != nil {
		if c, ok := proof.Body.(io.Closer); ok {
			defer c.Close()
		}
	}

	in := &PaymentInput{
		Amount:        req.AmountPaid,
		Method:        req.Method,
		TransactionID: req.TransactionID,
		Notes:         req.Notes,
		Proof:         proof,
	}
	if req.PaymentDate != "" {
		if in.Date, err = httptypes.ParseDate(req.PaymentDate); err != nil {
			httptypes.WriteError(w, a.logger, err)
			return
		}
	}

	rent, err := a.service.RecordPayment(r.Context(), p, chi.URLParam(r, "id"), in)
	if err != nil {
		httptypes.WriteError(w, a.logger, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, rent)
}

func (a *API) paymentRequest(r *http.Request) (*PaymentRequest, *blob.File, error) {
	req := new(PaymentRequest)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		if err := httptypes.DecodeJSON(r, a.validate, req); err != nil {
			return nil, nil, err
		}
		return req, nil, nil
	}

	r.Body = http.MaxBytesReader(nil, r.Body, maxProofBytes)
	if err := r.ParseMultipartForm(maxProofBytes); err != nil {
		return nil, nil, apperrors.Validation("invalid multipart body: %v", err)
	}

	amount, err := strconv.ParseFloat(r.FormValue("amount_paid"), 64)
	if err != nil {
		return nil, nil, apperrors.Validation("amount_paid must be a number")
	}
	req.AmountPaid = amount
	req.PaymentDate = r.FormValue("payment_date")
	req.Method = r.FormValue("payment_method")
	req.TransactionID = r.FormValue("transaction_id")
	req.Notes = r.FormValue("notes")

	if err := httptypes.Validate(a.validate, req); err != nil {
		return nil, nil, err
	}

	file, header, err := r.FormFile("proof")
	if err == http.ErrMissingFile {
		return req, nil, nil
	}
	if err != nil {
		return nil, nil, apperrors.Validation("invalid proof file: %v", err)
	}

	return req, &blob.File{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	}, nil
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
