// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/version"
)

const pingTimeout = 2 * time.Second

type Status struct {
	Status    string            `json:"status"`
	BuildInfo *BuildInfo        `json:"buildInfo,omitempty"`
	Checks    map[string]string `json:"checks,omitempty"`
}

type BuildInfo struct {
	Version string `json:"version"`
	Name    string `json:"name"`
}

type API struct {
	// checks are pinged by the readiness probe, keyed by component name
	checks map[string]PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
	mux.Get("/api/v0/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	a.write(w, http.StatusOK, Status{Status: "ok"})
}

func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	code := http.StatusOK
	s := Status{Status: "ok", Checks: make(map[string]string, len(a.checks))}

	for name, check := range a.checks {
		available := 1.0
		s.Checks[name] = "ok"

		if err := check.Ping(ctx); err != nil {
			a.logger.Errorf("readiness check %s failed: %v", name, err)
			available = 0
			s.Checks[name] = "unavailable"
			s.Status = "degraded"
			code = http.StatusServiceUnavailable
		}

		if err := a.monitor.SetDependencyAvailability(map[string]string{"component": name}, available); err != nil {
			a.logger.Debugf("failed to set %s availability: %v", name, err)
		}
	}

	a.write(w, code, s)
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	a.write(w, http.StatusOK, Status{
		Status:    "ok",
		BuildInfo: &BuildInfo{Version: version.Version, Name: a.monitor.GetService()},
	})
}

func (a *API) write(w http.ResponseWriter, code int, s Status) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(s); err != nil {
		a.logger.Errorf("failed to encode status: %v", err)
	}
}

func NewAPI(checks map[string]PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)
	a.checks = checks
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
